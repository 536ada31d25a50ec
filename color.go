package main

import (
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

type Crayon struct {
	Hex  string
	Name string
}

// Traditional Japanese colours offered by the palette, six per row.
var crayons = []Crayon{
	{"#F5B1AA", "珊瑚色 さんごいろ"},
	{"#E198B4", "桃花色 ももはないろ"},
	{"#E95295", "躑躅色 つつじいろ"},
	{"#D7003A", "紅 くれない"},
	{"#B7282E", "茜色 あかねいろ"},
	{"#B94047", "臙脂 えんじ"},

	{"#EB6101", "朱色 しゅいろ"},
	{"#F08300", "蜜柑色 みかんいろ"},
	{"#F8B500", "山吹色 やまぶきいろ"},
	{"#FFD900", "蒲公英色 たんぽぽいろ"},
	{"#FFEC47", "菜の花色 なのはないろ"},
	{"#FDDEA5", "蜂蜜色 はちみついろ"},

	{"#A8BF93", "山葵色 わさびいろ"},
	{"#68BE8D", "若竹色 わかたけいろ"},
	{"#C3D825", "若草色 わかくさいろ"},
	{"#007B43", "常磐色 ときわいろ"},
	{"#69821B", "苔色 こけいろ"},
	{"#928C36", "鶯色 うぐいすいろ"},

	{"#BCE2E8", "水色 みずいろ"},
	{"#A0D8EF", "空色 そらいろ"},
	{"#4C6CB3", "群青色 ぐんじょういろ"},
	{"#1E50A2", "瑠璃色 るりいろ"},
	{"#165E83", "藍色 あいいろ"},
	{"#223A70", "紺色 こんいろ"},

	{"#BBBCDE", "藤色 ふじいろ"},
	{"#CC7EB1", "菖蒲色 あやめいろ"},
	{"#5654A2", "桔梗色 ききょういろ"},
	{"#674196", "菖蒲色 しょうぶいろ"},
	{"#55295B", "桑の実色 くわのみいろ"},
	{"#949495", "鼠色 ねずみいろ"},

	{"#A19361", "油色 あぶらいろ"},
	{"#C39143", "黄土色 おうどいろ"},
	{"#BC763C", "土色 つちいろ"},
	{"#96514D", "小豆色 あずきいろ"},
	{"#762F07", "栗色 くりいろ"},
	{"#2B2B2B", "黒 くろ"},
}

// normalizeHex accepts #RGB or #RRGGBB in any case and returns #RRGGBB in
// upper case.
func normalizeHex(s string) (string, bool) {
	c, err := colorful.Hex(strings.TrimSpace(s))
	if err != nil {
		return "", false
	}
	return strings.ToUpper(c.Hex()), true
}

// hexToColor parses hex, returning black for anything unparsable.
func hexToColor(hex string) color.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.Black
	}
	return c
}

func crayonName(hex string) string {
	for _, c := range crayons {
		if strings.EqualFold(c.Hex, hex) {
			return c.Name
		}
	}
	return ""
}

// contrastHex picks black or white text for a swatch of the given colour.
func contrastHex(hex string) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return "#000000"
	}
	if l, _, _ := c.Lab(); l > 0.6 {
		return "#000000"
	}
	return "#FFFFFF"
}

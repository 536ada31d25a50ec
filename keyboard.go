package main

import "strings"

type keyboardTab struct {
	id    string
	label string
}

var keyboardTabs = []keyboardTab{
	{"hira", "あ"},
	{"hira_plus", "あ+"},
	{"kata", "ア"},
	{"kata_plus", "ア+"},
	{"eng_upper", "A"},
	{"eng_lower", "a"},
	{"num", "1"},
}

// Kana tables are given column by column (あいうえお is one column) and are
// drawn right to left. Empty strings are holes in the grid.
var layoutsJP = map[string][][]string{
	"hira": {
		{"あ", "い", "う", "え", "お"}, {"か", "き", "く", "け", "こ"}, {"さ", "し", "す", "せ", "そ"},
		{"た", "ち", "つ", "て", "と"}, {"な", "に", "ぬ", "ね", "の"}, {"は", "ひ", "ふ", "へ", "ほ"},
		{"ま", "み", "む", "め", "も"}, {"や", "", "ゆ", "", "よ"}, {"ら", "り", "る", "れ", "ろ"},
		{"わ", "", "を", "", "ん"},
	},
	"hira_plus": {
		{"が", "ぎ", "ぐ", "げ", "ご"}, {"ざ", "じ", "ず", "ぜ", "ぞ"}, {"だ", "ぢ", "づ", "で", "ど"},
		{"ば", "び", "ぶ", "べ", "ぼ"}, {"ぱ", "ぴ", "ぷ", "ぺ", "ぽ"}, {"ぁ", "ぃ", "ぅ", "ぇ", "ぉ"},
		{"ゃ", "", "ゅ", "", "ょ"}, {"っ", "", "", "", ""},
	},
	"kata": {
		{"ア", "イ", "ウ", "エ", "オ"}, {"カ", "キ", "ク", "ケ", "コ"}, {"サ", "シ", "ス", "セ", "ソ"},
		{"タ", "チ", "ツ", "テ", "ト"}, {"ナ", "ニ", "ヌ", "ネ", "ノ"}, {"ハ", "ヒ", "フ", "ヘ", "ホ"},
		{"マ", "ミ", "ム", "メ", "モ"}, {"ヤ", "", "ユ", "", "ヨ"}, {"ラ", "リ", "ル", "レ", "ロ"},
		{"ワ", "", "ヲ", "", "ン"},
	},
	"kata_plus": {
		{"ガ", "ギ", "グ", "ゲ", "ゴ"}, {"ザ", "ジ", "ズ", "ゼ", "ゾ"}, {"ダ", "ヂ", "ヅ", "デ", "ド"},
		{"バ", "ビ", "ブ", "ベ", "ボ"}, {"パ", "ピ", "プ", "ペ", "ポ"}, {"ァ", "ィ", "ゥ", "ェ", "ォ"},
		{"ャ", "", "ュ", "", "ョ"}, {"ッ", "", "", "", ""},
	},
}

var layoutsEng = map[string]string{
	"eng_upper": "ABCDEFGHIJKLMNOPQRSTUVWXYZ",
	"eng_lower": "abcdefghijklmnopqrstuvwxyz",
	"num":       "1234567890",
}

var specialKeys = []string{"。", "、", "！", "？", "ー"}

const engColumns = 10

// buildKeyboard returns the key grid of a tab, special keys as the last
// row. Holes are empty strings.
func buildKeyboard(tab string) [][]string {
	var grid [][]string
	if cols, ok := layoutsJP[tab]; ok {
		rows := 0
		for _, col := range cols {
			if len(col) > rows {
				rows = len(col)
			}
		}
		grid = make([][]string, rows)
		for r := range grid {
			grid[r] = make([]string, len(cols))
		}
		for ci, col := range cols {
			for ri, char := range col {
				grid[ri][len(cols)-1-ci] = char
			}
		}
	} else {
		chars := strings.Split(layoutsEng[tab], "")
		row := make([]string, 0, engColumns)
		for _, char := range chars {
			if char == "" {
				continue
			}
			row = append(row, char)
			if len(row) == engColumns {
				grid = append(grid, row)
				row = make([]string, 0, engColumns)
			}
		}
		if len(row) > 0 {
			grid = append(grid, row)
		}
	}
	special := make([]string, len(specialKeys))
	copy(special, specialKeys)
	return append(grid, special)
}

func keyAt(grid [][]string, row, col int) string {
	if row < 0 || row >= len(grid) || col < 0 || col >= len(grid[row]) {
		return ""
	}
	return grid[row][col]
}

// keyPosition finds char in grid.
func keyPosition(grid [][]string, char string) (int, int, bool) {
	for r, row := range grid {
		for c, k := range row {
			if k != "" && k == char {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

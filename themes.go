package main

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"sort"
	"strings"

	xdraw "golang.org/x/image/draw"
)

var errUnknownTheme = errors.New("unknown theme")

// ThemeFeed lists the background images in a directory and loads them
// scaled to the paper.
type ThemeFeed struct {
	dir   string
	cache map[string]image.Image
}

func NewThemeFeed(dir string) *ThemeFeed {
	return &ThemeFeed{
		dir:   dir,
		cache: make(map[string]image.Image),
	}
}

// List returns theme identifiers: png base names without extension.
func (f *ThemeFeed) List() []string {
	matches, err := filepath.Glob(filepath.Join(f.dir, "*.png"))
	if err != nil {
		return nil
	}
	ids := make([]string, 0, len(matches))
	for _, m := range matches {
		ids = append(ids, strings.TrimSuffix(filepath.Base(m), ".png"))
	}
	sort.Strings(ids)
	return ids
}

// Image returns the theme scaled to paperWidth x paperHeight.
func (f *ThemeFeed) Image(id string) (image.Image, error) {
	if img, ok := f.cache[id]; ok {
		return img, nil
	}
	file, err := os.Open(filepath.Join(f.dir, id+".png"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", errUnknownTheme, id)
		}
		return nil, err
	}
	defer file.Close()

	src, err := png.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decode theme %s: %w", id, err)
	}
	img := scaleImage(src, paperWidth, paperHeight)
	f.cache[id] = img
	return img, nil
}

func scaleImage(src image.Image, w, h int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Over, nil)
	return dst
}

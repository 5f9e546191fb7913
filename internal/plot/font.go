package plot

import (
	"fmt"
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// Font is the label font, loaded once at startup
type Font struct {
	Name string
	Data []byte
	TTF  *truetype.Font
}

// LoadFont reads and parses the TTF file at path. An empty path selects the
// embedded Go Regular face.
func LoadFont(path string) (*Font, error) {
	name := path
	data := goregular.TTF
	if path == "" {
		name = "Go Regular"
	} else {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("load font: %w", err)
		}
	}
	ttf, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font %s: %w", name, err)
	}
	return &Font{Name: name, Data: data, TTF: ttf}, nil
}

// ImageFace returns a rasterizer face for off-screen images
func (f *Font) ImageFace(size float64) font.Face {
	return truetype.NewFace(f.TTF, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

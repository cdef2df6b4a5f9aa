package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	Regular FontName = "regular"
	Bold    FontName = "bold"
	Title   FontName = "title"
	Small   FontName = "small"
	Mono    FontName = "mono"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]font.Face{}
)

// LoadDefaults registers the Go fonts under every name the viewer draws with.
func LoadDefaults() error {
	if err := LoadFont(Regular, goregular.TTF); err != nil {
		return err
	}
	if err := LoadFontWithSize(Bold, goregular.TTF, 20); err != nil {
		return err
	}
	if err := LoadFontWithSize(Title, goregular.TTF, 32); err != nil {
		return err
	}
	if err := LoadFontWithSize(Small, goregular.TTF, 12); err != nil {
		return err
	}
	return LoadFontWithSize(Mono, gomono.TTF, 12)
}

func LoadFont(name FontName, ttf []byte) error {
	return LoadFontWithSize(name, ttf, 14)
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("fonts: parse %s: %w", name, err)
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
	return nil
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}

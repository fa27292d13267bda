package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
)

type FontName string

const (
	HUD      FontName = "hud"
	HUDSmall FontName = "hud-small"
	Title    FontName = "title"
	Menu     FontName = "menu"
)

// Spec names a TrueType font and the size it is rendered at.
type Spec struct {
	Name FontName
	TTF  []byte
	Size float64
}

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]font.Face{}
	// Parsed fonts shared by every size of the same TTF
	parsed = map[*byte]*truetype.Font{}
)

// LoadAll parses each font once and registers a face per spec.
func LoadAll(specs ...Spec) error {
	for _, s := range specs {
		if err := LoadFontWithSize(s.Name, s.TTF, s.Size); err != nil {
			return err
		}
	}
	return nil
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	if len(ttf) == 0 {
		return fmt.Errorf("parse font %s: empty data", name)
	}
	fontData, ok := parsed[&ttf[0]]
	if !ok {
		var err error
		fontData, err = truetype.Parse(ttf)
		if err != nil {
			return fmt.Errorf("parse font %s: %w", name, err)
		}
		parsed[&ttf[0]] = fontData
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size, Hinting: font.HintingFull})
	return nil
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}

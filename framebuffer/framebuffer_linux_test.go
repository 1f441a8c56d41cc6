package framebuffer

import (
	"errors"
	"testing"

	"github.com/BeatGlow/pixfmt/pixel"
)

func TestLinuxParseFormat(t *testing.T) {
	tests := []struct {
		name string
		info linuxVarScreenInfo
		want pixel.Format
	}{
		{"rgba8", linuxVarScreenInfo{
			BitsPerPixel: 32,
			Red:          linuxBitField{Offset: 0, Length: 8},
			Green:        linuxBitField{Offset: 8, Length: 8},
			Blue:         linuxBitField{Offset: 16, Length: 8},
			Alpha:        linuxBitField{Offset: 24, Length: 8},
		}, pixel.FormatRGBA8},
		{"rgb8", linuxVarScreenInfo{
			BitsPerPixel: 24,
			Red:          linuxBitField{Offset: 0, Length: 8},
			Green:        linuxBitField{Offset: 8, Length: 8},
			Blue:         linuxBitField{Offset: 16, Length: 8},
		}, pixel.FormatRGB8},
		{"rgb565", linuxVarScreenInfo{
			BitsPerPixel: 16,
			Red:          linuxBitField{Offset: 0, Length: 5},
			Green:        linuxBitField{Offset: 5, Length: 6},
			Blue:         linuxBitField{Offset: 11, Length: 5},
		}, pixel.FormatRGB565},
		{"rgb565 alpha offset without length", linuxVarScreenInfo{
			BitsPerPixel: 16,
			Red:          linuxBitField{Offset: 0, Length: 5},
			Green:        linuxBitField{Offset: 5, Length: 6},
			Blue:         linuxBitField{Offset: 11, Length: 5},
			Alpha:        linuxBitField{Offset: 16},
		}, pixel.FormatRGB565},
		{"a1rgb5", linuxVarScreenInfo{
			BitsPerPixel: 16,
			Alpha:        linuxBitField{Offset: 0, Length: 1},
			Red:          linuxBitField{Offset: 1, Length: 5},
			Green:        linuxBitField{Offset: 6, Length: 5},
			Blue:         linuxBitField{Offset: 11, Length: 5},
		}, pixel.FormatA1RGB5},
		{"rgba4", linuxVarScreenInfo{
			BitsPerPixel: 16,
			Red:          linuxBitField{Offset: 0, Length: 4},
			Green:        linuxBitField{Offset: 4, Length: 4},
			Blue:         linuxBitField{Offset: 8, Length: 4},
			Alpha:        linuxBitField{Offset: 12, Length: 4},
		}, pixel.FormatRGBA4},
	}
	for _, test := range tests {
		t.Run(test.name, func(it *testing.T) {
			f, err := linuxParseFormat(&test.info)
			if err != nil {
				it.Fatal(err)
			}
			if f != test.want {
				it.Errorf("expected %s, got %s", test.want, f)
			}
		})
	}
}

func TestLinuxParseFormatUnsupported(t *testing.T) {
	if _, err := linuxParseFormat(nil); err == nil {
		t.Errorf("expected an error for missing screen info")
	}

	bgr565 := linuxVarScreenInfo{
		BitsPerPixel: 16,
		Blue:         linuxBitField{Offset: 0, Length: 5},
		Green:        linuxBitField{Offset: 5, Length: 6},
		Red:          linuxBitField{Offset: 11, Length: 5},
	}
	if _, err := linuxParseFormat(&bgr565); !errors.Is(err, pixel.ErrUnknownFormat) {
		t.Errorf("expected pixel.ErrUnknownFormat, got %v", err)
	}

	gray := linuxVarScreenInfo{BitsPerPixel: 8, Grayscale: 1}
	if _, err := linuxParseFormat(&gray); !errors.Is(err, ErrNotSupported) {
		t.Errorf("expected ErrNotSupported, got %v", err)
	}
}

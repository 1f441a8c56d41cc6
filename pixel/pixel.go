package pixel

import (
	"fmt"
	"image/color"
)

// Pixel is a pixel value of a known format.
type Pixel interface {
	color.Color

	// Format of the pixel.
	Format() Format

	// Channel returns the raw bits of a channel, see [Channel].
	//
	// It panics with an error wrapping ErrChannelRange if index is outside [0, Format().Channels()).
	Channel(index int) byte

	// Value is the pixel packed into an integer, see [Value].
	Value() uint32
}

// Typed is a constraint that permits any of the pixel value types.
type Typed interface {
	RGBA8 | RGB8 | RGB565 | A1RGB5 | RGBA4
	Pixel
}

// RGBA8 is a 32-bit pixel holding red, green, blue and (non-premultiplied) alpha bytes.
type RGBA8 [4]byte

// RGB8 is a 24-bit pixel holding red, green and blue bytes.
type RGB8 [3]byte

// RGB565 is a 16-bit 5-6-5 pixel, red in the low bits of the first byte.
type RGB565 [2]byte

// A1RGB5 is a 16-bit pixel with 1-bit alpha in the lowest bit followed by 5-5-5 red, green and blue.
type A1RGB5 [2]byte

// RGBA4 is a 16-bit pixel with 4 bits per channel, red in the low nibble of the first byte.
type RGBA4 [2]byte

func (p RGBA8) Format() Format  { return FormatRGBA8 }
func (p RGB8) Format() Format   { return FormatRGB8 }
func (p RGB565) Format() Format { return FormatRGB565 }
func (p A1RGB5) Format() Format { return FormatA1RGB5 }
func (p RGBA4) Format() Format  { return FormatRGBA4 }

func (p RGBA8) Value() uint32  { return value(p[:]) }
func (p RGB8) Value() uint32   { return value(p[:]) }
func (p RGB565) Value() uint32 { return value(p[:]) }
func (p A1RGB5) Value() uint32 { return value(p[:]) }
func (p RGBA4) Value() uint32  { return value(p[:]) }

func (p RGBA8) Channel(index int) byte  { return mustChannel(p[:], FormatRGBA8, index) }
func (p RGB8) Channel(index int) byte   { return mustChannel(p[:], FormatRGB8, index) }
func (p RGB565) Channel(index int) byte { return mustChannel(p[:], FormatRGB565, index) }
func (p A1RGB5) Channel(index int) byte { return mustChannel(p[:], FormatA1RGB5, index) }
func (p RGBA4) Channel(index int) byte  { return mustChannel(p[:], FormatRGBA4, index) }

func mustChannel(b []byte, f Format, index int) byte {
	if index < 0 || index >= f.Channels() {
		panic(fmt.Errorf("%w: %d, %s has %d channels", ErrChannelRange, index, f, f.Channels()))
	}
	return channel(b, f, index)
}

// Load copies the pixel stored at the start of b into a pixel value.
func Load[P Typed](b []byte) (P, error) {
	var p P
	if err := checkBuffer(b, p.Format()); err != nil {
		return p, err
	}
	switch q := any(&p).(type) {
	case *RGBA8:
		copy(q[:], b)
	case *RGB8:
		copy(q[:], b)
	case *RGB565:
		copy(q[:], b)
	case *A1RGB5:
		copy(q[:], b)
	case *RGBA4:
		copy(q[:], b)
	}
	return p, nil
}

// Store writes p to the start of b.
func Store[P Typed](b []byte, p P) error {
	return SetValue(b, p.Format(), p.Value())
}

// FromValue builds a pixel from a packed value, bits that do not fit are dropped.
func FromValue[P Typed](v uint32) P {
	var b [4]byte
	putValue(b[:], v)
	p, _ := Load[P](b[:])
	return p
}

// Decode copies the pixel of format f stored at the start of b into a pixel value.
func Decode(b []byte, f Format) (Pixel, error) {
	switch f {
	case FormatRGBA8:
		return decode[RGBA8](b)
	case FormatRGB8:
		return decode[RGB8](b)
	case FormatRGB565:
		return decode[RGB565](b)
	case FormatA1RGB5:
		return decode[A1RGB5](b)
	case FormatRGBA4:
		return decode[RGBA4](b)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, f)
}

func decode[P Typed](b []byte) (Pixel, error) {
	p, err := Load[P](b)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Interface checks.
var (
	_ Pixel = RGBA8{}
	_ Pixel = RGB8{}
	_ Pixel = RGB565{}
	_ Pixel = A1RGB5{}
	_ Pixel = RGBA4{}
)

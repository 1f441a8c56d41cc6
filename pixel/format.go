package pixel

import (
	"errors"
	"fmt"
	"image/color"
	"strings"
)

// Errors
var (
	ErrUnknownFormat = errors.New("pixel: unknown format")
	ErrShortBuffer   = errors.New("pixel: buffer too short for format")
	ErrChannelRange  = errors.New("pixel: channel index out of range")
	ErrBounds        = errors.New("pixel: out of image bounds")
)

// Format is a pixel format tag.
type Format uint8

// Supported formats.
const (
	UnknownFormat Format = iota
	FormatRGBA8          // 32-bit, 8 bits per channel
	FormatRGB8           // 24-bit, 8 bits per channel
	FormatRGB565         // 16-bit, 5-6-5 red, green, blue
	FormatA1RGB5         // 16-bit, 1-bit alpha followed by 5-5-5 red, green, blue
	FormatRGBA4          // 16-bit, 4 bits per channel
)

// Field describes where a channel lives in the packed little-endian pixel value.
type Field struct {
	Offset uint8 // Beginning of the field
	Length uint8 // Bit count, zero if the channel is absent
}

// Layout is the bit layout of the red, green, blue and alpha channels of a format.
type Layout struct {
	Red, Green, Blue, Alpha Field
}

type formatInfo struct {
	name     string
	size     int
	channels string
	layout   Layout
}

var formats = [...]formatInfo{
	UnknownFormat: {name: "unknown"},
	FormatRGBA8: {
		name:     "rgba8",
		size:     4,
		channels: "rgba",
		layout:   Layout{Red: Field{0, 8}, Green: Field{8, 8}, Blue: Field{16, 8}, Alpha: Field{24, 8}},
	},
	FormatRGB8: {
		name:     "rgb8",
		size:     3,
		channels: "rgb",
		layout:   Layout{Red: Field{0, 8}, Green: Field{8, 8}, Blue: Field{16, 8}},
	},
	FormatRGB565: {
		name:     "rgb565",
		size:     2,
		channels: "rgb",
		layout:   Layout{Red: Field{0, 5}, Green: Field{5, 6}, Blue: Field{11, 5}},
	},
	FormatA1RGB5: {
		name:     "a1rgb5",
		size:     2,
		channels: "argb",
		layout:   Layout{Alpha: Field{0, 1}, Red: Field{1, 5}, Green: Field{6, 5}, Blue: Field{11, 5}},
	},
	FormatRGBA4: {
		name:     "rgba4",
		size:     2,
		channels: "rgba",
		layout:   Layout{Red: Field{0, 4}, Green: Field{4, 4}, Blue: Field{8, 4}, Alpha: Field{12, 4}},
	},
}

func (f Format) info() formatInfo {
	if int(f) < len(formats) {
		return formats[f]
	}
	return formats[UnknownFormat]
}

// Valid reports whether f is one of the supported formats.
func (f Format) Valid() bool {
	return f != UnknownFormat && int(f) < len(formats)
}

func (f Format) String() string {
	if !f.Valid() {
		return fmt.Sprintf("format(%d)", uint8(f))
	}
	return formats[f].name
}

// BufferSize is the number of bytes one pixel occupies, zero for unknown formats.
func (f Format) BufferSize() int {
	return f.info().size
}

// BufferSize returns the number of bytes one pixel of format f occupies.
func BufferSize(f Format) int {
	return f.BufferSize()
}

// Channels is the number of logical channels.
func (f Format) Channels() int {
	return len(f.info().channels)
}

// ChannelName returns the single letter name ("r", "g", "b" or "a") of a channel.
func (f Format) ChannelName(index int) string {
	names := f.info().channels
	if index < 0 || index >= len(names) {
		return ""
	}
	return names[index : index+1]
}

// Mask covers the bits of a packed value that fit in one pixel.
func (f Format) Mask() uint32 {
	return uint32(uint64(1)<<(8*uint(f.BufferSize())) - 1)
}

// Layout returns the channel bit layout of the packed pixel value.
func (f Format) Layout() Layout {
	return f.info().layout
}

// Model returns the color model of the format, nil for unknown formats.
func (f Format) Model() color.Model {
	switch f {
	case FormatRGBA8:
		return RGBA8Model
	case FormatRGB8:
		return RGB8Model
	case FormatRGB565:
		return RGB565Model
	case FormatA1RGB5:
		return A1RGB5Model
	case FormatRGBA4:
		return RGBA4Model
	}
	return nil
}

// ParseFormat parses a format name such as "rgb565" or "A1_RGB5".
func ParseFormat(name string) (Format, error) {
	key := strings.ToLower(strings.NewReplacer("_", "", "-", "").Replace(name))
	for f := FormatRGBA8; f.Valid(); f++ {
		if formats[f].name == key {
			return f, nil
		}
	}
	return UnknownFormat, fmt.Errorf("%w %q", ErrUnknownFormat, name)
}

// Lookup finds the format that packs bitsPerPixel bits with the given channel layout.
func Lookup(bitsPerPixel int, layout Layout) (Format, error) {
	for f := FormatRGBA8; f.Valid(); f++ {
		if formats[f].size*8 == bitsPerPixel && formats[f].layout == layout {
			return f, nil
		}
	}
	return UnknownFormat, fmt.Errorf("%w: %d bits per pixel with layout %+v", ErrUnknownFormat, bitsPerPixel, layout)
}

func checkBuffer(b []byte, f Format) error {
	n := f.BufferSize()
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrUnknownFormat, f)
	}
	if len(b) < n {
		return fmt.Errorf("%w: %s needs %d bytes, got %d", ErrShortBuffer, f, n, len(b))
	}
	return nil
}

package pixel

import (
	"fmt"
	"image/color"
)

// View is a pixel of a format chosen at run time, stored in memory owned by someone else.
//
// A View borrows its bytes: it never allocates, copies or frees them, and the caller guarantees
// the memory stays valid, and at least Format().BufferSize() bytes long, for as long as the
// View is used. Set writes through to that memory. Assigning one View to another rebinds it to
// the other's memory and format, pixel content is not copied.
//
// The zero View has an unknown format: Value returns 0 and Set does nothing.
type View struct {
	b []byte
	f Format
}

// NewView returns a View of the pixel stored at the start of b.
func NewView(b []byte, f Format) (View, error) {
	if err := checkBuffer(b, f); err != nil {
		return View{}, err
	}
	n := f.BufferSize()
	return View{b: b[:n:n], f: f}, nil
}

// Format of the pixel.
func (v View) Format() Format {
	return v.f
}

// Bytes returns the borrowed pixel bytes.
func (v View) Bytes() []byte {
	return v.b
}

// Channel returns the raw bits of a channel, see [Channel].
func (v View) Channel(index int) (byte, error) {
	return Channel(v.b, v.f, index)
}

// Value returns the packed pixel value, see [Value].
func (v View) Value() uint32 {
	if !v.f.Valid() {
		return 0
	}
	return value(v.b)
}

// Set stores the packed value x in the borrowed bytes, see [SetValue].
func (v View) Set(x uint32) {
	if !v.f.Valid() {
		return
	}
	putValue(v.b, x)
}

// SetColor converts c to the pixel format and stores it.
func (v View) SetColor(c color.Color) {
	if m := v.f.Model(); m != nil {
		v.Set(m.Convert(c).(Pixel).Value())
	}
}

// Pixel returns a copy of the current pixel value, nil for an unknown format.
func (v View) Pixel() Pixel {
	p, err := Decode(v.b, v.f)
	if err != nil {
		return nil
	}
	return p
}

func (v View) String() string {
	return fmt.Sprintf("%s(%#0*x)", v.f, 2*v.f.BufferSize(), v.Value())
}

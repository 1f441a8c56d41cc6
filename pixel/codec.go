package pixel

import (
	"encoding/binary"
	"fmt"
)

// Channel returns the value of channel index of the pixel stored at the start of b.
//
// The value is the raw channel bits, right aligned: a 5-bit channel yields 0-31. The buffer must
// hold at least f.BufferSize() bytes, or ErrShortBuffer is returned; an index outside
// [0, f.Channels()) returns ErrChannelRange.
func Channel(b []byte, f Format, index int) (byte, error) {
	if err := checkBuffer(b, f); err != nil {
		return 0, err
	}
	if index < 0 || index >= f.Channels() {
		return 0, fmt.Errorf("%w: %d, %s has %d channels", ErrChannelRange, index, f, f.Channels())
	}
	return channel(b, f, index), nil
}

// channel does no checking, b and index must be valid for f.
func channel(b []byte, f Format, index int) byte {
	switch f {
	case FormatRGBA8, FormatRGB8:
		return b[index]

	case FormatRGB565:
		switch index {
		case 0:
			return b[0] & 0x1f
		case 1:
			return b[0]>>5 | (b[1]&0x07)<<3
		default:
			return b[1] >> 3
		}

	case FormatA1RGB5:
		switch index {
		case 0:
			return b[0] & 0x01
		case 1:
			return (b[0] >> 1) & 0x1f
		case 2:
			// Only the two low bits of the second byte take part.
			return (b[1]&0x03)<<2 | b[0]>>6
		default:
			return b[1] >> 3
		}

	case FormatRGBA4:
		v := b[index>>1]
		if index&1 == 0 {
			return v & 0x0f
		}
		return v >> 4
	}
	return 0
}

// Value packs the bytes of the pixel stored at the start of b into an integer, first byte lowest.
func Value(b []byte, f Format) (uint32, error) {
	if err := checkBuffer(b, f); err != nil {
		return 0, err
	}
	return value(b[:f.BufferSize()]), nil
}

func value(b []byte) uint32 {
	switch len(b) {
	case 4:
		return binary.LittleEndian.Uint32(b)
	case 2:
		return uint32(binary.LittleEndian.Uint16(b))
	}
	var v uint32
	for i, c := range b {
		v |= uint32(c) << (8 * uint(i))
	}
	return v
}

// SetValue stores the low f.BufferSize() bytes of v at the start of b, lowest byte first.
func SetValue(b []byte, f Format, v uint32) error {
	if err := checkBuffer(b, f); err != nil {
		return err
	}
	putValue(b[:f.BufferSize()], v)
	return nil
}

func putValue(b []byte, v uint32) {
	switch len(b) {
	case 4:
		binary.LittleEndian.PutUint32(b, v)
	case 2:
		binary.LittleEndian.PutUint16(b, uint16(v))
	default:
		for i := range b {
			b[i] = byte(v >> (8 * uint(i)))
		}
	}
}

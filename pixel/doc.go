// Package pixel implements the fixed-size pixel formats used by handheld-console GPU textures.
//
// Every format stores one pixel in a small, fixed number of bytes. The package offers two views
// over the same bit layouts: typed pixel values ([RGBA8], [RGB8], [RGB565], [A1RGB5], [RGBA4]),
// dispatched at compile time, and [View], a runtime-dispatched pixel that borrows caller memory.
//
// Typed pixels implement [color.Color] and every format has a matching [color.Model], so the
// formats plug into Go's native [image.Image] and [draw.Image] interfaces through [Image].
package pixel

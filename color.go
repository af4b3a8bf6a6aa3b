package wlrender

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a 24-bit RGB color with 8-bit channels; the pixel surface blends
// in 8-bit. premultiplied widens the channels to 16-bit fixed-point only for
// the image/color adapter Hex goes through.
type Color struct {
	R, G, B uint8
}

// RGB packs three 8-bit channels into a Color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// FromARGB32 unpacks a 32-bit 0xAARRGGBB word into a Color, discarding alpha
// (alpha is tracked separately by Palette.Alpha, not per color).
func FromARGB32(argb uint32) Color {
	return Color{
		R: uint8(argb >> 16),
		G: uint8(argb >> 8),
		B: uint8(argb),
	}
}

// ARGB32 packs the color back into a 0xAARRGGBB word with full alpha.
func (c Color) ARGB32() uint32 {
	return 0xff000000 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// premultiplied returns the color's channels as 16-bit fixed-point
// fractions, the form a shared-memory pixel surface composites with.
func (c Color) premultiplied() (r, g, b uint32) {
	r = uint32(c.R) * 0x101
	g = uint32(c.G) * 0x101
	b = uint32(c.B) * 0x101
	return
}

// Dim halves all channels, implementing the "dim" SGR attribute (§4.1 step 5).
func (c Color) Dim() Color {
	return Color{R: c.R / 2, G: c.G / 2, B: c.B / 2}
}

// Hex renders the color as "#rrggbb", mirroring bubbletea's colorToHex
// round-trip through go-colorful.
func (c Color) Hex() string {
	col, ok := colorful.MakeColor(colorNRGBA{c})
	if !ok {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return col.Hex()
}

// colorNRGBA adapts Color to image/color.Color without importing the whole
// image package into the hot path.
type colorNRGBA struct{ c Color }

func (n colorNRGBA) RGBA() (r, g, b, a uint32) {
	r, g, b = n.c.premultiplied()
	a = 0xffff
	return
}

// Blend performs an OVER composite of src atop dst using straight alpha in
// [0, 0xffff], the same range Palette.Alpha and a block cursor's forced
// 0xffff background alpha are expressed in.
func Blend(dst, src Color, alpha uint32) Color {
	if alpha >= 0xffff {
		return src
	}
	if alpha == 0 {
		return dst
	}
	blend := func(d, s uint8) uint8 {
		return uint8((uint32(s)*alpha + uint32(d)*(0xffff-alpha)) / 0xffff)
	}
	return Color{
		R: blend(dst.R, src.R),
		G: blend(dst.G, src.G),
		B: blend(dst.B, src.B),
	}
}

// CursorPaletteColor is a 32-bit word where the high bit is a presence flag
// (0 = unset) and the low 24 bits are an RGB color: a user cursor-palette
// override encoded as a presence bit in the high bit of a color word.
type CursorPaletteColor uint32

const cursorPaletteSet = 1 << 31

// Set reports whether the override color is present.
func (c CursorPaletteColor) Set() bool {
	return c&cursorPaletteSet != 0
}

// Color extracts the RGB color, valid only when Set reports true.
func (c CursorPaletteColor) Color() Color {
	return FromARGB32(uint32(c) &^ cursorPaletteSet)
}

// NewCursorPaletteColor packs a color as a present override.
func NewCursorPaletteColor(c Color) CursorPaletteColor {
	return CursorPaletteColor(c.ARGB32()&^0xff000000) | cursorPaletteSet
}

// Palette holds the terminal's base colors and the alpha applied to
// non-block-cursor cell backgrounds.
type Palette struct {
	Fg, Bg Color
	// Alpha in 0..=0xFFFF; applies to background fills of non-block-cursor
	// cells, permitting translucent terminals.
	Alpha uint32
	// CursorText and CursorCursor are the user-supplied cursor color
	// override pair. A block cursor uses them only when both are Set; the
	// Underline and Bar shapes use CursorCursor whenever it is Set.
	CursorText, CursorCursor CursorPaletteColor
}

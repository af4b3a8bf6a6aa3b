package wlrender

// bufferSurface is the default Surface implementation: it paints directly
// into a shared-memory Buffer's pixel bytes, assumed packed as 4-byte
// BGRA rows of Buffer.Stride bytes each, matching the layout a Wayland
// wl_shm SHM buffer pool hands out in practice. It is grounded
// structurally on bubbletea's framebuffer.go (a flat backing array
// addressed by row*width+col), generalized from one rune per cell to a
// rectangular pixel region per cell.
type bufferSurface struct {
	buf *Buffer
}

func (s bufferSurface) offset(x, y int) int {
	return y*s.buf.Stride + x*4
}

func (s bufferSurface) FillRect(op CompositeOp, color Color, alpha uint32, r Rect) {
	for y := r.Y; y < r.Y+r.H; y++ {
		base := s.offset(r.X, y)
		if base < 0 || base+r.W*4 > len(s.buf.Pix) {
			continue
		}
		for x := 0; x < r.W; x++ {
			i := base + x*4
			s.blendPixel(i, color, alpha, op)
		}
	}
}

func (s bufferSurface) blendPixel(i int, c Color, alpha uint32, op CompositeOp) {
	if op == OpSrc {
		s.buf.Pix[i] = c.B
		s.buf.Pix[i+1] = c.G
		s.buf.Pix[i+2] = c.R
		s.buf.Pix[i+3] = 0xff
		return
	}
	dst := Color{R: s.buf.Pix[i+2], G: s.buf.Pix[i+1], B: s.buf.Pix[i]}
	blended := Blend(dst, c, alpha)
	s.buf.Pix[i] = blended.B
	s.buf.Pix[i+1] = blended.G
	s.buf.Pix[i+2] = blended.R
	s.buf.Pix[i+3] = 0xff
}

func (s bufferSurface) Composite(op CompositeOp, glyph Glyph, src Color, dst Rect) {
	if len(glyph.Pix) == 0 {
		return
	}
	switch glyph.Format {
	case GlyphRGBA:
		s.compositeRGBA(glyph, dst)
	case GlyphAlphaMask:
		s.compositeMask(glyph, src, dst)
	}
}

func (s bufferSurface) compositeRGBA(glyph Glyph, dst Rect) {
	for y := 0; y < glyph.Height && y < dst.H; y++ {
		for x := 0; x < glyph.Width && x < dst.W; x++ {
			gi := (y*glyph.Width + x) * 4
			if gi+3 >= len(glyph.Pix) {
				continue
			}
			di := s.offset(dst.X+x, dst.Y+y)
			if di < 0 || di+3 >= len(s.buf.Pix) {
				continue
			}
			a := glyph.Pix[gi+3]
			if a == 0 {
				continue
			}
			s.buf.Pix[di] = glyph.Pix[gi]
			s.buf.Pix[di+1] = glyph.Pix[gi+1]
			s.buf.Pix[di+2] = glyph.Pix[gi+2]
			s.buf.Pix[di+3] = 0xff
		}
	}
}

func (s bufferSurface) compositeMask(glyph Glyph, src Color, dst Rect) {
	for y := 0; y < glyph.Height && y < dst.H; y++ {
		for x := 0; x < glyph.Width && x < dst.W; x++ {
			gi := y*glyph.Width + x
			if gi >= len(glyph.Pix) {
				continue
			}
			cov := glyph.Pix[gi]
			if cov == 0 {
				continue
			}
			di := s.offset(dst.X+x, dst.Y+y)
			if di < 0 || di+3 >= len(s.buf.Pix) {
				continue
			}
			// coverage-weighted blend of src against whatever is already there.
			inv := 255 - uint32(cov)
			s.buf.Pix[di] = uint8((uint32(s.buf.Pix[di])*inv + uint32(src.B)*uint32(cov)) / 255)
			s.buf.Pix[di+1] = uint8((uint32(s.buf.Pix[di+1])*inv + uint32(src.G)*uint32(cov)) / 255)
			s.buf.Pix[di+2] = uint8((uint32(s.buf.Pix[di+2])*inv + uint32(src.R)*uint32(cov)) / 255)
			s.buf.Pix[di+3] = 0xff
		}
	}
}

// MoveRows copies n pixel rows from srcRow to dstRow within the same
// buffer, the memmove DamageLog needs before any per-cell repaint.
func (s bufferSurface) MoveRows(dstRow, srcRow, n int) {
	if n <= 0 {
		return
	}
	if dstRow == srcRow {
		return
	}
	if dstRow < srcRow {
		for i := 0; i < n; i++ {
			copy(s.rowSlice(dstRow+i), s.rowSlice(srcRow+i))
		}
	} else {
		for i := n - 1; i >= 0; i-- {
			copy(s.rowSlice(dstRow+i), s.rowSlice(srcRow+i))
		}
	}
}

func (s bufferSurface) rowSlice(row int) []byte {
	start := row * s.buf.Stride
	end := start + s.buf.Stride
	if start < 0 || end > len(s.buf.Pix) {
		return nil
	}
	return s.buf.Pix[start:end]
}

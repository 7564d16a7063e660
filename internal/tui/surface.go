package tui

import "github.com/nickromney/looppager/internal/pager"

// scrollSurface is the terminal stand-in for a platform scroll view. It
// holds the offset in cells; rendering reads it back.
type scrollSurface struct {
	page    pager.Size
	content pager.Size
	offset  pager.Point
}

var _ pager.Viewport = (*scrollSurface)(nil)

func (s *scrollSurface) PageSize() pager.Size { return s.page }

func (s *scrollSurface) SetContentSize(sz pager.Size) { s.content = sz }

// SetOffset clamps to the scrollable range, like a scroll view would.
func (s *scrollSurface) SetOffset(p pager.Point) {
	s.offset = pager.Point{
		X: clampInt(p.X, 0, max(0, s.content.Width-s.page.Width), 0),
		Y: clampInt(p.Y, 0, max(0, s.content.Height-s.page.Height), 0),
	}
}

func (s *scrollSurface) resize(w, h int) {
	s.page = pager.Size{Width: max(0, w), Height: max(0, h)}
}

// extent is the page length along the scroll axis.
func (s *scrollSurface) extent(o pager.Orientation) int {
	if o == pager.Vertical {
		return s.page.Height
	}
	return s.page.Width
}

func (s *scrollSurface) axis(o pager.Orientation) int {
	if o == pager.Vertical {
		return s.offset.Y
	}
	return s.offset.X
}

// scrollTo moves along the axis and returns the offset actually applied.
func (s *scrollSurface) scrollTo(o pager.Orientation, v int) pager.Point {
	if o == pager.Vertical {
		s.SetOffset(pager.Point{X: s.offset.X, Y: v})
	} else {
		s.SetOffset(pager.Point{X: v, Y: s.offset.Y})
	}
	return s.offset
}

func clampInt(v, lo, hi, def int) int {
	if hi < lo {
		return def
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

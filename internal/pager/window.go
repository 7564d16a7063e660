package pager

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyCollection means there is no panel to put in the middle.
	// It is an expected state, not a bug.
	ErrEmptyCollection = errors.New("pager: empty collection")

	// ErrIndexOutOfRange and ErrPanelNotFound indicate a caller or
	// collaborator contract violation.
	ErrIndexOutOfRange = errors.New("pager: index out of range")
	ErrPanelNotFound   = errors.New("pager: panel not found")

	ErrInvalidCount = errors.New("pager: provider reported a negative panel count")
	ErrNilContent   = errors.New("pager: provider returned nil content")
)

// Window is the three panels mounted side by side.
type Window struct {
	Previous *Panel
	Middle   *Panel
	Next     *Panel
}

func (w Window) At(s Slot) *Panel {
	switch s {
	case SlotPrevious:
		return w.Previous
	case SlotMiddle:
		return w.Middle
	case SlotNext:
		return w.Next
	default:
		return nil
	}
}

func (w Window) Panels() [3]*Panel {
	return [3]*Panel{w.Previous, w.Middle, w.Next}
}

// ComputeWindow returns the circular neighbours of middle in seq.
//
// The first panel's predecessor is the last panel and the last panel's
// successor is the first. With two panels the other panel fills both
// neighbour slots. A neighbour that would be middle itself (one panel) is
// replaced by a copy of middle.
func ComputeWindow(seq []*Panel, middle *Panel) (Window, error) {
	n := len(seq)
	if n == 0 {
		return Window{}, ErrEmptyCollection
	}

	i := indexOf(seq, middle)
	if i < 0 {
		return Window{}, fmt.Errorf("%w: %p is not in a sequence of %d", ErrPanelNotFound, middle, n)
	}

	prev := seq[(i-1+n)%n]
	next := seq[(i+1)%n]
	if prev == middle {
		prev = middle.Copy()
	}
	if next == middle {
		next = middle.Copy()
	}

	return Window{Previous: prev, Middle: middle, Next: next}, nil
}

// indexOf finds p in seq by identity.
func indexOf(seq []*Panel, p *Panel) int {
	if p == nil {
		return -1
	}
	for i, q := range seq {
		if q == p {
			return i
		}
	}
	return -1
}

package cli

import "github.com/nickromney/looppager/internal/pager"

// headlessViewport is a fixed-size, render-less viewport for commands
// that drive the controller without a terminal UI.
type headlessViewport struct {
	page    pager.Size
	content pager.Size
	offset  pager.Point
}

func newHeadlessViewport() *headlessViewport {
	return &headlessViewport{page: pager.Size{Width: 80, Height: 24}}
}

func (v *headlessViewport) PageSize() pager.Size { return v.page }

func (v *headlessViewport) SetContentSize(s pager.Size) { v.content = s }

func (v *headlessViewport) SetOffset(p pager.Point) { v.offset = p }

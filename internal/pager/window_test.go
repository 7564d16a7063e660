package pager

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type textContent string

func (t textContent) View(_, _ int) string { return string(t) }

func makePanels(n int) []*Panel {
	out := make([]*Panel, n)
	for i := range out {
		out[i] = NewPanel(textContent(fmt.Sprintf("panel%d", i)))
	}
	return out
}

func TestComputeWindow_MiddleIsIdentity(t *testing.T) {
	for n := 1; n <= 6; n++ {
		seq := makePanels(n)
		for i, m := range seq {
			w, err := ComputeWindow(seq, m)
			require.NoError(t, err, "n=%d i=%d", n, i)
			assert.Same(t, m, w.Middle, "n=%d i=%d", n, i)
		}
	}
}

func TestComputeWindow_CircularNeighbours(t *testing.T) {
	for n := 3; n <= 7; n++ {
		seq := makePanels(n)
		for i, m := range seq {
			w, err := ComputeWindow(seq, m)
			require.NoError(t, err)
			assert.Same(t, seq[(i-1+n)%n], w.Previous, "n=%d i=%d previous", n, i)
			assert.Same(t, seq[(i+1)%n], w.Next, "n=%d i=%d next", n, i)
		}
	}
}

func TestComputeWindow_WrapsAtBothEnds(t *testing.T) {
	seq := makePanels(5)

	first, err := ComputeWindow(seq, seq[0])
	require.NoError(t, err)
	assert.Same(t, seq[4], first.Previous)
	assert.Same(t, seq[1], first.Next)

	last, err := ComputeWindow(seq, seq[4])
	require.NoError(t, err)
	assert.Same(t, seq[3], last.Previous)
	assert.Same(t, seq[0], last.Next)
}

func TestComputeWindow_SinglePanelUsesDistinctCopies(t *testing.T) {
	seq := makePanels(1)
	w, err := ComputeWindow(seq, seq[0])
	require.NoError(t, err)

	for _, p := range w.Panels() {
		assert.Same(t, seq[0], p.Origin(), "every slot shows panel0")
		assert.Equal(t, "panel0", p.Content().View(0, 0))
	}
	assert.NotSame(t, w.Middle, w.Previous)
	assert.NotSame(t, w.Middle, w.Next)
	assert.NotSame(t, w.Previous, w.Next)
	assert.True(t, w.Previous.IsCopy())
	assert.True(t, w.Next.IsCopy())
	assert.False(t, w.Middle.IsCopy())
}

func TestComputeWindow_TwoPanels(t *testing.T) {
	seq := makePanels(2)
	for i, m := range seq {
		other := seq[1-i]
		w, err := ComputeWindow(seq, m)
		require.NoError(t, err)
		assert.Same(t, other, w.Previous)
		assert.Same(t, other, w.Next)
		assert.NotSame(t, m, w.Previous)
		assert.NotSame(t, m, w.Next)
	}
}

func TestComputeWindow_Errors(t *testing.T) {
	_, err := ComputeWindow(nil, NewPanel(textContent("x")))
	require.ErrorIs(t, err, ErrEmptyCollection)

	seq := makePanels(3)
	_, err = ComputeWindow(seq, NewPanel(textContent("panel1")))
	require.ErrorIs(t, err, ErrPanelNotFound, "equal content is not identity")

	_, err = ComputeWindow(seq, nil)
	require.ErrorIs(t, err, ErrPanelNotFound)

	// A copy is a different panel; callers resolve it with Origin first.
	_, err = ComputeWindow(seq, seq[1].Copy())
	require.ErrorIs(t, err, ErrPanelNotFound)
}

func TestComputeWindow_DoesNotTouchSequence(t *testing.T) {
	seq := makePanels(1)
	before := seq[0]
	_, err := ComputeWindow(seq, seq[0])
	require.NoError(t, err)
	require.Len(t, seq, 1)
	assert.Same(t, before, seq[0])
	_, mounted := seq[0].Slot()
	assert.False(t, mounted)
}

func TestPanel_CopyOfCopyKeepsOrigin(t *testing.T) {
	p := NewPanel(textContent("a"))
	c := p.Copy().Copy()
	assert.Same(t, p, c.Origin())
	assert.Same(t, p, p.Origin())

	var nilPanel *Panel
	assert.Nil(t, nilPanel.Origin())
	assert.Nil(t, nilPanel.Content())
	assert.False(t, nilPanel.IsCopy())
}

func TestWindow_At(t *testing.T) {
	seq := makePanels(3)
	w := Window{Previous: seq[0], Middle: seq[1], Next: seq[2]}
	assert.Same(t, seq[0], w.At(SlotPrevious))
	assert.Same(t, seq[1], w.At(SlotMiddle))
	assert.Same(t, seq[2], w.At(SlotNext))
	assert.Nil(t, w.At(Slot(7)))
	assert.Equal(t, "middle", SlotMiddle.String())
}

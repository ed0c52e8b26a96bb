package shape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sequentialAllocator(start int) IDAllocator {
	next := start
	return func() int {
		id := next
		next++
		return id
	}
}

func TestCircle_ToBlockers(t *testing.T) {
	c := NewCircle(1, 10, 10, 5, "black", "white")

	horiz := c.ToBlockers(sequentialAllocator(100), ChordHorizontal)
	require.Len(t, horiz, 1)
	assert.Equal(t, 100, horiz[0].ID())
	assert.Equal(t, 1, horiz[0].IDOriginal())
	assert.InDelta(t, 10.0, horiz[0].Length(), 1e-9) // diameter

	vert := c.ToBlockers(sequentialAllocator(200), ChordVertical)
	require.Len(t, vert, 1)
	assert.InDelta(t, 10.0, vert[0].Length(), 1e-9)
}

func TestRectangle_ToBlockers(t *testing.T) {
	r := NewRectangle(2, 0, 0, 10, 5, "black", "white")
	blockers := r.ToBlockers(sequentialAllocator(300), ChordHorizontal)
	require.Len(t, blockers, 4)
	for i, b := range blockers {
		assert.Equal(t, 300+i, b.ID())
		assert.Equal(t, 2, b.IDOriginal())
	}
}

func TestText_ToBlockers_AnchorPositions(t *testing.T) {
	start := NewText(1, 50, 50, "hi", AnchorStart, "black")
	end := NewText(2, 50, 50, "hi", AnchorEnd, "black")
	middle := NewText(3, 50, 50, "hi", AnchorMiddle, "black")

	sb := start.ToBlockers(sequentialAllocator(1), ChordHorizontal)[0]
	eb := end.ToBlockers(sequentialAllocator(1), ChordHorizontal)[0]
	mb := middle.ToBlockers(sequentialAllocator(1), ChordHorizontal)[0]

	assert.InDelta(t, 50.0, sb.P1().X(), 1e-9)
	assert.InDelta(t, 70.0, sb.P2().X(), 1e-9)

	assert.InDelta(t, 30.0, eb.P1().X(), 1e-9)
	assert.InDelta(t, 50.0, eb.P2().X(), 1e-9)

	assert.InDelta(t, 40.0, mb.P1().X(), 1e-9)
	assert.InDelta(t, 60.0, mb.P2().X(), 1e-9)
}

func TestLine_SetColorsIsNoOp(t *testing.T) {
	l := NewLine(1, 0, 0, 10, 10, "black")
	l.SetColors("red", "red")
	color, _ := l.Colors()
	assert.Equal(t, "black", color)
}

func TestShape_Clone(t *testing.T) {
	c := NewCircle(1, 10, 10, 5, "black", "white")
	clone := c.Clone(99, 3, 4).(*Circle)
	assert.Equal(t, 99, clone.ID())
	assert.InDelta(t, 13.0, clone.Center().X(), 1e-9)
	assert.InDelta(t, 14.0, clone.Center().Y(), 1e-9)
	assert.True(t, clone.Active())

	r := NewRectangle(2, 0, 0, 10, 10, "black", "white")
	rClone := r.Clone(100, 1, 1).(*Rectangle)
	bl, _, tr, _ := rClone.Contour()
	assert.InDelta(t, 1.0, bl.X(), 1e-9)
	assert.InDelta(t, 11.0, tr.X(), 1e-9)
}

func TestShape_ActiveFlag(t *testing.T) {
	c := NewCircle(1, 0, 0, 1, "black", "white")
	assert.True(t, c.Active())
	c.SetActive(false)
	assert.False(t, c.Active())
}

package activeset

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arvelin/visibomb/point"
	"github.com/arvelin/visibomb/segment"
)

func TestSet_MinAtAngleZero(t *testing.T) {
	origin := point.New(0, 0)
	near := segment.New(1, 1, 5, -5, 5, 5, "")
	far := segment.New(2, 2, 10, -5, 10, 5, "")

	s := New(origin)
	s.SetAngle(0)
	s.Insert(1, near)
	s.Insert(2, far)

	handle, min, ok := s.Min()
	assert.True(t, ok)
	assert.Equal(t, Handle(1), handle)
	assert.Equal(t, 1, min.ID())
	assert.Equal(t, 2, s.Len())
}

func TestSet_RemoveChangesMin(t *testing.T) {
	origin := point.New(0, 0)
	near := segment.New(1, 1, 5, -5, 5, 5, "")
	far := segment.New(2, 2, 10, -5, 10, 5, "")

	s := New(origin)
	s.SetAngle(0)
	s.Insert(1, near)
	s.Insert(2, far)
	s.Remove(1, near)

	handle, min, ok := s.Min()
	assert.True(t, ok)
	assert.Equal(t, Handle(2), handle)
	assert.Equal(t, 2, min.ID())
	assert.Equal(t, 1, s.Len())
}

func TestSet_SetAngleReordersByNewDistance(t *testing.T) {
	origin := point.New(0, 0)
	// 'a' is closer along angle 0, but 'b' is closer along angle pi/2.
	a := segment.New(1, 1, 5, -1, 5, 1, "")
	b := segment.New(2, 2, -1, 3, 1, 3, "")

	s := New(origin)
	s.SetAngle(0)
	s.Insert(1, a)
	s.Insert(2, b)

	_, min, _ := s.Min()
	assert.Equal(t, 1, min.ID())

	s.SetAngle(1.5707963267948966) // pi/2
	_, min, _ = s.Min()
	assert.Equal(t, 2, min.ID())
}

func TestSet_EmptyMin(t *testing.T) {
	s := New(point.New(0, 0))
	_, _, ok := s.Min()
	assert.False(t, ok)
}

func TestSet_DistinctHandlesSameSegmentID(t *testing.T) {
	// Two seam-split halves of the same original segment share an id (the
	// segment id, not the handle) but must both survive in the set and be
	// addressable independently.
	origin := point.New(0, 0)
	halfA := segment.New(7, 3, 5, -5, 5, 0, "")
	halfB := segment.New(7, 3, 5, 0, 5, 5, "")

	s := New(origin)
	s.SetAngle(0)
	s.Insert(0, halfA)
	s.Insert(1, halfB)
	assert.Equal(t, 2, s.Len())

	s.Remove(0, halfA)
	assert.Equal(t, 1, s.Len())

	handle, min, ok := s.Min()
	assert.True(t, ok)
	assert.Equal(t, Handle(1), handle)
	assert.Equal(t, 7, min.ID())
}

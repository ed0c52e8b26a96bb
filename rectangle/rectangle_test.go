package rectangle

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arvelin/visibomb/point"
)

func TestRectangle_New(t *testing.T) {
	// Corners given out of order still resolve to the same axis-aligned rectangle.
	r := New(10, 5, 0, 0)
	bl, br, tr, tl := r.Contour()
	assert.True(t, bl.Eq(point.New(0, 0)))
	assert.True(t, br.Eq(point.New(10, 0)))
	assert.True(t, tr.Eq(point.New(10, 5)))
	assert.True(t, tl.Eq(point.New(0, 5)))
}

func TestRectangle_Contour(t *testing.T) {
	r := New(0, 0, 10, 5)
	bl, br, tr, tl := r.Contour()
	assert.True(t, bl.Eq(point.New(0, 0)))
	assert.True(t, br.Eq(point.New(10, 0)))
	assert.True(t, tr.Eq(point.New(10, 5)))
	assert.True(t, tl.Eq(point.New(0, 5)))
}

func TestRectangle_Translate(t *testing.T) {
	r := New(0, 0, 10, 10)
	moved := r.Translate(point.New(3, 4))
	bl, _, tr, _ := moved.Contour()
	assert.True(t, bl.Eq(point.New(3, 4)))
	assert.True(t, tr.Eq(point.New(13, 14)))
}

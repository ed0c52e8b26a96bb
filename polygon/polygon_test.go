package polygon

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arvelin/visibomb/point"
)

func TestPolygon_PushAndVertex(t *testing.T) {
	p := New()
	p.Push(0, 0)
	p.Push(10, 0)
	p.PushPoint(point.New(10, 10))

	assert.Equal(t, 3, p.Len())
	assert.True(t, p.Vertex(0).Eq(point.New(0, 0)))
	assert.True(t, p.Vertex(2).Eq(point.New(10, 10)))
}

func TestPolygon_Vertices(t *testing.T) {
	p := New()
	p.Push(1, 2)
	p.Push(3, 4)

	vs := p.Vertices()
	assert.Len(t, vs, 2)
	assert.True(t, vs[0].Eq(point.New(1, 2)))
	assert.True(t, vs[1].Eq(point.New(3, 4)))
}

func TestPolygon_Empty(t *testing.T) {
	p := New()
	assert.Equal(t, 0, p.Len())
}

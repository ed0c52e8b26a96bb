package circle

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arvelin/visibomb/point"
)

func TestCircle_NewFromPoint(t *testing.T) {
	c := NewFromPoint(point.New(1, 1), -3)
	assert.True(t, c.Center().Eq(point.New(1, 1)))
	assert.Equal(t, 3.0, c.Radius())
}

func TestCircle_Translate(t *testing.T) {
	c := New(0, 0, 3)
	moved := c.Translate(point.New(5, -2))
	assert.True(t, moved.Center().Eq(point.New(5, -2)))
	assert.Equal(t, 3.0, moved.Radius())
}

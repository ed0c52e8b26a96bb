package sweep

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arvelin/visibomb/point"
	"github.com/arvelin/visibomb/segment"
)

func TestCompute_EmptyScene_ReturnsBoundingBoxPolygon(t *testing.T) {
	origin := point.New(50, 50)
	bbox := BoundingBox{MinX: 0, MinY: 0, MaxX: 100, MaxY: 100}

	poly, ok := Compute(origin, nil, bbox)
	require.True(t, ok)
	assert.GreaterOrEqual(t, poly.Len(), 4)
}

func TestCompute_SingleBlocker_ProducesClosedPolygon(t *testing.T) {
	origin := point.New(50, 50)
	bbox := BoundingBox{MinX: 0, MinY: 0, MaxX: 100, MaxY: 100}
	blockers := []segment.Segment{
		segment.New(1, 1, 60, 40, 60, 60, "black"),
	}

	poly, ok := Compute(origin, blockers, bbox)
	require.True(t, ok)
	assert.GreaterOrEqual(t, poly.Len(), 4)

	// every vertex must lie on, or inside, the expanded bounding box.
	for i := 0; i < poly.Len(); i++ {
		v := poly.Vertex(i)
		assert.GreaterOrEqual(t, v.X(), bbox.MinX-bboxMargin-1e-6)
		assert.LessOrEqual(t, v.X(), bbox.MaxX+bboxMargin+1e-6)
		assert.GreaterOrEqual(t, v.Y(), bbox.MinY-bboxMargin-1e-6)
		assert.LessOrEqual(t, v.Y(), bbox.MaxY+bboxMargin+1e-6)
	}
}

func TestComputeWithBlockers_TracksVisibleBlocker(t *testing.T) {
	origin := point.New(50, 50)
	bbox := BoundingBox{MinX: 0, MinY: 0, MaxX: 100, MaxY: 100}
	blockers := []segment.Segment{
		segment.New(1, 1, 60, 40, 60, 60, "black"),
	}

	_, visible, ok := ComputeWithBlockers(origin, blockers, bbox)
	require.True(t, ok)
	require.Len(t, visible, 1)
	assert.Equal(t, 1, visible[0].ID())
}

func TestComputeWithBlockers_OccludedBlockerIsNotVisible(t *testing.T) {
	origin := point.New(50, 50)
	bbox := BoundingBox{MinX: 0, MinY: 0, MaxX: 100, MaxY: 100}
	// Two parallel blockers on the same side; only the nearer one should be
	// a front blocker.
	blockers := []segment.Segment{
		segment.New(1, 1, 60, 40, 60, 60, "black"),
		segment.New(2, 2, 70, 40, 70, 60, "black"),
	}

	_, visible, ok := ComputeWithBlockers(origin, blockers, bbox)
	require.True(t, ok)
	ids := make(map[int]bool)
	for _, v := range visible {
		ids[v.ID()] = true
	}
	assert.True(t, ids[1])
	assert.False(t, ids[2])
}

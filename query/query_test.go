package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arvelin/visibomb/numeric"
	"github.com/arvelin/visibomb/point"
	"github.com/arvelin/visibomb/scene"
	"github.com/arvelin/visibomb/shape"
	"github.com/arvelin/visibomb/sweep"
)

func newExecutor(shapes []shape.Shape) *Executor {
	bbox := sweep.BoundingBox{MinX: 0, MinY: 0, MaxX: 100, MaxY: 100}
	return NewExecutor(shapes, nil, scene.NewIDSource(1000), bbox, numeric.DefaultEpsilon)
}

func TestExecutor_Anteparo(t *testing.T) {
	rect := shape.NewRectangle(1, 10, 10, 20, 20, "black", "white")
	e := newExecutor([]shape.Shape{rect})

	report := e.Anteparo(1, 1, shape.ChordHorizontal)
	require.Len(t, report.Conversions, 1)
	assert.Equal(t, 1, report.Conversions[0].ShapeID)
	assert.Len(t, report.Conversions[0].BlockerIDs, 4)
	assert.Len(t, e.Blockers, 4)

	// Once converted, the source shape itself is no longer active (it is
	// now a blocker, not a shape).
	assert.False(t, rect.Active())
}

func TestExecutor_Anteparo_SkipsAlreadyInactiveShapes(t *testing.T) {
	rect := shape.NewRectangle(1, 10, 10, 20, 20, "black", "white")
	rect.SetActive(false)
	e := newExecutor([]shape.Shape{rect})

	report := e.Anteparo(1, 1, shape.ChordHorizontal)
	assert.Empty(t, report.Conversions)
	assert.Empty(t, e.Blockers)
}

func TestExecutor_Destroy(t *testing.T) {
	circle := shape.NewCircle(1, 50, 20, 5, "black", "white")
	e := newExecutor([]shape.Shape{circle})

	report, ok := e.Destroy(point.New(50, 50), "")
	require.True(t, ok)
	assert.Equal(t, scene.QueryDestroy, report.Kind)
	assert.Contains(t, report.DestroyedShapeIDs, 1)
	assert.False(t, circle.Active())
}

func TestExecutor_Destroy_RemovesVisibleBlockers(t *testing.T) {
	blocker := shape.NewCircle(2, 50, 20, 5, "black", "white")
	e := newExecutor([]shape.Shape{blocker})
	e.Anteparo(2, 2, shape.ChordHorizontal)
	require.Len(t, e.Blockers, 1)
	require.False(t, blocker.Active()) // converted, not destroyed, by anteparo

	_, ok := e.Destroy(point.New(50, 50), "")
	require.True(t, ok)
	assert.Empty(t, e.Blockers)
}

func TestExecutor_Destroy_AccumulatesOnDashSuffix(t *testing.T) {
	e := newExecutor(nil)
	_, ok := e.Destroy(point.New(50, 50), "-")
	require.True(t, ok)
	require.Len(t, e.Accumulator, 1)
	assert.True(t, e.Accumulator[0].Origin.Eq(point.New(50, 50)))
}

func TestExecutor_Paint_OnlyPaintsContainedShapes(t *testing.T) {
	inside := shape.NewCircle(1, 50, 50, 2, "black", "white")
	outside := shape.NewRectangle(2, 200, 200, 4, 4, "black", "white")
	e := newExecutor([]shape.Shape{inside, outside})

	report, ok := e.Paint(point.New(50, 50), "red")
	require.True(t, ok)
	assert.Equal(t, "red", report.Color)
	assert.Contains(t, report.PaintedShapeIDs, 1)
	assert.NotContains(t, report.PaintedShapeIDs, 2)

	border, fill := inside.Colors()
	assert.Equal(t, "red", border)
	assert.Equal(t, "red", fill)
}

func TestExecutor_Paint_SkipsInactiveShapes(t *testing.T) {
	inactive := shape.NewCircle(1, 50, 50, 2, "black", "white")
	inactive.SetActive(false)
	e := newExecutor([]shape.Shape{inactive})

	report, ok := e.Paint(point.New(50, 50), "red")
	require.True(t, ok)
	assert.Empty(t, report.PaintedShapeIDs)

	border, fill := inactive.Colors()
	assert.Equal(t, "black", border)
	assert.Equal(t, "white", fill)
}

func TestExecutor_Clone_MintsFreshIDsAndAppendsShapes(t *testing.T) {
	original := shape.NewCircle(1, 50, 50, 2, "black", "white")
	e := newExecutor([]shape.Shape{original})

	report, ok := e.Clone(point.New(50, 50), 5, 5, "")
	require.True(t, ok)
	require.Len(t, report.ClonedShapeIDs, 1)

	newID, exists := report.ClonedShapeIDs[1]
	require.True(t, exists)
	assert.Equal(t, 1000, newID)
	assert.Len(t, e.Shapes, 2)

	clone := e.Shapes[1].(*shape.Circle)
	assert.InDelta(t, 55.0, clone.Center().X(), 1e-9)
	assert.InDelta(t, 55.0, clone.Center().Y(), 1e-9)
}

func TestExecutor_Clone_SkipsInactiveShapes(t *testing.T) {
	inactive := shape.NewCircle(1, 50, 50, 2, "black", "white")
	inactive.SetActive(false)
	e := newExecutor([]shape.Shape{inactive})

	report, ok := e.Clone(point.New(50, 50), 1, 1, "")
	require.True(t, ok)
	assert.Empty(t, report.ClonedShapeIDs)
	assert.Len(t, e.Shapes, 1)
}

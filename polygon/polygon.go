// Package polygon provides the append-only vertex container the sweep
// engine fills in as it emits visibility-polygon vertices, one at a time, in
// angular order.
//
// It is deliberately narrow: push a vertex, read a vertex, read the count,
// or view the flat coordinate buffer. There is no general-purpose polygon
// algebra here (union, intersection, simplification); the geometry tests
// that need that reach for [point.Orientation] and [segment.SegmentsIntersect]
// directly.
package polygon

import "github.com/arvelin/visibomb/point"

// initialCapacity mirrors the teacher's dynamic-array-with-doubling-capacity
// container: 16 vertices before the first growth. Go's append already
// doubles capacity as needed, so this is only a starting allocation size.
const initialCapacity = 16

// Polygon is an ordered, append-only sequence of vertices.
type Polygon struct {
	coords []float64
}

// New returns an empty Polygon ready to receive vertices.
func New() Polygon {
	return Polygon{coords: make([]float64, 0, initialCapacity*2)}
}

// Push appends a vertex (x, y) to the polygon.
func (p *Polygon) Push(x, y float64) {
	p.coords = append(p.coords, x, y)
}

// PushPoint appends a vertex.
func (p *Polygon) PushPoint(v point.Point) {
	p.Push(v.X(), v.Y())
}

// Len returns the number of vertices in the polygon.
func (p Polygon) Len() int {
	return len(p.coords) / 2
}

// Vertex returns the i-th vertex, in insertion order.
func (p Polygon) Vertex(i int) point.Point {
	return point.New(p.coords[i*2], p.coords[i*2+1])
}

// Coords returns a read-only view of the flat [x0, y0, x1, y1, ...] buffer
// backing the polygon. The slice is only valid until the next Push.
func (p Polygon) Coords() []float64 {
	return p.coords
}

// Vertices returns the polygon's vertices as a fresh slice of points.
func (p Polygon) Vertices() []point.Point {
	out := make([]point.Point, p.Len())
	for i := range out {
		out[i] = p.Vertex(i)
	}
	return out
}

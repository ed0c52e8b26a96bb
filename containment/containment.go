// Package containment decides whether a point, or an entire shape, lies
// inside a visibility polygon. The original implementation's equivalent
// (forma_no_poligono) is referenced by its destroy and clone commands but
// was not part of the filtered original source this package was built
// against; its point-in-polygon primitive is grounded on the standard
// ray-casting parity test used throughout the original's visibility code,
// and the per-shape containment rules below follow the same "any part of
// the shape's outline is inside, or the outline crosses the boundary"
// conservative test the original's paint command was meant to perform
// (see query.Executor's Paint, which fixes that command's stub).
package containment

import (
	"math"

	"github.com/arvelin/visibomb/numeric"
	"github.com/arvelin/visibomb/options"
	"github.com/arvelin/visibomb/point"
	"github.com/arvelin/visibomb/polygon"
	"github.com/arvelin/visibomb/segment"
)

// PointInPolygon reports whether p lies inside poly, using the standard
// ray-casting parity test. A polygon with fewer than 3 vertices can never
// contain a point.
func PointInPolygon(p point.Point, poly polygon.Polygon, opts ...options.GeometryOptionsFunc) bool {
	n := poly.Len()
	if n < 3 {
		return false
	}
	o := options.ApplyGeometryOptions(options.GeometryOptions{Epsilon: numeric.DefaultEpsilon}, opts...)
	px, py := p.X(), p.Y()

	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		vi, vj := poly.Vertex(i), poly.Vertex(j)
		xi, yi := vi.X(), vi.Y()
		xj, yj := vj.X(), vj.Y()

		if math.Abs(px-xi) <= o.Epsilon && math.Abs(py-yi) <= o.Epsilon {
			return true
		}

		crosses := (yi > py) != (yj > py)
		if crosses {
			xIntersect := xi + (py-yi)/(yj-yi)*(xj-xi)
			if px < xIntersect {
				inside = !inside
			}
		}
	}
	return inside
}

// polygonEdges returns poly's edges as segments, in vertex order.
func polygonEdges(poly polygon.Polygon) []segment.Segment {
	n := poly.Len()
	edges := make([]segment.Segment, 0, n)
	for i := 0; i < n; i++ {
		a, b := poly.Vertex(i), poly.Vertex((i+1)%n)
		edges = append(edges, segment.NewFromPoints(-1, -1, a, b, ""))
	}
	return edges
}

// segmentCrossesPolygon reports whether s crosses any edge of poly.
func segmentCrossesPolygon(s segment.Segment, poly polygon.Polygon, opts ...options.GeometryOptionsFunc) bool {
	for _, edge := range polygonEdges(poly) {
		if segment.Intersects(s, edge, opts...) {
			return true
		}
	}
	return false
}

// circleInPolygon reports whether a circle (center, radius) overlaps poly:
// its center is inside, or some edge of poly passes within radius of the
// center (which also covers poly lying wholly inside the disc). This is a
// conservative containment test (any overlap counts), matching the
// "visible if any part of the shape is visible" rule applied elsewhere in
// this project's query semantics.
func circleInPolygon(center point.Point, radius float64, poly polygon.Polygon, opts ...options.GeometryOptionsFunc) bool {
	if PointInPolygon(center, poly, opts...) {
		return true
	}
	cx, cy := center.Coordinates()
	probes := []point.Point{
		point.New(cx-radius, cy), point.New(cx+radius, cy),
		point.New(cx, cy-radius), point.New(cx, cy+radius),
	}
	for _, p := range probes {
		if PointInPolygon(p, poly, opts...) {
			return true
		}
	}
	for i, n := 0, poly.Len(); i < n; i++ {
		a, b := poly.Vertex(i), poly.Vertex((i+1)%n)
		ex, ey := b.X()-a.X(), b.Y()-a.Y()
		t := 0.0
		if l2 := ex*ex + ey*ey; l2 > 0 {
			t = math.Max(0, math.Min(1, ((cx-a.X())*ex+(cy-a.Y())*ey)/l2))
		}
		if dx, dy := a.X()+t*ex-cx, a.Y()+t*ey-cy; dx*dx+dy*dy <= radius*radius {
			return true
		}
	}
	return false
}

// rectangleInPolygon reports whether a rectangle (given its four corners)
// overlaps poly: any corner is inside, or any edge crosses poly's boundary.
func rectangleInPolygon(bottomLeft, bottomRight, topRight, topLeft point.Point, poly polygon.Polygon, opts ...options.GeometryOptionsFunc) bool {
	corners := []point.Point{bottomLeft, bottomRight, topRight, topLeft}
	for _, c := range corners {
		if PointInPolygon(c, poly, opts...) {
			return true
		}
	}
	edges := []segment.Segment{
		segment.NewFromPoints(-1, -1, bottomLeft, bottomRight, ""),
		segment.NewFromPoints(-1, -1, bottomRight, topRight, ""),
		segment.NewFromPoints(-1, -1, topRight, topLeft, ""),
		segment.NewFromPoints(-1, -1, topLeft, bottomLeft, ""),
	}
	for _, e := range edges {
		if segmentCrossesPolygon(e, poly, opts...) {
			return true
		}
	}
	return false
}

// segmentInPolygon reports whether a line segment (p1, p2) overlaps poly:
// either endpoint is inside, or it crosses poly's boundary.
func segmentInPolygon(p1, p2 point.Point, poly polygon.Polygon, opts ...options.GeometryOptionsFunc) bool {
	if PointInPolygon(p1, poly, opts...) || PointInPolygon(p2, poly, opts...) {
		return true
	}
	return segmentCrossesPolygon(segment.NewFromPoints(-1, -1, p1, p2, ""), poly, opts...)
}

// Circle is the minimal shape-agnostic view containment needs of a circle.
type Circle interface {
	Center() point.Point
	Radius() float64
}

// Rectangle is the minimal shape-agnostic view containment needs of a
// rectangle.
type Rectangle interface {
	Contour() (bottomLeft, bottomRight, topRight, topLeft point.Point)
}

// Segment2 is the minimal shape-agnostic view containment needs of a line.
type Segment2 interface {
	P1() point.Point
	P2() point.Point
}

// ShapeInPolygon dispatches to the conservative containment test for
// whichever of Circle, Rectangle, or Segment2 shape implements, and for a
// bare point.Point tests point containment. Any other type reports false,
// and a polygon with fewer than 3 vertices contains no shape.
func ShapeInPolygon(shape interface{}, poly polygon.Polygon, opts ...options.GeometryOptionsFunc) bool {
	if poly.Len() < 3 {
		return false
	}
	switch v := shape.(type) {
	case Circle:
		return circleInPolygon(v.Center(), v.Radius(), poly, opts...)
	case Rectangle:
		bl, br, tr, tl := v.Contour()
		return rectangleInPolygon(bl, br, tr, tl, poly, opts...)
	case Segment2:
		return segmentInPolygon(v.P1(), v.P2(), poly, opts...)
	case point.Point:
		return PointInPolygon(v, poly, opts...)
	default:
		return false
	}
}

// Package segment represents the blocker primitive the sweep engine reasons
// about: an oriented line segment carrying an identity and a colour,
// alongside the ray/segment arithmetic the sweep needs to classify and order
// blockers around a viewpoint.
//
// A [Segment] is deliberately NOT normalized the way a general-purpose line
// segment library would be (endpoints are kept in the order the caller gave
// them): the sweep engine's seam split produces two new segments from one,
// and both must keep the identity of their parent, not some canonical
// ordering of their endpoints.
package segment

import (
	"fmt"
	"math"

	"github.com/arvelin/visibomb/numeric"
	"github.com/arvelin/visibomb/options"
	"github.com/arvelin/visibomb/point"
)

// Segment is a blocker: a straight edge an observer's line of sight can be
// stopped by. Id is the segment's own identity; IDOriginal names the shape
// (or -1 for a synthetic bounding-box edge) it was derived from.
type Segment struct {
	id         int
	idOriginal int
	p1, p2     point.Point
	color      string
}

// New creates a Segment from raw coordinates.
func New(id, idOriginal int, x1, y1, x2, y2 float64, color string) Segment {
	return NewFromPoints(id, idOriginal, point.New(x1, y1), point.New(x2, y2), color)
}

// NewFromPoints creates a Segment from two endpoints, preserving their order.
func NewFromPoints(id, idOriginal int, p1, p2 point.Point, color string) Segment {
	return Segment{id: id, idOriginal: idOriginal, p1: p1, p2: p2, color: color}
}

// ID returns the segment's own identity.
func (s Segment) ID() int { return s.id }

// IDOriginal returns the id of the shape this segment was derived from, or
// -1 if the segment is synthetic (a bounding-box edge).
func (s Segment) IDOriginal() int { return s.idOriginal }

// Artificial reports whether the segment was synthesized by the sweep
// engine (a bounding-box edge) rather than derived from a scene shape.
func (s Segment) Artificial() bool { return s.idOriginal == -1 }

// P1 returns the segment's first endpoint.
func (s Segment) P1() point.Point { return s.p1 }

// P2 returns the segment's second endpoint.
func (s Segment) P2() point.Point { return s.p2 }

// Color returns the segment's colour.
func (s Segment) Color() string { return s.color }

// Length returns the Euclidean length of the segment.
func (s Segment) Length() float64 {
	return s.p1.DistanceToPoint(s.p2)
}

// Split divides the segment at p, producing two new segments that share this
// segment's id, IDOriginal, and colour: (p1, p) and (p, p2). p is expected to
// lie on the segment (the sweep engine only calls this with a verified
// interior intersection point); Split does not itself validate that.
func (s Segment) Split(p point.Point) (Segment, Segment) {
	return NewFromPoints(s.id, s.idOriginal, s.p1, p, s.color),
		NewFromPoints(s.id, s.idOriginal, p, s.p2, s.color)
}

// String returns a human-readable representation of the segment.
func (s Segment) String() string {
	return fmt.Sprintf("segment{id=%d, idOriginal=%d, p1=%s, p2=%s}", s.id, s.idOriginal, s.p1, s.p2)
}

// RaySegmentIntersection intersects the ray from origin through direction
// with segment s, returning the intersection point and true if the ray
// (t >= 0) crosses the segment (0 <= u <= 1). A near-parallel ray/segment
// system returns (Point{}, false): degenerate geometry is a no-op here, not
// an error.
func RaySegmentIntersection(origin, direction point.Point, s Segment, opts ...options.GeometryOptionsFunc) (point.Point, bool) {
	o := options.ApplyGeometryOptions(options.GeometryOptions{Epsilon: numeric.DefaultEpsilon}, opts...)

	dx, dy := direction.X()-origin.X(), direction.Y()-origin.Y()
	sx1, sy1 := s.p1.X(), s.p1.Y()
	segx, segy := s.p2.X()-sx1, s.p2.Y()-sy1

	denom := dx*segy - dy*segx
	if math.Abs(denom) < o.Epsilon {
		return point.Point{}, false
	}

	t := ((sx1-origin.X())*segy - (sy1-origin.Y())*segx) / denom
	u := ((sx1-origin.X())*dy - (sy1-origin.Y())*dx) / denom

	if t < -o.Epsilon || u < -o.Epsilon || u > 1.0+o.Epsilon {
		return point.Point{}, false
	}

	return point.New(origin.X()+t*dx, origin.Y()+t*dy), true
}

// RayDistanceAlongAngle returns the ray parameter t at which the ray cast
// from origin at the given angle (radians) crosses segment s, or
// math.Inf(1) if the ray does not cross s. This is the ordering key the
// active-segment structure uses to find the nearest blocker along the
// current sweep angle.
func RayDistanceAlongAngle(origin point.Point, angle float64, s Segment, opts ...options.GeometryOptionsFunc) float64 {
	direction := point.New(origin.X()+math.Cos(angle), origin.Y()+math.Sin(angle))
	p, ok := RaySegmentIntersection(origin, direction, s, opts...)
	if !ok {
		return math.Inf(1)
	}
	return origin.DistanceToPoint(p)
}

// Intersects reports whether segments a and b cross or touch, using the
// standard orientation-based predicate with a collinear on-segment
// fallback.
func Intersects(a, b Segment, opts ...options.GeometryOptionsFunc) bool {
	return SegmentsIntersect(a.p1, a.p2, b.p1, b.p2, opts...)
}

// SegmentsIntersect reports whether the segment (a1,a2) crosses or touches
// the segment (b1,b2).
func SegmentsIntersect(a1, a2, b1, b2 point.Point, opts ...options.GeometryOptionsFunc) bool {
	o1 := point.Orientation(a1, a2, b1, opts...)
	o2 := point.Orientation(a1, a2, b2, opts...)
	o3 := point.Orientation(b1, b2, a1, opts...)
	o4 := point.Orientation(b1, b2, a2, opts...)

	if o1 != o2 && o3 != o4 {
		return true
	}
	if o1 == point.Collinear && onSegment(a1, a2, b1) {
		return true
	}
	if o2 == point.Collinear && onSegment(a1, a2, b2) {
		return true
	}
	if o3 == point.Collinear && onSegment(b1, b2, a1) {
		return true
	}
	if o4 == point.Collinear && onSegment(b1, b2, a2) {
		return true
	}
	return false
}

// onSegment reports whether p lies within the axis-aligned bounding box of
// segment (a,b). It is only meaningful once a, b, p have already been found
// collinear.
func onSegment(a, b, p point.Point) bool {
	return p.X() <= math.Max(a.X(), b.X()) && p.X() >= math.Min(a.X(), b.X()) &&
		p.Y() <= math.Max(a.Y(), b.Y()) && p.Y() >= math.Min(a.Y(), b.Y())
}

// Package point defines the foundational geometric primitive used throughout
// the library: the Point type. All other geometric types — line segments,
// rectangles, circles, polygons — are built on top of it.
//
// The Point type represents a two-dimensional point with floating-point
// coordinates. It provides the operations the visibility sweep actually
// needs: translation, distance, orientation (cross/sub), and polar angle.
//
// Floating-point operations may introduce precision errors. Comparison
// operations accept an optional tolerance via [options.WithEpsilon]; there
// is no package-level mutable epsilon.
package point

import (
	"fmt"
	"math"

	"github.com/arvelin/visibomb/numeric"
	"github.com/arvelin/visibomb/options"
)

// Point represents a point in two-dimensional space with x and y coordinates of type float64.
type Point struct {
	x float64
	y float64
}

// New creates a new Point with the specified x and y coordinates.
func New(x, y float64) Point {
	return Point{
		x: x,
		y: y,
	}
}

// Coordinates returns the X and Y coordinates of the Point as separate values.
func (p Point) Coordinates() (x, y float64) {
	return p.x, p.y
}

// CrossProduct returns the 2D cross product (determinant) of two vectors:
//
//	a × b = a.x * b.y - a.y * b.x
//
// A positive result indicates a counterclockwise turn, a negative result a
// clockwise turn, and zero indicates the points are collinear.
func (a Point) CrossProduct(b Point) float64 {
	return a.x*b.y - a.y*b.x
}

// DistanceSquaredToPoint calculates the squared Euclidean distance between
// Point p and another Point q, avoiding the square root when only distance
// comparisons are needed.
func (p Point) DistanceSquaredToPoint(q Point) float64 {
	return (q.x-p.x)*(q.x-p.x) + (q.y-p.y)*(q.y-p.y)
}

// DistanceToPoint calculates the Euclidean distance between p and q.
func (p Point) DistanceToPoint(q Point) float64 {
	return math.Sqrt(p.DistanceSquaredToPoint(q))
}

// Eq determines whether the calling Point p is equal to another Point q, within an optional
// tolerance.
//
// Parameters:
//   - q (Point): The Point to compare with the calling Point.
//   - opts: A variadic slice of [options.GeometryOptionsFunc] functions, notably [options.WithEpsilon].
//     When omitted, [numeric.DefaultEpsilon] is used.
func (p Point) Eq(q Point, opts ...options.GeometryOptionsFunc) bool {
	o := options.ApplyGeometryOptions(options.GeometryOptions{Epsilon: numeric.DefaultEpsilon}, opts...)
	return numeric.FloatEquals(p.x, q.x, o.Epsilon) && numeric.FloatEquals(p.y, q.y, o.Epsilon)
}

// PolarAngle returns the angle, in radians, of the ray from origin to p, measured
// counterclockwise from the positive x-axis and normalized to [0, 2*pi).
//
// This is the ordering key the sweep uses to classify segment endpoints into
// START/END events: see the sweep package.
func PolarAngle(origin, p Point) float64 {
	angle := math.Atan2(p.y-origin.y, p.x-origin.x)
	if angle < 0 {
		angle += 2 * math.Pi
	}
	return angle
}

// String returns a string representation of the Point in the format "(x,y)",
// each coordinate printed with six decimal places.
func (p Point) String() string {
	return fmt.Sprintf("(%f,%f)", p.x, p.y)
}

// Sub returns the vector from this point to another point.
func (p Point) Sub(q Point) Point {
	return New(p.x-q.x, p.y-q.y)
}

// Translate moves the Point by a given displacement vector.
func (p Point) Translate(delta Point) Point {
	return New(p.x+delta.x, p.y+delta.y)
}

// X returns the x-coordinate of the Point.
func (p Point) X() float64 {
	return p.x
}

// Y returns the y-coordinate of the Point.
func (p Point) Y() float64 {
	return p.y
}

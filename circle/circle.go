// Package circle provides a representation of circles in a two-dimensional space.
//
// The [Circle] type represents a circle defined by a center point and a
// radius, used by the shape package for circular scene objects and their
// conversion to chord blockers.
package circle

import (
	"math"

	"github.com/arvelin/visibomb/point"
)

// Circle represents a circle in 2D space with a center point and a radius.
type Circle struct {
	center point.Point // The center point of the circle
	radius float64     // The radius of the circle
}

// New creates a new [Circle] with the specified center coordinates and radius.
func New(x, y, radius float64) Circle {
	return Circle{
		center: point.New(x, y),
		radius: math.Abs(radius),
	}
}

// NewFromPoint creates a new [Circle] with the specified center [point.Point] and radius.
func NewFromPoint(center point.Point, radius float64) Circle {
	return Circle{
		center: center,
		radius: math.Abs(radius),
	}
}

// Center returns the center [point.Point] of the Circle.
func (c Circle) Center() point.Point {
	return c.center
}

// Radius returns the radius of the Circle.
func (c Circle) Radius() float64 {
	return c.radius
}

// Translate moves the circle by a specified vector (given as a [point.Point]),
// leaving the radius unchanged.
func (c Circle) Translate(v point.Point) Circle {
	return Circle{center: c.center.Translate(v), radius: c.radius}
}

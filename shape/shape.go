// Package shape models the scene objects a visibility query can act on:
// circles, rectangles, lines, and text labels. Each variant knows how to
// convert itself into one or more blocker segments (the "anteparo"
// conversion the sweep consumes) and how to clone itself with a positional
// offset.
//
// The active flag mirrors original_source/.../formas.c's tagged Forma
// union: every shape starts active (drawable, eligible for queries) and is
// cleared once it has been converted to a blocker or destroyed.
package shape

import (
	"github.com/arvelin/visibomb/circle"
	"github.com/arvelin/visibomb/point"
	"github.com/arvelin/visibomb/rectangle"
	"github.com/arvelin/visibomb/segment"
)

// Kind identifies a shape variant.
type Kind uint8

const (
	KindCircle Kind = iota
	KindRectangle
	KindLine
	KindText
)

// ChordOrientation selects which diameter of a circle becomes its blocker
// chord during anteparo conversion.
type ChordOrientation uint8

const (
	ChordHorizontal ChordOrientation = iota
	ChordVertical
)

// Anchor selects how a text shape's blocker segment is positioned relative
// to its anchor point, mirroring the "início"/"meio"/"fim" anchors of the
// original parser.
type Anchor uint8

const (
	AnchorStart Anchor = iota
	AnchorMiddle
	AnchorEnd
)

// IDAllocator mints a fresh, unique id. Shape→blocker conversion accepts one
// rather than a concrete id-source type, so this package has no dependency
// on how ids are actually minted.
type IDAllocator func() int

// Shape is anything a scene can hold and a query can act on.
type Shape interface {
	ID() int
	Kind() Kind
	Active() bool
	SetActive(bool)
	Colors() (border, fill string)
	SetColors(border, fill string)
	ToBlockers(next IDAllocator, orientation ChordOrientation) []segment.Segment
	Clone(id int, dx, dy float64) Shape
}

// Circle is a circular shape.
type Circle struct {
	id                     int
	c                      circle.Circle
	borderColor, fillColor string
	active                 bool
}

// NewCircle creates an active Circle shape.
func NewCircle(id int, x, y, radius float64, borderColor, fillColor string) *Circle {
	return &Circle{id: id, c: circle.New(x, y, radius), borderColor: borderColor, fillColor: fillColor, active: true}
}

func (s *Circle) ID() int               { return s.id }
func (s *Circle) Kind() Kind            { return KindCircle }
func (s *Circle) Active() bool          { return s.active }
func (s *Circle) SetActive(v bool)      { s.active = v }
func (s *Circle) Colors() (string, string) { return s.borderColor, s.fillColor }
func (s *Circle) SetColors(border, fill string) {
	s.borderColor, s.fillColor = border, fill
}
func (s *Circle) Center() point.Point { return s.c.Center() }
func (s *Circle) Radius() float64     { return s.c.Radius() }

// ToBlockers converts the circle to a single diametral chord: vertical
// (top-to-bottom) or horizontal (left-to-right) depending on orientation.
func (s *Circle) ToBlockers(next IDAllocator, orientation ChordOrientation) []segment.Segment {
	cx, cy := s.c.Center().Coordinates()
	r := s.c.Radius()
	if orientation == ChordVertical {
		return []segment.Segment{segment.New(next(), s.id, cx, cy-r, cx, cy+r, s.borderColor)}
	}
	return []segment.Segment{segment.New(next(), s.id, cx-r, cy, cx+r, cy, s.borderColor)}
}

// Clone returns a copy of the circle translated by (dx, dy), with a fresh
// id and the active flag set (clones are themselves active).
func (s *Circle) Clone(id int, dx, dy float64) Shape {
	return &Circle{id: id, c: s.c.Translate(point.New(dx, dy)), borderColor: s.borderColor, fillColor: s.fillColor, active: true}
}

// Rectangle is an axis-aligned rectangular shape.
type Rectangle struct {
	id                     int
	r                      rectangle.Rectangle
	borderColor, fillColor string
	active                 bool
}

// NewRectangle creates an active Rectangle shape with the given origin and
// extent.
func NewRectangle(id int, x, y, width, height float64, borderColor, fillColor string) *Rectangle {
	return &Rectangle{id: id, r: rectangle.New(x, y, x+width, y+height), borderColor: borderColor, fillColor: fillColor, active: true}
}

func (s *Rectangle) ID() int          { return s.id }
func (s *Rectangle) Kind() Kind       { return KindRectangle }
func (s *Rectangle) Active() bool     { return s.active }
func (s *Rectangle) SetActive(v bool) { s.active = v }
func (s *Rectangle) Colors() (string, string) {
	return s.borderColor, s.fillColor
}
func (s *Rectangle) SetColors(border, fill string) {
	s.borderColor, s.fillColor = border, fill
}
func (s *Rectangle) Contour() (bottomLeft, bottomRight, topRight, topLeft point.Point) {
	return s.r.Contour()
}

// ToBlockers converts the rectangle to its four edges (bottom, right, top,
// left), each a fresh-id segment sharing IDOriginal with the rectangle.
func (s *Rectangle) ToBlockers(next IDAllocator, _ ChordOrientation) []segment.Segment {
	bl, br, tr, tl := s.r.Contour()
	return []segment.Segment{
		segment.NewFromPoints(next(), s.id, bl, br, s.borderColor),
		segment.NewFromPoints(next(), s.id, br, tr, s.borderColor),
		segment.NewFromPoints(next(), s.id, tr, tl, s.borderColor),
		segment.NewFromPoints(next(), s.id, tl, bl, s.borderColor),
	}
}

// Clone returns a copy of the rectangle translated by (dx, dy).
func (s *Rectangle) Clone(id int, dx, dy float64) Shape {
	return &Rectangle{id: id, r: s.r.Translate(point.New(dx, dy)), borderColor: s.borderColor, fillColor: s.fillColor, active: true}
}

// Line is a straight blocker shape with a single colour and no fill; paint
// queries leave it unchanged (see SetColors).
type Line struct {
	id         int
	p1, p2     point.Point
	color      string
	active     bool
}

// NewLine creates an active Line shape.
func NewLine(id int, x1, y1, x2, y2 float64, color string) *Line {
	return &Line{id: id, p1: point.New(x1, y1), p2: point.New(x2, y2), color: color, active: true}
}

func (s *Line) ID() int          { return s.id }
func (s *Line) Kind() Kind       { return KindLine }
func (s *Line) Active() bool     { return s.active }
func (s *Line) SetActive(v bool) { s.active = v }
func (s *Line) Colors() (string, string) { return s.color, s.color }

// SetColors is a deliberate no-op: the original format has no fill/border
// setter for lines, so a paint query that reaches a Line leaves it
// unchanged.
func (s *Line) SetColors(_, _ string) {}
func (s *Line) P1() point.Point       { return s.p1 }
func (s *Line) P2() point.Point       { return s.p2 }

// ToBlockers converts the line to a single fresh-id segment with the same
// endpoints and colour.
func (s *Line) ToBlockers(next IDAllocator, _ ChordOrientation) []segment.Segment {
	return []segment.Segment{segment.NewFromPoints(next(), s.id, s.p1, s.p2, s.color)}
}

// Clone returns a copy of the line translated by (dx, dy).
func (s *Line) Clone(id int, dx, dy float64) Shape {
	v := point.New(dx, dy)
	return &Line{id: id, p1: s.p1.Translate(v), p2: s.p2.Translate(v), color: s.color, active: true}
}

// Text is a single-line text label, treated as a horizontal blocker segment
// whose length is estimated from its content.
type Text struct {
	id      int
	x, y    float64
	content string
	anchor  Anchor
	color   string
	active  bool
}

// charWidth is the per-character width (in scene units) used to estimate a
// text label's blocker length, matching the original parser's fixed
// monospace assumption.
const charWidth = 10.0

// NewText creates an active Text shape.
func NewText(id int, x, y float64, content string, anchor Anchor, color string) *Text {
	return &Text{id: id, x: x, y: y, content: content, anchor: anchor, color: color, active: true}
}

func (s *Text) ID() int          { return s.id }
func (s *Text) Kind() Kind       { return KindText }
func (s *Text) Active() bool     { return s.active }
func (s *Text) SetActive(v bool) { s.active = v }
func (s *Text) Colors() (string, string) { return s.color, s.color }
func (s *Text) SetColors(border, _ string) {
	s.color = border
}

// AnchorPoint returns the label's anchor point.
func (s *Text) AnchorPoint() point.Point { return point.New(s.x, s.y) }

// Content returns the label's text content.
func (s *Text) Content() string { return s.content }

func (s *Text) length() float64 {
	return charWidth * float64(len([]rune(s.content)))
}

// P1 and P2 return the endpoints of the text label's blocker segment (see
// ToBlockers), letting containment.ShapeInPolygon treat a Text the same
// way it treats a Line.
func (s *Text) P1() point.Point {
	p1, _ := s.endpoints()
	return p1
}

func (s *Text) P2() point.Point {
	_, p2 := s.endpoints()
	return p2
}

func (s *Text) endpoints() (point.Point, point.Point) {
	length := s.length()
	var x1, x2 float64
	switch s.anchor {
	case AnchorStart:
		x1, x2 = s.x, s.x+length
	case AnchorEnd:
		x1, x2 = s.x-length, s.x
	default:
		x1, x2 = s.x-length/2, s.x+length/2
	}
	return point.New(x1, s.y), point.New(x2, s.y)
}

// ToBlockers converts the text label to a single fresh-id horizontal
// segment, positioned relative to its anchor point according to its
// anchor mode.
func (s *Text) ToBlockers(next IDAllocator, _ ChordOrientation) []segment.Segment {
	p1, p2 := s.endpoints()
	return []segment.Segment{segment.NewFromPoints(next(), s.id, p1, p2, s.color)}
}

// Clone returns a copy of the text label translated by (dx, dy).
func (s *Text) Clone(id int, dx, dy float64) Shape {
	return &Text{id: id, x: s.x + dx, y: s.y + dy, content: s.content, anchor: s.anchor, color: s.color, active: true}
}

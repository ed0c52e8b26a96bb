// Package render defines the rendering contract a scene and its query
// bombs are drawn through, plus a minimal SVG writer that exercises it.
// Grounded on original_source/.../svg.c: its string-template drawing
// functions (svg_desenhar_circulo/_retangulo/_linha/_texto,
// svg_desenhar_poligono's 3-vertex guard) are adapted; text is drawn at its
// anchor point with no text-anchor or font-weight attribute. The writer
// itself is not a spec surface —
// it exists so the contract can be demonstrated end-to-end by cmd/visibomb
// and by tests.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/arvelin/visibomb/point"
	"github.com/arvelin/visibomb/polygon"
	"github.com/arvelin/visibomb/segment"
	"github.com/arvelin/visibomb/shape"
)

// Region is the viewBox a Renderer draws into.
type Region struct {
	MinX, MinY, Width, Height float64
}

// Bomb is one origin/visibility-polygon pair to be drawn as a translucent
// region plus a marker at its origin, mirroring cmd_d.c/cmd_cln.c's
// svg_desenhar_bomba + svg_desenhar_poligono_visibilidade pairing.
type Bomb struct {
	Origin       point.Point
	Polygon      polygon.Polygon
	PolygonFill  string
	PolygonAlpha float64
}

// Renderer draws a scene (shapes, blockers, and zero or more bombs) to a
// document.
type Renderer interface {
	Comment(text string)
	Shapes(shapes []shape.Shape)
	Blockers(blockers []segment.Segment)
	Bombs(bombs []Bomb)
	Close() error
}

// SVGWriter is a minimal, hand-rolled SVG renderer, in the teacher's
// string-template style rather than a DOM/templating library — matching
// the original's own approach.
type SVGWriter struct {
	w io.Writer
}

// NewSVGWriter writes an SVG header (viewBox plus a white background rect)
// to w and returns a Renderer ready to draw into it.
func NewSVGWriter(w io.Writer, region Region) *SVGWriter {
	fmt.Fprintf(w, "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n"+
		"<svg xmlns=\"http://www.w3.org/2000/svg\" viewBox=\"%.2f %.2f %.2f %.2f\">\n",
		region.MinX, region.MinY, region.Width, region.Height)
	fmt.Fprintf(w, "  <!-- background -->\n"+
		"  <rect x=\"%.2f\" y=\"%.2f\" width=\"%.2f\" height=\"%.2f\" fill=\"white\" stroke=\"none\"/>\n\n",
		region.MinX, region.MinY, region.Width, region.Height)
	return &SVGWriter{w: w}
}

// Comment emits an XML comment line.
func (s *SVGWriter) Comment(text string) {
	fmt.Fprintf(s.w, "  <!-- %s -->\n", text)
}

// Shapes draws every shape, dispatching on its concrete variant.
func (s *SVGWriter) Shapes(shapes []shape.Shape) {
	fmt.Fprintf(s.w, "  <!-- scene shapes -->\n")
	for _, sh := range shapes {
		s.drawShape(sh)
	}
	fmt.Fprintf(s.w, "\n")
}

func (s *SVGWriter) drawShape(sh shape.Shape) {
	switch v := sh.(type) {
	case *shape.Circle:
		border, fill := v.Colors()
		cx, cy := v.Center().Coordinates()
		fmt.Fprintf(s.w, "  <circle cx=\"%.2f\" cy=\"%.2f\" r=\"%.2f\" stroke=\"%s\" fill=\"%s\" stroke-width=\"1\"/>\n",
			cx, cy, v.Radius(), border, fill)
	case *shape.Rectangle:
		border, fill := v.Colors()
		bl, _, tr, _ := v.Contour()
		fmt.Fprintf(s.w, "  <rect x=\"%.2f\" y=\"%.2f\" width=\"%.2f\" height=\"%.2f\" stroke=\"%s\" fill=\"%s\" stroke-width=\"1\"/>\n",
			bl.X(), bl.Y(), tr.X()-bl.X(), tr.Y()-bl.Y(), border, fill)
	case *shape.Line:
		color, _ := v.Colors()
		fmt.Fprintf(s.w, "  <line x1=\"%.2f\" y1=\"%.2f\" x2=\"%.2f\" y2=\"%.2f\" stroke=\"%s\" stroke-width=\"1\"/>\n",
			v.P1().X(), v.P1().Y(), v.P2().X(), v.P2().Y(), color)
	case *shape.Text:
		color, _ := v.Colors()
		fmt.Fprintf(s.w, "  <text x=\"%.2f\" y=\"%.2f\" stroke=\"%s\" fill=\"%s\">%s</text>\n",
			v.AnchorPoint().X(), v.AnchorPoint().Y(), color, color, escapeXML(v.Content()))
	}
}

// Blockers draws the current anteparo segments, as plain lines.
func (s *SVGWriter) Blockers(blockers []segment.Segment) {
	if len(blockers) == 0 {
		return
	}
	fmt.Fprintf(s.w, "  <!-- blockers -->\n")
	for _, b := range blockers {
		fmt.Fprintf(s.w, "  <line x1=\"%.2f\" y1=\"%.2f\" x2=\"%.2f\" y2=\"%.2f\" stroke=\"%s\" stroke-width=\"1\"/>\n",
			b.P1().X(), b.P1().Y(), b.P2().X(), b.P2().Y(), b.Color())
	}
	fmt.Fprintf(s.w, "\n")
}

// Bombs draws each bomb's visibility polygon (as a translucent polygon,
// requiring at least 3 vertices) and its origin marker.
func (s *SVGWriter) Bombs(bombs []Bomb) {
	for _, b := range bombs {
		s.drawPolygon(b.Polygon, "none", b.PolygonFill, b.PolygonAlpha)
		s.drawOriginMarker(b.Origin)
	}
}

func (s *SVGWriter) drawPolygon(poly polygon.Polygon, borderColor, fillColor string, alpha float64) {
	if poly.Len() < 3 {
		return
	}
	if borderColor == "" {
		borderColor = "black"
	}
	if fillColor == "" {
		fillColor = "none"
	}
	var b strings.Builder
	for i := 0; i < poly.Len(); i++ {
		v := poly.Vertex(i)
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%.2f,%.2f", v.X(), v.Y())
	}
	fmt.Fprintf(s.w, "  <polygon points=\"%s\" stroke=\"%s\" fill=\"%s\" fill-opacity=\"%.2f\" stroke-width=\"1\"/>\n",
		b.String(), borderColor, fillColor, alpha)
}

func (s *SVGWriter) drawOriginMarker(origin point.Point) {
	fmt.Fprintf(s.w, "  <circle cx=\"%.2f\" cy=\"%.2f\" r=\"5.00\" stroke=\"none\" fill=\"#FF0000\"/>\n",
		origin.X(), origin.Y())
}

// Close writes the closing tag. It never closes the underlying writer.
func (s *SVGWriter) Close() error {
	_, err := fmt.Fprintf(s.w, "</svg>\n")
	return err
}

func escapeXML(s string) string {
	replacer := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	return replacer.Replace(s)
}

// Package query implements the four bomb queries a scene can be subjected
// to — anteparo, destroy, paint, clone — each grounded one-for-one on
// original_source/.../cmd_a.c, cmd_d.c, cmd_p.c, cmd_cln.c.
package query

import (
	"github.com/arvelin/visibomb/containment"
	"github.com/arvelin/visibomb/options"
	"github.com/arvelin/visibomb/point"
	"github.com/arvelin/visibomb/polygon"
	"github.com/arvelin/visibomb/scene"
	"github.com/arvelin/visibomb/segment"
	"github.com/arvelin/visibomb/shape"
	"github.com/arvelin/visibomb/sweep"
)

// AccumulatedBomb is one entry of Executor's Accumulator: a visibility
// polygon paired with the viewpoint that produced it, collected whenever a
// destroy or clone query's Suffix is "-" (cmd_d.c's acumulador_poligonos /
// acumulador_bombas).
type AccumulatedBomb struct {
	Origin  point.Point
	Polygon polygon.Polygon
}

// Executor runs queries against a live scene: the shape list, the blocker
// (anteparo) list, and the evolving id source new blockers/clones are
// minted from. Shapes and blockers are owned by the caller; Executor
// mutates the slices it's given (appending clones, removing destroyed
// blockers) the same way the original's in-place linked lists did.
type Executor struct {
	Shapes   []shape.Shape
	Blockers []segment.Segment
	IDs      *scene.IDSource
	Bbox     sweep.BoundingBox
	Epsilon  float64

	// Accumulator collects polygon/origin pairs from destroy and clone
	// queries whose Suffix is "-", for a single composite render pass,
	// mirroring cmd_d.c's "-" suffix handling.
	Accumulator []AccumulatedBomb
}

// NewExecutor creates an Executor over the given shapes and initial
// blockers, using ids to mint new blocker/clone ids.
func NewExecutor(shapes []shape.Shape, blockers []segment.Segment, ids *scene.IDSource, bbox sweep.BoundingBox, epsilon float64) *Executor {
	return &Executor{Shapes: shapes, Blockers: blockers, IDs: ids, Bbox: bbox, Epsilon: epsilon}
}

func (e *Executor) opts() []options.GeometryOptionsFunc {
	return []options.GeometryOptionsFunc{options.WithEpsilon(e.Epsilon)}
}

// Anteparo converts every active shape whose id lies in [idStart, idEnd]
// into blocker segments, appends them to e.Blockers, records the
// conversion in the report, and clears the source shape's active flag (it
// is now a blocker, not a shape any later query should see). Grounded on
// cmd_a.c's executar_cmd_a.
func (e *Executor) Anteparo(idStart, idEnd int, chordOrientation shape.ChordOrientation) scene.Report {
	report := scene.Report{Kind: scene.QueryAnteparo}
	for _, s := range e.Shapes {
		if !s.Active() || s.ID() < idStart || s.ID() > idEnd {
			continue
		}
		blockers := s.ToBlockers(e.IDs.Next, chordOrientation)
		e.Blockers = append(e.Blockers, blockers...)
		s.SetActive(false)

		ids := make([]int, len(blockers))
		for i, b := range blockers {
			ids[i] = b.ID()
		}
		report.Conversions = append(report.Conversions, scene.Conversion{ShapeID: s.ID(), BlockerIDs: ids})
	}
	return report
}

// Destroy computes the visibility polygon from origin, deactivates every
// active shape inside it, and removes every blocker that was a front
// blocker (biombo) at some angle of the sweep. Grounded on cmd_d.c's
// executar_cmd_d. ok is false only if the sweep itself reported failure
// (see sweep.Compute); the caller should then skip the query, per spec.md §7.
func (e *Executor) Destroy(origin point.Point, suffix string) (scene.Report, bool) {
	poly, visibleBlockers, ok := sweep.ComputeWithBlockers(origin, e.Blockers, e.Bbox, e.opts()...)
	if !ok {
		return scene.Report{}, false
	}

	report := scene.Report{Kind: scene.QueryDestroy, OriginX: origin.X(), OriginY: origin.Y(), Suffix: suffix}

	for _, s := range e.Shapes {
		if !s.Active() {
			continue
		}
		if containment.ShapeInPolygon(s, poly, e.opts()...) {
			s.SetActive(false)
			report.DestroyedShapeIDs = append(report.DestroyedShapeIDs, s.ID())
		}
	}

	destroyed := make(map[int]bool, len(visibleBlockers))
	for _, b := range visibleBlockers {
		destroyed[b.ID()] = true
		report.DestroyedBlockerIDs = append(report.DestroyedBlockerIDs, b.ID())
	}
	if len(destroyed) > 0 {
		kept := e.Blockers[:0]
		for _, b := range e.Blockers {
			if !destroyed[b.ID()] {
				kept = append(kept, b)
			}
		}
		e.Blockers = kept
	}

	if suffix == "-" {
		e.Accumulator = append(e.Accumulator, AccumulatedBomb{Origin: origin, Polygon: poly})
	}

	return report, true
}

// Paint computes the visibility polygon from origin and recolours every
// active shape it contains with colour. Unlike the original's cmd_p.c —
// whose forma_visivel stub always returned true — this uses the same
// containment test destroy and clone use, so only active shapes actually
// inside the polygon are painted.
func (e *Executor) Paint(origin point.Point, color string) (scene.Report, bool) {
	poly, ok := sweep.Compute(origin, e.Blockers, e.Bbox, e.opts()...)
	if !ok {
		return scene.Report{}, false
	}

	report := scene.Report{Kind: scene.QueryPaint, OriginX: origin.X(), OriginY: origin.Y(), Color: color}
	for _, s := range e.Shapes {
		if s.Active() && containment.ShapeInPolygon(s, poly, e.opts()...) {
			s.SetColors(color, color)
			report.PaintedShapeIDs = append(report.PaintedShapeIDs, s.ID())
		}
	}
	return report, true
}

// Clone computes the visibility polygon from origin and appends a
// translated (dx, dy) copy of every active, visible shape to e.Shapes,
// minting a fresh id for each via e.IDs. Grounded on cmd_cln.c's
// executar_cmd_cln, including its two-phase collect-then-clone structure
// (the original takes care not to mutate lista_formas while iterating it;
// appending to e.Shapes mid-range-loop would have the same hazard in Go).
func (e *Executor) Clone(origin point.Point, dx, dy float64, suffix string) (scene.Report, bool) {
	poly, ok := sweep.Compute(origin, e.Blockers, e.Bbox, e.opts()...)
	if !ok {
		return scene.Report{}, false
	}

	var toClone []shape.Shape
	for _, s := range e.Shapes {
		if s.Active() && containment.ShapeInPolygon(s, poly, e.opts()...) {
			toClone = append(toClone, s)
		}
	}

	report := scene.Report{Kind: scene.QueryClone, OriginX: origin.X(), OriginY: origin.Y(), Suffix: suffix, ClonedShapeIDs: map[int]int{}}
	for _, s := range toClone {
		newID := e.IDs.Next()
		clone := s.Clone(newID, dx, dy)
		e.Shapes = append(e.Shapes, clone)
		report.ClonedShapeIDs[s.ID()] = newID
	}

	if suffix == "-" {
		e.Accumulator = append(e.Accumulator, AccumulatedBomb{Origin: origin, Polygon: poly})
	}

	return report, true
}

// Package sweep implements the angular plane-sweep visibility algorithm:
// given a viewpoint and a set of blocking segments, it computes the
// star-shaped visibility polygon around the viewpoint.
//
// The algorithm, its seam-splitting preprocessing step, and its
// blocker-tracking variant are all grounded directly on
// original_source/.../visibilidade.c's calcular_visibilidade and
// calcular_visibilidade_com_segmentos.
package sweep

import (
	"math"

	"github.com/arvelin/visibomb/activeset"
	"github.com/arvelin/visibomb/numeric"
	"github.com/arvelin/visibomb/options"
	"github.com/arvelin/visibomb/point"
	"github.com/arvelin/visibomb/polygon"
	"github.com/arvelin/visibomb/segment"
)

// bboxMargin pads the caller-supplied bounding box on all four sides before
// it is turned into synthetic blocker segments, matching MARGEM_BBOX in the
// original implementation.
const bboxMargin = 5.0

// BoundingBox is the rectangular region the visibility polygon is clipped
// to when no blocker stops the line of sight.
type BoundingBox struct {
	MinX, MinY, MaxX, MaxY float64
}

// Compute returns the visibility polygon for a viewpoint at origin, given a
// set of blocker segments and a bounding box. It returns false only when the
// event stream is empty; the four bounding-box edges (padded by bboxMargin)
// are always added first, so every input yields events and ok is true.
func Compute(origin point.Point, blockers []segment.Segment, bbox BoundingBox, opts ...options.GeometryOptionsFunc) (polygon.Polygon, bool) {
	poly, _, ok := compute(origin, blockers, bbox, false, opts...)
	return poly, ok
}

// ComputeWithBlockers is Compute's blocker-tracking variant: alongside the
// visibility polygon it returns the set of non-artificial blockers that
// were, at some angle during the sweep, the front blocker (the "biombo") —
// i.e. the blockers whose silhouette actually shaped the polygon. Queries
// that need to know which scene segments were visible (destroy) use this
// variant; queries that only need the polygon (paint, clone) use Compute.
func ComputeWithBlockers(origin point.Point, blockers []segment.Segment, bbox BoundingBox, opts ...options.GeometryOptionsFunc) (polygon.Polygon, []segment.Segment, bool) {
	return compute(origin, blockers, bbox, true, opts...)
}

func compute(origin point.Point, blockersIn []segment.Segment, bbox BoundingBox, track bool, opts ...options.GeometryOptionsFunc) (polygon.Polygon, []segment.Segment, bool) {
	o := options.ApplyGeometryOptions(options.GeometryOptions{Epsilon: numeric.DefaultEpsilon}, opts...)
	epsilon := o.Epsilon

	working := make([]segment.Segment, len(blockersIn))
	copy(working, blockersIn)

	minX, minY, maxX, maxY := bbox.MinX, bbox.MinY, bbox.MaxX, bbox.MaxY
	ox, oy := origin.Coordinates()
	minX = math.Min(minX, ox) - bboxMargin
	minY = math.Min(minY, oy) - bboxMargin
	maxX = math.Max(maxX, ox) + bboxMargin
	maxY = math.Max(maxY, oy) + bboxMargin

	working = append(working, boundingBoxSegments(minX, minY, maxX, maxY)...)
	working = splitAtSeam(origin, working, epsilon)

	events := buildEvents(origin, working, epsilon)
	if len(events) == 0 {
		return polygon.New(), nil, false
	}
	ordered := orderEvents(events, epsilon)
	logDebugf("sweep: origin=%s blockers=%d events=%d track=%v", origin, len(working), len(ordered), track)

	active := activeset.New(origin, options.WithEpsilon(epsilon))
	active.SetAngle(0)
	for i, seg := range working {
		if !math.IsInf(segment.RayDistanceAlongAngle(origin, 0, seg, options.WithEpsilon(epsilon)), 1) {
			active.Insert(activeset.Handle(i), seg)
		}
	}

	result := polygon.New()
	var lastPoint point.Point
	haveLast := false

	var visible map[int]segment.Segment
	if track {
		visible = make(map[int]segment.Segment)
	}
	recordVisible := func(seg segment.Segment) {
		if track && !seg.Artificial() {
			visible[seg.ID()] = seg
		}
	}

	emit := func(p point.Point) {
		if !haveLast || !p.Eq(lastPoint, options.WithEpsilon(epsilon)) {
			result.PushPoint(p)
			lastPoint = p
			haveLast = true
		}
	}

	biomboHandle, biombo, hasBiombo := active.Min()
	if hasBiombo {
		direction := point.New(ox+1000, oy)
		if ip, ok := segment.RaySegmentIntersection(origin, direction, biombo, options.WithEpsilon(epsilon)); ok {
			emit(ip)
		}
		recordVisible(biombo)
	}

	for _, ev := range ordered {
		active.SetAngle(ev.Angle)
		switch ev.Type {
		case EventStart:
			active.Insert(ev.Handle, ev.Segment)
			newHandle, newBiombo, hasNew := active.Min()
			becameFront := hasNew && newHandle == ev.Handle &&
				!(hasBiombo && biomboHandle == ev.Handle)
			if becameFront {
				if hasBiombo {
					if ip, ok := segment.RaySegmentIntersection(origin, ev.Point, biombo, options.WithEpsilon(epsilon)); ok {
						emit(ip)
					}
				}
				emit(ev.Point)
				recordVisible(newBiombo)
				biomboHandle, biombo, hasBiombo = newHandle, newBiombo, true
			}
		case EventEnd:
			if hasBiombo && ev.Handle == biomboHandle {
				emit(ev.Point)
				active.Remove(ev.Handle, ev.Segment)
				newHandle, newBiombo, hasNew := active.Min()
				if hasNew {
					if ip, ok := segment.RaySegmentIntersection(origin, ev.Point, newBiombo, options.WithEpsilon(epsilon)); ok {
						emit(ip)
					}
					recordVisible(newBiombo)
				}
				biomboHandle, biombo, hasBiombo = newHandle, newBiombo, hasNew
			} else {
				active.Remove(ev.Handle, ev.Segment)
			}
		}
	}

	var visibleList []segment.Segment
	if track {
		visibleList = make([]segment.Segment, 0, len(visible))
		for _, seg := range visible {
			visibleList = append(visibleList, seg)
		}
	}
	return result, visibleList, true
}

// boundingBoxSegments synthesizes the four edges of the bounding box as
// artificial blockers (IDOriginal -1), in counter-clockwise order starting
// from the bottom edge.
func boundingBoxSegments(minX, minY, maxX, maxY float64) []segment.Segment {
	return []segment.Segment{
		segment.New(-1, -1, minX, minY, maxX, minY, "none"),
		segment.New(-2, -1, maxX, minY, maxX, maxY, "none"),
		segment.New(-3, -1, maxX, maxY, minX, maxY, "none"),
		segment.New(-4, -1, minX, maxY, minX, minY, "none"),
	}
}

// splitAtSeam replaces every segment that straddles the angle-0 ray
// (cast from origin toward (ox+1, oy)) with two segments sharing the
// original's id, so that no single segment spans the 0/2*pi wraparound the
// event ordering relies on.
func splitAtSeam(origin point.Point, segs []segment.Segment, epsilon float64) []segment.Segment {
	ox, oy := origin.Coordinates()
	direction := point.New(ox+1.0, oy)

	out := make([]segment.Segment, 0, len(segs))
	for _, seg := range segs {
		ip, ok := segment.RaySegmentIntersection(origin, direction, seg, options.WithEpsilon(epsilon))
		if !ok {
			out = append(out, seg)
			continue
		}
		if seg.P1().DistanceToPoint(ip) <= epsilon || seg.P2().DistanceToPoint(ip) <= epsilon {
			out = append(out, seg)
			continue
		}
		s1, s2 := seg.Split(ip)
		out = append(out, s1, s2)
	}
	return out
}

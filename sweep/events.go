package sweep

import (
	"github.com/google/btree"

	"github.com/arvelin/visibomb/activeset"
	"github.com/arvelin/visibomb/numeric"
	"github.com/arvelin/visibomb/point"
	"github.com/arvelin/visibomb/segment"
)

// EventType classifies a sweep event as the start or the end of a segment's
// angular span, as seen from the viewpoint.
type EventType uint8

const (
	// EventStart marks the endpoint of a segment with the smaller polar
	// angle (ties broken by the smaller distance).
	EventStart EventType = iota
	// EventEnd marks the segment's other endpoint.
	EventEnd
)

// Event is one angular-sweep event: a segment endpoint, tagged with its
// polar angle and distance from the viewpoint, and whether it starts or
// ends that segment's angular span. Handle identifies which working-list
// segment instance this event belongs to — two seam-split halves of the
// same original segment share Segment.ID() but never share a Handle, so the
// active set and the sweep can always tell them apart.
type Event struct {
	Point    point.Point
	Angle    float64
	Distance float64
	Type     EventType
	Segment  segment.Segment
	Handle   activeset.Handle
}

// buildEvents produces two events per segment (one START, one END) by
// comparing the polar angles of its two endpoints around origin. Each
// segment's position in segs becomes its Handle, so callers must pass the
// same working list (in the same order) to activeset.Set.
func buildEvents(origin point.Point, segs []segment.Segment, epsilon float64) []Event {
	events := make([]Event, 0, len(segs)*2)
	for i, seg := range segs {
		handle := activeset.Handle(i)
		p1, p2 := seg.P1(), seg.P2()
		ang1, ang2 := point.PolarAngle(origin, p1), point.PolarAngle(origin, p2)
		dist1, dist2 := origin.DistanceToPoint(p1), origin.DistanceToPoint(p2)

		startPoint, startAngle, startDist := p1, ang1, dist1
		endPoint, endAngle, endDist := p2, ang2, dist2
		if ang2 < ang1 || (numeric.FloatEquals(ang1, ang2, epsilon) && dist2 < dist1) {
			startPoint, startAngle, startDist = p2, ang2, dist2
			endPoint, endAngle, endDist = p1, ang1, dist1
		}

		events = append(events,
			Event{Point: startPoint, Angle: startAngle, Distance: startDist, Type: EventStart, Segment: seg, Handle: handle},
			Event{Point: endPoint, Angle: endAngle, Distance: endDist, Type: EventEnd, Segment: seg, Handle: handle},
		)
	}
	return events
}

// eventItem wraps an Event with the sequence number it was built in, used
// to break ties between events equal in (angle, type, distance) so that
// ordering is deterministic across runs on the same input.
type eventItem struct {
	event Event
	seq   int
}

// newEventLess returns the btree.LessFunc ordering events by angle
// ascending, START before END, then distance ascending, with ties broken
// by insertion sequence.
func newEventLess(epsilon float64) btree.LessFunc[eventItem] {
	return func(a, b eventItem) bool {
		if !numeric.FloatEquals(a.event.Angle, b.event.Angle, epsilon) {
			return a.event.Angle < b.event.Angle
		}
		if a.event.Type != b.event.Type {
			return a.event.Type == EventStart
		}
		if !numeric.FloatEquals(a.event.Distance, b.event.Distance, epsilon) {
			return a.event.Distance < b.event.Distance
		}
		return a.seq < b.seq
	}
}

// orderEvents sorts events into sweep order using a google/btree BTreeG
// keyed by the ordering above, mirroring the example pack's event-queue
// pattern (there used for a Bentley-Ottmann sweep, here adapted to
// angle/type/distance ordering).
func orderEvents(events []Event, epsilon float64) []Event {
	tree := btree.NewG(32, newEventLess(epsilon))
	for i, ev := range events {
		tree.ReplaceOrInsert(eventItem{event: ev, seq: i})
	}
	ordered := make([]Event, 0, tree.Len())
	tree.Ascend(func(item eventItem) bool {
		ordered = append(ordered, item.event)
		return true
	})
	return ordered
}

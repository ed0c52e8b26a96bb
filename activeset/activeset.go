// Package activeset implements the sweep's active-segment structure: the
// set of blockers currently crossed by the sweep ray, ordered by distance
// from the viewpoint along the ray at the structure's current angle.
//
// It is backed by an [github.com/emirpasic/gods/trees/redblacktree.Tree]
// whose comparator closes over a pointer to the structure's current angle,
// the same technique the example pack's Bentley-Ottmann status structure
// uses for its sweep position. The gods red-black tree has no reheapify
// primitive, so SetAngle rebuilds the tree against the new angle rather than
// mutating it in place.
package activeset

import (
	"cmp"
	"math"

	rbt "github.com/emirpasic/gods/trees/redblacktree"

	"github.com/arvelin/visibomb/numeric"
	"github.com/arvelin/visibomb/options"
	"github.com/arvelin/visibomb/point"
	"github.com/arvelin/visibomb/segment"
)

// Handle identifies one entry of the active set independent of the segment
// it carries. Two distinct segments can share a segment id (the two halves
// a seam split produces both keep their parent's id), so the tree's key
// identity and the sweep's "is this the same entry" checks must not be
// derived from segment.Segment.ID() — the caller mints a Handle (e.g. the
// segment's position in the sweep's working list) when inserting, and uses
// that same Handle to remove it later or recognize it as the current front
// blocker.
type Handle int

type entry struct {
	handle Handle
	seg    segment.Segment
}

// Set is the sweep's active-segment structure.
type Set struct {
	origin  point.Point
	angle   float64
	epsilon float64
	tree    *rbt.Tree
	size    int
}

// New creates an active-segment structure for rays cast from origin. The
// structure starts at angle 0 and is empty; call SetAngle and Insert to
// populate it.
func New(origin point.Point, opts ...options.GeometryOptionsFunc) *Set {
	o := options.ApplyGeometryOptions(options.GeometryOptions{Epsilon: numeric.DefaultEpsilon}, opts...)
	s := &Set{origin: origin, angle: 0, epsilon: o.Epsilon}
	s.tree = rbt.NewWith(s.comparator)
	return s
}

// comparator orders two entries by their ray distance at the structure's
// current angle, breaking ties on the entry's handle so that two distinct
// segments coincident at the current angle (e.g. the two halves of a
// seam-split segment, which share their parent's id) never compare equal —
// that would collapse them to one key in the tree and silently drop one.
func (s *Set) comparator(a, b interface{}) int {
	ea, eb := a.(entry), b.(entry)
	da := segment.RayDistanceAlongAngle(s.origin, s.angle, ea.seg, options.WithEpsilon(s.epsilon))
	db := segment.RayDistanceAlongAngle(s.origin, s.angle, eb.seg, options.WithEpsilon(s.epsilon))

	infA, infB := math.IsInf(da, 1), math.IsInf(db, 1)
	switch {
	case infA && infB:
		return cmp.Compare(ea.handle, eb.handle)
	case numeric.FloatEquals(da, db, s.epsilon):
		return cmp.Compare(ea.handle, eb.handle)
	case da < db:
		return -1
	default:
		return 1
	}
}

// SetAngle updates the structure's current sweep angle. Because the
// distance of every member segment from the origin depends on this angle,
// the structure's total order is rebuilt against the new angle: existing
// entries are re-inserted into a fresh tree using the same comparator
// (which now reads the updated angle).
func (s *Set) SetAngle(angle float64) {
	s.angle = angle
	if s.size == 0 {
		return
	}
	rebuilt := rbt.NewWith(s.comparator)
	for _, k := range s.tree.Keys() {
		rebuilt.Put(k, nil)
	}
	s.tree = rebuilt
}

// Insert adds seg to the active set at the structure's current angle,
// keyed by handle. The caller must use a handle unique to this particular
// segment instance (not derived from seg.ID()) and keep it to pass to
// Remove later. Inserting a handle that is already present replaces its
// entry.
func (s *Set) Insert(handle Handle, seg segment.Segment) {
	key := entry{handle: handle, seg: seg}
	if _, found := s.tree.Get(key); !found {
		s.size++
	}
	s.tree.Put(key, nil)
}

// Remove removes the entry keyed by handle from the active set. seg must be
// the same segment value it was inserted with, so the comparator can
// navigate to the right distance bucket before the handle tie-break picks
// out the exact entry. Removing a handle that is not present is a no-op.
func (s *Set) Remove(handle Handle, seg segment.Segment) {
	key := entry{handle: handle, seg: seg}
	if _, found := s.tree.Get(key); !found {
		return
	}
	s.tree.Remove(key)
	s.size--
}

// Min returns the handle and nearest active segment to the origin at the
// structure's current angle (the front blocker), and false if the set is
// empty.
func (s *Set) Min() (Handle, segment.Segment, bool) {
	node := s.tree.Left()
	if node == nil {
		return 0, segment.Segment{}, false
	}
	e := node.Key.(entry)
	return e.handle, e.seg, true
}

// Len returns the number of segments currently in the active set.
func (s *Set) Len() int {
	return s.size
}

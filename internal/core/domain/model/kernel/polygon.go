package kernel

import (
	"errors"
	"fmt"

	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/pkg/errs"
	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/pkg/guard"
)

// polygonMinRingPoints is the minimum number of ring points for a valid
// polygon: three distinct vertices plus the closing point.
const polygonMinRingPoints = 4

// ErrPolygonIsNotConstructed is returned when attempting to use an improperly initialized Polygon.
var ErrPolygonIsNotConstructed = errs.NewValueIsRequiredError(
	"polygon must be created via NewPolygon or ParsePolygon")

// ErrRingIsNotClosed is returned when the polygon ring's first and last points differ.
var ErrRingIsNotClosed = errors.New("polygon ring must be closed (first point equal to last)")

// Polygon represents a single closed coverage ring of WGS84 points.
// Coverage areas only ever consume single-ring polygons; holes are not modeled.
//
// Polygon is an immutable value object. The ring invariant is enforced at
// construction: at least four points with the first equal to the last.
type Polygon struct {
	ring  []Point
	guard guard.ConstructorGuard
}

// NewPolygon creates a Polygon from a closed ring of points.
//
// The ring must contain at least four points (three distinct vertices plus
// the closing point) and the first point must equal the last. Every point
// must itself be properly constructed.
func NewPolygon(ring []Point) (Polygon, error) {
	if len(ring) < polygonMinRingPoints {
		return Polygon{}, errs.NewValueIsOutOfRangeError("ring points", len(ring), polygonMinRingPoints, "unbounded")
	}

	for i, p := range ring {
		if err := p.Validate(); err != nil {
			return Polygon{}, errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("ring point %d", i), err)
		}
	}

	first, last := ring[0], ring[len(ring)-1]
	if first.Lon() != last.Lon() || first.Lat() != last.Lat() {
		return Polygon{}, ErrRingIsNotClosed
	}

	owned := make([]Point, len(ring))
	copy(owned, ring)

	return Polygon{
		ring:  owned,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate checks if the Polygon was properly constructed using a constructor.
func (pg Polygon) Validate() error {
	return pg.guard.Validate(ErrPolygonIsNotConstructed)
}

// Ring returns a copy of the closed ring of points.
func (pg Polygon) Ring() []Point {
	out := make([]Point, len(pg.ring))
	copy(out, pg.ring)
	return out
}

// Contains reports whether the given point lies inside the polygon, using
// even-odd ray casting on the raw degree coordinates.
//
// Boundary rule: edges are treated as half-open intervals in latitude, so a
// point exactly on a vertex or edge may report either side depending on edge
// orientation. The result is deterministic: identical inputs always produce
// the same answer.
func (pg Polygon) Contains(p Point) (bool, error) {
	if err := errors.Join(pg.Validate(), p.Validate()); err != nil {
		return false, err
	}

	inside := false
	n := len(pg.ring) - 1 // last point repeats the first
	for i := 0; i < n; i++ {
		a, b := pg.ring[i], pg.ring[i+1]
		if (a.Lat() > p.Lat()) != (b.Lat() > p.Lat()) {
			crossLon := a.Lon() + (p.Lat()-a.Lat())*(b.Lon()-a.Lon())/(b.Lat()-a.Lat())
			if p.Lon() < crossLon {
				inside = !inside
			}
		}
	}

	return inside, nil
}

// IntersectsSegment reports whether the segment from a to b touches the
// polygon: it either crosses the ring boundary or has an endpoint inside.
func (pg Polygon) IntersectsSegment(a Point, b Point) (bool, error) {
	if err := errors.Join(pg.Validate(), a.Validate(), b.Validate()); err != nil {
		return false, err
	}

	n := len(pg.ring) - 1
	for i := 0; i < n; i++ {
		if segmentsIntersect(a, b, pg.ring[i], pg.ring[i+1]) {
			return true, nil
		}
	}

	// Fully inside counts as intersecting even without a boundary crossing.
	if inside, err := pg.Contains(a); err != nil || inside {
		return inside, err
	}
	return pg.Contains(b)
}

// Intersects reports whether the route touches the polygon: any of its
// segments crosses the ring boundary, or any part of it lies inside.
func (pg Polygon) Intersects(route LineString) (bool, error) {
	if err := errors.Join(pg.Validate(), route.Validate()); err != nil {
		return false, err
	}

	points := route.Points()
	for i := 0; i < len(points)-1; i++ {
		hit, err := pg.IntersectsSegment(points[i], points[i+1])
		if err != nil {
			return false, err
		}
		if hit {
			return true, nil
		}
	}

	return false, nil
}

// orientation classifies the turn formed by the ordered triple (p, q, r):
// 0 for collinear, 1 for clockwise, 2 for counterclockwise.
func orientation(p, q, r Point) int {
	val := (q.Lat()-p.Lat())*(r.Lon()-q.Lon()) - (q.Lon()-p.Lon())*(r.Lat()-q.Lat())
	switch {
	case val == 0:
		return 0
	case val > 0:
		return 1
	default:
		return 2
	}
}

// onSegment reports whether q lies on the segment pr, assuming the three
// points are collinear.
func onSegment(p, q, r Point) bool {
	return q.Lon() <= max(p.Lon(), r.Lon()) && q.Lon() >= min(p.Lon(), r.Lon()) &&
		q.Lat() <= max(p.Lat(), r.Lat()) && q.Lat() >= min(p.Lat(), r.Lat())
}

// segmentsIntersect implements the standard orientation-based segment
// intersection test, including the collinear overlap cases.
func segmentsIntersect(p1, q1, p2, q2 Point) bool {
	o1 := orientation(p1, q1, p2)
	o2 := orientation(p1, q1, q2)
	o3 := orientation(p2, q2, p1)
	o4 := orientation(p2, q2, q1)

	if o1 != o2 && o3 != o4 {
		return true
	}

	if o1 == 0 && onSegment(p1, p2, q1) {
		return true
	}
	if o2 == 0 && onSegment(p1, q2, q1) {
		return true
	}
	if o3 == 0 && onSegment(p2, p1, q2) {
		return true
	}
	if o4 == 0 && onSegment(p2, q1, q2) {
		return true
	}

	return false
}

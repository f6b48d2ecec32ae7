package kernel

import (
	"fmt"

	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/pkg/errs"
	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/pkg/guard"
)

// lineStringMinPoints is the minimum number of points for a valid route.
const lineStringMinPoints = 2

// ErrLineStringIsNotConstructed is returned when attempting to use an improperly initialized LineString.
var ErrLineStringIsNotConstructed = errs.NewValueIsRequiredError(
	"line string must be created via NewLineString or ParseLineString")

// LineString represents an ordered sequence of at least two WGS84 points,
// used for planned or estimated delivery routes. It is an immutable value object.
type LineString struct {
	points []Point
	guard  guard.ConstructorGuard
}

// NewLineString creates a LineString from an ordered sequence of points.
// At least two properly constructed points are required.
func NewLineString(points []Point) (LineString, error) {
	if len(points) < lineStringMinPoints {
		return LineString{}, errs.NewValueIsOutOfRangeError("route points", len(points), lineStringMinPoints, "unbounded")
	}

	for i, p := range points {
		if err := p.Validate(); err != nil {
			return LineString{}, errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("route point %d", i), err)
		}
	}

	owned := make([]Point, len(points))
	copy(owned, points)

	return LineString{
		points: owned,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate checks if the LineString was properly constructed using a constructor.
func (ls LineString) Validate() error {
	return ls.guard.Validate(ErrLineStringIsNotConstructed)
}

// Points returns a copy of the ordered route points.
func (ls LineString) Points() []Point {
	out := make([]Point, len(ls.points))
	copy(out, ls.points)
	return out
}

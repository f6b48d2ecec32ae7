package kernel

import (
	"errors"
	"fmt"
	"math"

	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/pkg/errs"
	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/pkg/guard"
)

// earthRadiusMeters is the mean Earth radius used by the haversine formula.
const earthRadiusMeters = 6371000.0

// ErrPointIsNotConstructed is returned when attempting to use an improperly initialized Point.
// Points must be created via NewPoint or parsed from WKT to ensure validity.
var ErrPointIsNotConstructed = errs.NewValueIsRequiredError(
	"point must be created via NewPoint or ParsePoint")

// Point represents a WGS84 coordinate as a (longitude, latitude) pair in degrees.
// Point is an immutable value object. The zero value of Point is invalid and
// will fail validation - use NewPoint or the WKT codec to create instances.
//
// Coordinate values are accepted as given: the service boundary performs no
// range validation, so a latitude outside [-90, 90] passes through unchanged.
//
// Example:
//
//	p := kernel.NewPoint(-70.62, -33.42)
//	fmt.Println(p) // Output: Point(-70.62,-33.42)
type Point struct {
	lon   float64
	lat   float64
	guard guard.ConstructorGuard
}

// NewPoint creates a new Point with the given longitude and latitude in
// WGS84 degrees. Construction never fails: coordinates are stored as given.
func NewPoint(lon float64, lat float64) Point {
	return Point{
		lon:   lon,
		lat:   lat,
		guard: guard.NewConstructorGuard(),
	}
}

// Validate checks if the Point was properly constructed using a constructor.
// The zero value of Point is invalid and will fail this validation.
func (p Point) Validate() error {
	return p.guard.Validate(ErrPointIsNotConstructed)
}

// Lon returns the longitude in degrees.
func (p Point) Lon() float64 {
	return p.lon
}

// Lat returns the latitude in degrees.
func (p Point) Lat() float64 {
	return p.lat
}

// String returns a human-readable representation in the form "Point(lon,lat)".
// This method implements the fmt.Stringer interface.
func (p Point) String() string {
	return fmt.Sprintf("Point(%g,%g)", p.lon, p.lat)
}

// IsEqual compares two points for equality.
// Two points are considered equal if they have the same longitude and latitude.
// Both points must be properly constructed for the comparison to succeed.
func (p Point) IsEqual(other Point) (bool, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return p.lon == other.lon && p.lat == other.lat, nil
}

// DistanceTo calculates the geodesic distance in meters between two points
// using the haversine formula on a spherical Earth model. The result is
// symmetric: p.DistanceTo(q) == q.DistanceTo(p).
//
// Coordinates are degrees of longitude/latitude, so planar Euclidean distance
// on the raw values would be meaningless; all distance comparisons in the
// dispatch subsystem go through this method.
//
// Both points must be properly constructed for the calculation to succeed.
func (p Point) DistanceTo(other Point) (float64, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return 0, err
	}

	lat1 := p.lat * math.Pi / 180
	lat2 := other.lat * math.Pi / 180
	dLat := (other.lat - p.lat) * math.Pi / 180
	dLon := (other.lon - p.lon) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMeters * c, nil
}

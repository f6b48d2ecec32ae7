package kernel

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedGeometry anchors every WKT parsing failure. Callers classify
// geometry errors with errors.Is(err, ErrMalformedGeometry); these are data
// errors and are never retried.
var ErrMalformedGeometry = errors.New("malformed geometry")

// The WKT codec translates between the textual geometry encoding used at the
// service boundary and the kernel value objects:
//
//	POINT(lon lat)
//	POLYGON((lon lat, lon lat, ..., lon lat))
//	LINESTRING(lon lat, lon lat, ...)
//
// Coordinates are WGS84 degrees with no SRID marker. Values are accepted as
// given; no coordinate-range validation is performed.

// ParsePoint parses a "POINT(lon lat)" literal.
func ParsePoint(text string) (Point, error) {
	body, err := unwrapKeyword(text, "POINT")
	if err != nil {
		return Point{}, err
	}

	p, err := parseCoordinatePair(body)
	if err != nil {
		return Point{}, err
	}

	return p, nil
}

// ParsePolygon parses a "POLYGON((lon lat, ...))" literal with a single ring.
// The ring must be closed and contain at least four coordinate pairs.
func ParsePolygon(text string) (Polygon, error) {
	body, err := unwrapKeyword(text, "POLYGON")
	if err != nil {
		return Polygon{}, err
	}

	if !strings.HasPrefix(body, "(") || !strings.HasSuffix(body, ")") {
		return Polygon{}, malformed("polygon ring must be parenthesized: %q", body)
	}

	ring, err := parseCoordinateList(body[1 : len(body)-1])
	if err != nil {
		return Polygon{}, err
	}

	polygon, err := NewPolygon(ring)
	if err != nil {
		return Polygon{}, fmt.Errorf("%w: %w", ErrMalformedGeometry, err)
	}

	return polygon, nil
}

// ParseLineString parses a "LINESTRING(lon lat, ...)" literal with at least
// two coordinate pairs.
func ParseLineString(text string) (LineString, error) {
	body, err := unwrapKeyword(text, "LINESTRING")
	if err != nil {
		return LineString{}, err
	}

	points, err := parseCoordinateList(body)
	if err != nil {
		return LineString{}, err
	}

	route, err := NewLineString(points)
	if err != nil {
		return LineString{}, fmt.Errorf("%w: %w", ErrMalformedGeometry, err)
	}

	return route, nil
}

// FormatPoint serializes a point back to its WKT literal.
func FormatPoint(p Point) (string, error) {
	if err := p.Validate(); err != nil {
		return "", err
	}
	return fmt.Sprintf("POINT(%s)", formatPair(p)), nil
}

// FormatPolygon serializes a polygon back to its WKT literal.
func FormatPolygon(pg Polygon) (string, error) {
	if err := pg.Validate(); err != nil {
		return "", err
	}
	return fmt.Sprintf("POLYGON((%s))", formatPairs(pg.Ring())), nil
}

// FormatLineString serializes a route back to its WKT literal.
func FormatLineString(ls LineString) (string, error) {
	if err := ls.Validate(); err != nil {
		return "", err
	}
	return fmt.Sprintf("LINESTRING(%s)", formatPairs(ls.Points())), nil
}

// unwrapKeyword strips the geometry keyword and its outer parentheses,
// returning the inner coordinate text.
func unwrapKeyword(text string, keyword string) (string, error) {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, keyword) {
		return "", malformed("expected %s literal, got %q", keyword, text)
	}

	rest := strings.TrimSpace(trimmed[len(keyword):])
	if !strings.HasPrefix(rest, "(") || !strings.HasSuffix(rest, ")") {
		return "", malformed("%s body must be parenthesized: %q", keyword, text)
	}

	return strings.TrimSpace(rest[1 : len(rest)-1]), nil
}

// parseCoordinatePair parses a single "lon lat" pair.
func parseCoordinatePair(text string) (Point, error) {
	fields := strings.Fields(strings.TrimSpace(text))
	if len(fields) != 2 {
		return Point{}, malformed("coordinate pair must have two values: %q", text)
	}

	lon, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return Point{}, malformed("longitude %q is not a number", fields[0])
	}

	lat, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return Point{}, malformed("latitude %q is not a number", fields[1])
	}

	return NewPoint(lon, lat), nil
}

// parseCoordinateList parses a comma-separated list of "lon lat" pairs.
func parseCoordinateList(text string) ([]Point, error) {
	parts := strings.Split(text, ",")
	points := make([]Point, 0, len(parts))
	for _, part := range parts {
		p, err := parseCoordinatePair(part)
		if err != nil {
			return nil, err
		}
		points = append(points, p)
	}
	return points, nil
}

func formatPair(p Point) string {
	return strconv.FormatFloat(p.Lon(), 'f', -1, 64) + " " + strconv.FormatFloat(p.Lat(), 'f', -1, 64)
}

func formatPairs(points []Point) string {
	pairs := make([]string, len(points))
	for i, p := range points {
		pairs[i] = formatPair(p)
	}
	return strings.Join(pairs, ", ")
}

func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformedGeometry, fmt.Sprintf(format, args...))
}

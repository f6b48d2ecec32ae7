package services

import (
	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/core/domain/model/coverage"
	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/core/domain/model/kernel"
)

// DefaultZoneThreshold is the number of crossed zones above which a route
// is flagged as multizone.
const DefaultZoneThreshold = 2

// RouteZoneAnalyzer is a domain service that determines which coverage
// areas a delivery route passes through.
//
// A route "crosses" an area when any of its segments intersects the area
// boundary or lies inside it. Each area counts at most once no matter how
// many segments touch it.
type RouteZoneAnalyzer struct{}

// NewRouteZoneAnalyzer creates a new RouteZoneAnalyzer instance.
func NewRouteZoneAnalyzer() RouteZoneAnalyzer {
	return RouteZoneAnalyzer{}
}

// ZonesCrossed returns the ids of the coverage areas the route passes
// through, in the order the areas were supplied. A nil route, a route the
// caller could not construct, or an empty area list yields an empty result.
func (a RouteZoneAnalyzer) ZonesCrossed(route kernel.LineString, areas []*coverage.CoverageArea) ([]kernel.UUID, error) {
	if err := route.Validate(); err != nil {
		return nil, nil
	}

	var crossed []kernel.UUID
	for _, area := range areas {
		if err := area.Validate(); err != nil {
			return nil, err
		}

		hit, err := area.Polygon().Intersects(route)
		if err != nil {
			return nil, err
		}
		if hit {
			crossed = append(crossed, area.ID())
		}
	}
	return crossed, nil
}

// CrossesMoreThan reports whether the route passes through strictly more
// than threshold coverage areas.
func (a RouteZoneAnalyzer) CrossesMoreThan(
	route kernel.LineString,
	areas []*coverage.CoverageArea,
	threshold int,
) (bool, error) {
	crossed, err := a.ZonesCrossed(route, areas)
	if err != nil {
		return false, err
	}
	return len(crossed) > threshold, nil
}

package services

import (
	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/core/domain/model/coverage"
	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/core/domain/model/kernel"
)

// CoverageResult describes whether a client location falls inside a
// seller's delivery coverage and how far the client is from the seller.
type CoverageResult struct {
	// Covered is true when the client location lies inside at least one
	// coverage area.
	Covered bool
	// MatchedAreaID identifies the first coverage area (in the order the
	// areas were supplied) that contains the client location. Nil when
	// Covered is false.
	MatchedAreaID *kernel.UUID
	// DistanceToCompanyMeters is the great-circle distance between the
	// client and the company locations.
	DistanceToCompanyMeters float64
}

// CoverageMatcher is a domain service that decides whether client locations
// fall inside seller coverage areas.
//
// A seller with zero coverage areas simply covers no one: matching against
// an empty area list yields a negative result, not an error.
type CoverageMatcher struct{}

// NewCoverageMatcher creates a new CoverageMatcher instance.
func NewCoverageMatcher() CoverageMatcher {
	return CoverageMatcher{}
}

// IsClientCovered reports whether the client location lies inside at least
// one of the given coverage areas.
func (m CoverageMatcher) IsClientCovered(clientLocation kernel.Point, areas []*coverage.CoverageArea) (bool, error) {
	area, err := m.matchArea(clientLocation, areas)
	if err != nil {
		return false, err
	}
	return area != nil, nil
}

// CoverageDetails computes the full coverage verdict for a client against a
// company: whether any of the company's areas contains the client, which
// area matched, and the client-to-company distance.
func (m CoverageMatcher) CoverageDetails(
	clientLocation kernel.Point,
	companyLocation kernel.Point,
	areas []*coverage.CoverageArea,
) (CoverageResult, error) {
	distance, err := clientLocation.DistanceTo(companyLocation)
	if err != nil {
		return CoverageResult{}, err
	}

	area, err := m.matchArea(clientLocation, areas)
	if err != nil {
		return CoverageResult{}, err
	}

	result := CoverageResult{
		Covered:                 area != nil,
		DistanceToCompanyMeters: distance,
	}
	if area != nil {
		id := area.ID()
		result.MatchedAreaID = &id
	}
	return result, nil
}

// IntersectsAny reports whether the route crosses or enters at least one of
// the given coverage areas.
func (m CoverageMatcher) IntersectsAny(areas []*coverage.CoverageArea, route kernel.LineString) (bool, error) {
	for _, area := range areas {
		if err := area.Validate(); err != nil {
			return false, err
		}

		hit, err := area.Polygon().Intersects(route)
		if err != nil {
			return false, err
		}
		if hit {
			return true, nil
		}
	}
	return false, nil
}

// matchArea returns the first area containing the point, or nil when none does.
func (m CoverageMatcher) matchArea(p kernel.Point, areas []*coverage.CoverageArea) (*coverage.CoverageArea, error) {
	for _, area := range areas {
		if err := area.Validate(); err != nil {
			return nil, err
		}

		inside, err := area.Polygon().Contains(p)
		if err != nil {
			return nil, err
		}
		if inside {
			return area, nil
		}
	}
	return nil, nil
}

package services

import (
	"sort"

	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/core/domain/model/kernel"
)

// Locatable is anything with an identity and a position: dealers, clients
// and companies all qualify.
type Locatable interface {
	ID() kernel.UUID
	Location() kernel.Point
}

// Ranked pairs a candidate with its computed distance from the origin.
type Ranked struct {
	ID             kernel.UUID
	Location       kernel.Point
	DistanceMeters float64
}

// ProximityRanker is a domain service that orders located entities by
// great-circle distance from an origin point.
//
// Ordering is deterministic: equal distances are broken by ascending id
// string, so repeated calls over the same input always produce the same
// ranking.
type ProximityRanker struct{}

// NewProximityRanker creates a new ProximityRanker instance.
func NewProximityRanker() ProximityRanker {
	return ProximityRanker{}
}

// Nearest returns up to k candidates ordered by ascending distance from the
// origin. A non-positive k yields an empty result.
func (r ProximityRanker) Nearest(origin kernel.Point, candidates []Locatable, k int) ([]Ranked, error) {
	if k <= 0 {
		return nil, nil
	}

	ranked, err := r.rank(origin, candidates)
	if err != nil {
		return nil, err
	}

	if len(ranked) > k {
		ranked = ranked[:k]
	}
	return ranked, nil
}

// Farthest returns the candidate with the greatest distance from the
// origin, or nil when there are no candidates.
func (r ProximityRanker) Farthest(origin kernel.Point, candidates []Locatable) (*Ranked, error) {
	ranked, err := r.rank(origin, candidates)
	if err != nil {
		return nil, err
	}
	if len(ranked) == 0 {
		return nil, nil
	}
	return &ranked[len(ranked)-1], nil
}

// BeyondRadius returns the points farther than radiusMeters from every
// reference point. A point within the radius of any single reference is
// excluded. With no references every point qualifies.
func (r ProximityRanker) BeyondRadius(
	points []Locatable,
	references []kernel.Point,
	radiusMeters float64,
) ([]Ranked, error) {
	var out []Ranked

	for _, p := range points {
		minDistance, withinAny, err := r.minDistance(p.Location(), references, radiusMeters)
		if err != nil {
			return nil, err
		}
		if withinAny {
			continue
		}
		out = append(out, Ranked{ID: p.ID(), Location: p.Location(), DistanceMeters: minDistance})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].DistanceMeters != out[j].DistanceMeters {
			return out[i].DistanceMeters < out[j].DistanceMeters
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out, nil
}

func (r ProximityRanker) rank(origin kernel.Point, candidates []Locatable) ([]Ranked, error) {
	ranked := make([]Ranked, 0, len(candidates))

	for _, c := range candidates {
		distance, err := origin.DistanceTo(c.Location())
		if err != nil {
			return nil, err
		}
		ranked = append(ranked, Ranked{ID: c.ID(), Location: c.Location(), DistanceMeters: distance})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].DistanceMeters != ranked[j].DistanceMeters {
			return ranked[i].DistanceMeters < ranked[j].DistanceMeters
		}
		return ranked[i].ID.String() < ranked[j].ID.String()
	})
	return ranked, nil
}

// minDistance computes the smallest distance from p to any reference and
// whether p sits within the radius of at least one reference. With no
// references the minimum is reported as 0 and withinAny is false.
func (r ProximityRanker) minDistance(
	p kernel.Point,
	references []kernel.Point,
	radiusMeters float64,
) (float64, bool, error) {
	var (
		minDistance float64
		withinAny   bool
	)

	for i, ref := range references {
		distance, err := p.DistanceTo(ref)
		if err != nil {
			return 0, false, err
		}
		if i == 0 || distance < minDistance {
			minDistance = distance
		}
		if distance <= radiusMeters {
			withinAny = true
		}
	}

	return minDistance, withinAny, nil
}

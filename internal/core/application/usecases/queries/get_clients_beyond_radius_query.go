package queries

import (
	"errors"

	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/core/domain/model/kernel"
	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/pkg/guard"
)

var (
	ErrGetClientsBeyondRadiusQueryIsNotConstructed = errors.New(
		"GetClientsBeyondRadiusQuery must be created via NewGetClientsBeyondRadiusQuery constructor",
	)
	ErrRadiusIsInvalid = errors.New("radius must be greater than 0")
)

// GetClientsBeyondRadiusQuery retrieves clients located farther than a
// radius from every registered company. These are the clients no company
// can serve within its delivery range.
type GetClientsBeyondRadiusQuery struct {
	radiusMeters float64

	guard guard.ConstructorGuard
}

// NewGetClientsBeyondRadiusQuery creates a beyond-radius query.
// The radius must be positive and is measured in meters.
func NewGetClientsBeyondRadiusQuery(radiusMeters float64) (GetClientsBeyondRadiusQuery, error) {
	if radiusMeters <= 0 {
		return GetClientsBeyondRadiusQuery{}, ErrRadiusIsInvalid
	}

	return GetClientsBeyondRadiusQuery{
		radiusMeters: radiusMeters,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetClientsBeyondRadiusQuery) Validate() error {
	return q.guard.Validate(ErrGetClientsBeyondRadiusQueryIsNotConstructed)
}

// RadiusMeters returns the exclusion radius.
func (q GetClientsBeyondRadiusQuery) RadiusMeters() float64 {
	return q.radiusMeters
}

// GetClientsBeyondRadiusQueryResponse is one out-of-range client read model.
// NearestCompanyMeters is the distance to the closest company, nil when no
// companies are registered and there is nothing to measure against.
type GetClientsBeyondRadiusQueryResponse struct {
	ID                   kernel.UUID
	Name                 string
	Location             kernel.Point
	NearestCompanyMeters *float64
}

package queries

import (
	"errors"

	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/core/domain/model/kernel"
	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/pkg/guard"
)

var (
	ErrGetMultizoneOrdersQueryIsNotConstructed = errors.New(
		"GetMultizoneOrdersQuery must be created via NewGetMultizoneOrdersQuery constructor",
	)
	ErrThresholdIsInvalid = errors.New("threshold must not be negative")
)

// GetMultizoneOrdersQuery retrieves orders whose estimated route crosses
// strictly more coverage areas than the threshold. Used to spot deliveries
// that span several zones and may need special routing.
type GetMultizoneOrdersQuery struct {
	threshold int

	guard guard.ConstructorGuard
}

// NewGetMultizoneOrdersQuery creates a multizone order query.
func NewGetMultizoneOrdersQuery(threshold int) (GetMultizoneOrdersQuery, error) {
	if threshold < 0 {
		return GetMultizoneOrdersQuery{}, ErrThresholdIsInvalid
	}

	return GetMultizoneOrdersQuery{
		threshold: threshold,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetMultizoneOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetMultizoneOrdersQueryIsNotConstructed)
}

// Threshold returns the zone count above which an order is reported.
func (q GetMultizoneOrdersQuery) Threshold() int {
	return q.threshold
}

// GetMultizoneOrdersQueryResponse is one multizone order read model.
type GetMultizoneOrdersQueryResponse struct {
	OrderID      kernel.UUID
	ZonesCrossed []kernel.UUID
}

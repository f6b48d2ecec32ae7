package queries

import (
	"errors"

	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/core/domain/model/kernel"
	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/pkg/guard"
)

var (
	ErrGetNearestDealersQueryIsNotConstructed = errors.New(
		"GetNearestDealersQuery must be created via NewGetNearestDealersQuery constructor",
	)
	ErrLimitIsInvalid = errors.New("limit must be greater than 0")
)

// GetNearestDealersQuery retrieves the k dealers closest to an origin
// point, ordered by ascending great-circle distance.
type GetNearestDealersQuery struct {
	origin kernel.Point
	limit  int

	guard guard.ConstructorGuard
}

// NewGetNearestDealersQuery creates a nearest-dealers query.
// The limit must be positive.
func NewGetNearestDealersQuery(origin kernel.Point, limit int) (GetNearestDealersQuery, error) {
	if err := origin.Validate(); err != nil {
		return GetNearestDealersQuery{}, err
	}
	if limit <= 0 {
		return GetNearestDealersQuery{}, ErrLimitIsInvalid
	}

	return GetNearestDealersQuery{
		origin: origin,
		limit:  limit,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetNearestDealersQuery) Validate() error {
	return q.guard.Validate(ErrGetNearestDealersQueryIsNotConstructed)
}

// Origin returns the point distances are measured from.
func (q GetNearestDealersQuery) Origin() kernel.Point {
	return q.origin
}

// Limit returns the maximum number of dealers to return.
func (q GetNearestDealersQuery) Limit() int {
	return q.limit
}

// GetNearestDealersQueryResponse is one ranked dealer read model.
type GetNearestDealersQueryResponse struct {
	ID             kernel.UUID
	Name           string
	Location       kernel.Point
	DistanceMeters float64
}

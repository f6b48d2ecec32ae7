package queries

import (
	"errors"

	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/core/domain/model/kernel"
	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/pkg/guard"
)

var ErrGetFarthestClientQueryIsNotConstructed = errors.New(
	"GetFarthestClientQuery must be created via NewGetFarthestClientQuery constructor",
)

// GetFarthestClientQuery retrieves the client located farthest from a
// company. Useful for sizing a company's delivery range.
type GetFarthestClientQuery struct {
	companyID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetFarthestClientQuery creates a farthest-client query for a company.
func NewGetFarthestClientQuery(companyID kernel.UUID) (GetFarthestClientQuery, error) {
	if err := companyID.Validate(); err != nil {
		return GetFarthestClientQuery{}, err
	}

	return GetFarthestClientQuery{
		companyID: companyID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetFarthestClientQuery) Validate() error {
	return q.guard.Validate(ErrGetFarthestClientQueryIsNotConstructed)
}

// CompanyID returns the company distances are measured from.
func (q GetFarthestClientQuery) CompanyID() kernel.UUID {
	return q.companyID
}

// GetFarthestClientQueryResponse is the farthest client read model.
// Found is false when no clients are registered.
type GetFarthestClientQueryResponse struct {
	Found          bool
	ID             kernel.UUID
	Name           string
	Location       kernel.Point
	DistanceMeters float64
}

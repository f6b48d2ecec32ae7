package queries

import (
	"errors"
	"time"

	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/core/domain/model/kernel"
	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/pkg/guard"
)

var ErrGetDealerActiveOrderQueryIsNotConstructed = errors.New(
	"GetDealerActiveOrderQuery must be created via NewGetDealerActiveOrderQuery constructor",
)

// GetDealerActiveOrderQuery retrieves the order a dealer is currently
// delivering, if any. A dealer carries at most one in-progress order.
type GetDealerActiveOrderQuery struct {
	dealerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDealerActiveOrderQuery creates an active order query for a dealer.
func NewGetDealerActiveOrderQuery(dealerID kernel.UUID) (GetDealerActiveOrderQuery, error) {
	if err := dealerID.Validate(); err != nil {
		return GetDealerActiveOrderQuery{}, err
	}

	return GetDealerActiveOrderQuery{
		dealerID: dealerID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDealerActiveOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetDealerActiveOrderQueryIsNotConstructed)
}

// DealerID returns the dealer whose active order is requested.
func (q GetDealerActiveOrderQuery) DealerID() kernel.UUID {
	return q.dealerID
}

// GetDealerActiveOrderQueryResponse is the active order read model.
// Found is false when the dealer has no in-progress order; the other
// fields are meaningful only when Found is true.
type GetDealerActiveOrderQueryResponse struct {
	Found      bool
	OrderID    kernel.UUID
	ClientID   kernel.UUID
	Urgent     bool
	OrderDate  time.Time
	TotalPrice float64
}

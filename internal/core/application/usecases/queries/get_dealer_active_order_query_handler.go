package queries

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/core/domain/model/kernel"
	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/core/domain/model/order"
	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDealerActiveOrderQueryHandler resolves a dealer's in-progress order.
// This is the read-side counterpart of the dispatch invariant: at most one
// row can match, so the lookup never pages.
type GetDealerActiveOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetDealerActiveOrderQueryHandler creates a handler for dealer active
// order queries. Requires a GORM database connection for query execution.
func NewGetDealerActiveOrderQueryHandler(db *gorm.DB) GetDealerActiveOrderQueryHandler {
	return GetDealerActiveOrderQueryHandler{db: db}
}

// Handle executes the query.
// Returns errs.ObjectNotFoundError when the dealer is unknown; a dealer
// without an in-progress order yields Found=false.
func (h GetDealerActiveOrderQueryHandler) Handle(
	ctx context.Context,
	query GetDealerActiveOrderQuery,
) (GetDealerActiveOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDealerActiveOrderQueryResponse{}, err
	}

	if err := h.ensureDealerExists(ctx, query.DealerID()); err != nil {
		return GetDealerActiveOrderQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			client_id,
			urgent,
			order_date,
			total_price
		FROM orders
		WHERE dealer_id = ? AND status = ?
	`, query.DealerID().String(), int(order.InProgress)).Row()

	var (
		id       uuid.UUID
		clientID uuid.UUID
		response GetDealerActiveOrderQueryResponse
	)

	err := row.Scan(&id, &clientID, &response.Urgent, &response.OrderDate, &response.TotalPrice)
	if errors.Is(err, sql.ErrNoRows) {
		return GetDealerActiveOrderQueryResponse{}, nil
	}
	if err != nil {
		return GetDealerActiveOrderQueryResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetDealerActiveOrderQueryResponse{}, err
	}
	placedBy, err := kernel.UUIDFromBytes(clientID[:])
	if err != nil {
		return GetDealerActiveOrderQueryResponse{}, err
	}

	response.Found = true
	response.OrderID = orderID
	response.ClientID = placedBy
	return response, nil
}

func (h GetDealerActiveOrderQueryHandler) ensureDealerExists(ctx context.Context, dealerID kernel.UUID) error {
	var count int64
	err := h.db.WithContext(ctx).
		Table("dealers").
		Where("id = ?", dealerID.String()).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count == 0 {
		return errs.NewObjectNotFoundError("dealer", dealerID)
	}

	return nil
}

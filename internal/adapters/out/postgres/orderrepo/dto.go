// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/core/domain/model/kernel"
	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The estimated route is stored as WKT text; positions elsewhere in the
// schema are stored as lon/lat double columns.
type OrderDTO struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ClientID       uuid.UUID  `gorm:"type:uuid;index"`
	DealerID       *uuid.UUID `gorm:"type:uuid;index"`
	Status         int        `gorm:"index"`
	Urgent         bool
	OrderDate      time.Time
	DeliveryDate   *time.Time
	EstimatedRoute *string `gorm:"type:text"`
	TotalPrice     float64
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) (OrderDTO, error) {
	var dealerID *uuid.UUID
	if id := aggregate.Dealer(); id != nil {
		raw := id.Bytes()
		dealerID = &raw
	}

	var route *string
	if r := aggregate.EstimatedRoute(); r != nil {
		text, err := kernel.FormatLineString(*r)
		if err != nil {
			return OrderDTO{}, err
		}
		route = &text
	}

	return OrderDTO{
		ID:             aggregate.ID().Bytes(),
		ClientID:       aggregate.ClientID().Bytes(),
		DealerID:       dealerID,
		Status:         int(aggregate.Status()),
		Urgent:         aggregate.IsUrgent(),
		OrderDate:      aggregate.OrderDate(),
		DeliveryDate:   aggregate.DeliveryDate(),
		EstimatedRoute: route,
		TotalPrice:     aggregate.TotalPrice(),
	}, nil
}

// toDomain converts a database DTO to an order domain aggregate using RestoreOrder,
// which re-checks the cross-field lifecycle invariants.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	clientID, err := kernel.UUIDFromBytes(dto.ClientID[:])
	if err != nil {
		return nil, err
	}

	var dealerID *kernel.UUID
	if dto.DealerID != nil {
		dID, dealerErr := kernel.UUIDFromBytes((*dto.DealerID)[:])
		if dealerErr != nil {
			return nil, dealerErr
		}
		dealerID = &dID
	}

	var route *kernel.LineString
	if dto.EstimatedRoute != nil {
		parsed, wktErr := kernel.ParseLineString(*dto.EstimatedRoute)
		if wktErr != nil {
			return nil, wktErr
		}
		route = &parsed
	}

	return order.RestoreOrder(
		id,
		clientID,
		dealerID,
		order.Status(dto.Status),
		dto.Urgent,
		dto.OrderDate,
		dto.DeliveryDate,
		route,
		dto.TotalPrice,
	)
}

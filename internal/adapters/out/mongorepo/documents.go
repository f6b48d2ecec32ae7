// Package mongorepo implements the replica store port on MongoDB. The replica
// holds denormalized copies of orders and clients for reporting; documents are
// keyed by the aggregate id and inserted at most once, so re-running the sync
// never produces duplicates.
package mongorepo

import (
	"time"

	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/core/domain/model/client"
	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/core/domain/model/kernel"
	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/core/domain/model/order"
)

// GeoPoint is a GeoJSON Point in [lon, lat] order.
type GeoPoint struct {
	Type        string    `bson:"type"`
	Coordinates []float64 `bson:"coordinates"`
}

// GeoLineString is a GeoJSON LineString, one [lon, lat] pair per vertex.
type GeoLineString struct {
	Type        string      `bson:"type"`
	Coordinates [][]float64 `bson:"coordinates"`
}

// OrderDocument is the replica projection of an order.
type OrderDocument struct {
	OrderID        string         `bson:"order_id"`
	ClientID       string         `bson:"client_id"`
	DealerID       *string        `bson:"dealer_id,omitempty"`
	Status         string         `bson:"status"`
	Urgent         bool           `bson:"urgent"`
	OrderDate      time.Time      `bson:"order_date"`
	DeliveryDate   *time.Time     `bson:"delivery_date,omitempty"`
	EstimatedRoute *GeoLineString `bson:"estimated_route,omitempty"`
	TotalPrice     float64        `bson:"total_price"`
	SyncedAt       time.Time      `bson:"synced_at"`
}

// ClientDocument is the replica projection of a client.
type ClientDocument struct {
	ClientID string    `bson:"client_id"`
	Name     string    `bson:"name"`
	Address  string    `bson:"address,omitempty"`
	Location GeoPoint  `bson:"location"`
	SyncedAt time.Time `bson:"synced_at"`
}

func geoPointFromDomain(point kernel.Point) GeoPoint {
	return GeoPoint{
		Type:        "Point",
		Coordinates: []float64{point.Lon(), point.Lat()},
	}
}

func geoLineStringFromDomain(route kernel.LineString) GeoLineString {
	points := route.Points()
	coordinates := make([][]float64, 0, len(points))
	for _, point := range points {
		coordinates = append(coordinates, []float64{point.Lon(), point.Lat()})
	}
	return GeoLineString{
		Type:        "LineString",
		Coordinates: coordinates,
	}
}

func orderDocumentFromDomain(aggregate *order.Order, syncedAt time.Time) (OrderDocument, error) {
	if err := aggregate.Validate(); err != nil {
		return OrderDocument{}, err
	}

	document := OrderDocument{
		OrderID:      aggregate.ID().String(),
		ClientID:     aggregate.ClientID().String(),
		Status:       aggregate.Status().String(),
		Urgent:       aggregate.IsUrgent(),
		OrderDate:    aggregate.OrderDate(),
		DeliveryDate: aggregate.DeliveryDate(),
		TotalPrice:   aggregate.TotalPrice(),
		SyncedAt:     syncedAt,
	}

	if dealerID := aggregate.Dealer(); dealerID != nil {
		value := dealerID.String()
		document.DealerID = &value
	}
	if route := aggregate.EstimatedRoute(); route != nil {
		geo := geoLineStringFromDomain(*route)
		document.EstimatedRoute = &geo
	}

	return document, nil
}

func clientDocumentFromDomain(aggregate *client.Client, syncedAt time.Time) (ClientDocument, error) {
	if err := aggregate.Validate(); err != nil {
		return ClientDocument{}, err
	}

	return ClientDocument{
		ClientID: aggregate.ID().String(),
		Name:     aggregate.Name(),
		Address:  aggregate.Address(),
		Location: geoPointFromDomain(aggregate.Location()),
		SyncedAt: syncedAt,
	}, nil
}

package queries

import (
	"context"

	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/core/domain/model/coverage"
	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/core/domain/model/kernel"
	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/core/domain/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetMultizoneOrdersQueryHandler finds orders whose estimated route crosses
// more coverage areas than a threshold. Orders without an estimated route
// never qualify.
type GetMultizoneOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetMultizoneOrdersQueryHandler creates a handler for multizone order queries.
// Requires a GORM database connection for query execution.
func NewGetMultizoneOrdersQueryHandler(db *gorm.DB) GetMultizoneOrdersQueryHandler {
	return GetMultizoneOrdersQueryHandler{db: db}
}

// Handle executes the query and reports each qualifying order together with
// the ids of the zones its route passes through.
func (h GetMultizoneOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetMultizoneOrdersQuery,
) ([]GetMultizoneOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	areas, err := h.loadAreas(ctx)
	if err != nil {
		return nil, err
	}
	if len(areas) == 0 {
		return []GetMultizoneOrdersQueryResponse{}, nil
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			estimated_route
		FROM orders
		WHERE estimated_route IS NOT NULL
		ORDER BY id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	analyzer := services.NewRouteZoneAnalyzer()
	responses := make([]GetMultizoneOrdersQueryResponse, 0)

	for rows.Next() {
		var id uuid.UUID
		var routeText string

		if err = rows.Scan(&id, &routeText); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		route, wktErr := kernel.ParseLineString(routeText)
		if wktErr != nil {
			return nil, wktErr
		}

		crossed, zoneErr := analyzer.ZonesCrossed(route, areas)
		if zoneErr != nil {
			return nil, zoneErr
		}

		if len(crossed) > query.Threshold() {
			responses = append(responses, GetMultizoneOrdersQueryResponse{
				OrderID:      orderID,
				ZonesCrossed: crossed,
			})
		}
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return responses, nil
}

func (h GetMultizoneOrdersQueryHandler) loadAreas(ctx context.Context) ([]*coverage.CoverageArea, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			ring
		FROM coverage_areas
		ORDER BY id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	areas := make([]*coverage.CoverageArea, 0)
	for rows.Next() {
		var id uuid.UUID
		var name, ring string

		if err = rows.Scan(&id, &name, &ring); err != nil {
			return nil, err
		}

		areaID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		polygon, wktErr := kernel.ParsePolygon(ring)
		if wktErr != nil {
			return nil, wktErr
		}

		area, areaErr := coverage.RestoreCoverageArea(areaID, name, polygon)
		if areaErr != nil {
			return nil, areaErr
		}
		areas = append(areas, area)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return areas, nil
}

package queries

import (
	"context"

	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/core/domain/model/dealer"
	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/core/domain/model/kernel"
	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/core/domain/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetNearestDealersQueryHandler ranks dealers by distance from an origin.
// Reads all dealer positions and ranks them in memory with ProximityRanker,
// which also fixes the tie-break order.
type GetNearestDealersQueryHandler struct {
	db *gorm.DB
}

// NewGetNearestDealersQueryHandler creates a handler for nearest-dealer queries.
// Requires a GORM database connection for query execution.
func NewGetNearestDealersQueryHandler(db *gorm.DB) GetNearestDealersQueryHandler {
	return GetNearestDealersQueryHandler{db: db}
}

// Handle executes the query and returns up to Limit dealers ordered by
// ascending distance from the origin.
func (h GetNearestDealersQueryHandler) Handle(
	ctx context.Context,
	query GetNearestDealersQuery,
) ([]GetNearestDealersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	dealers, names, err := h.loadDealers(ctx)
	if err != nil {
		return nil, err
	}

	ranked, err := services.NewProximityRanker().Nearest(query.Origin(), dealers, query.Limit())
	if err != nil {
		return nil, err
	}

	responses := make([]GetNearestDealersQueryResponse, 0, len(ranked))
	for _, r := range ranked {
		responses = append(responses, GetNearestDealersQueryResponse{
			ID:             r.ID,
			Name:           names[r.ID.String()],
			Location:       r.Location,
			DistanceMeters: r.DistanceMeters,
		})
	}

	return responses, nil
}

func (h GetNearestDealersQueryHandler) loadDealers(ctx context.Context) ([]services.Locatable, map[string]string, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			location_lon,
			location_lat
		FROM dealers
		ORDER BY id
	`).Rows()
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	dealers := make([]services.Locatable, 0)
	names := make(map[string]string)

	for rows.Next() {
		var id uuid.UUID
		var name string
		var lon, lat float64

		if err = rows.Scan(&id, &name, &lon, &lat); err != nil {
			return nil, nil, err
		}

		dealerID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, nil, idErr
		}

		d, restoreErr := dealer.RestoreDealer(dealerID, name, kernel.NewPoint(lon, lat), nil)
		if restoreErr != nil {
			return nil, nil, restoreErr
		}

		dealers = append(dealers, d)
		names[dealerID.String()] = name
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	return dealers, names, nil
}

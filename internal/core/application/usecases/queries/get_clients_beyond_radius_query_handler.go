package queries

import (
	"context"

	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/core/domain/model/client"
	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/core/domain/model/kernel"
	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/core/domain/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetClientsBeyondRadiusQueryHandler finds clients outside the delivery
// range of every company. Reads client and company positions, then applies
// ProximityRanker.BeyondRadius in memory.
type GetClientsBeyondRadiusQueryHandler struct {
	db *gorm.DB
}

// NewGetClientsBeyondRadiusQueryHandler creates a handler for beyond-radius queries.
// Requires a GORM database connection for query execution.
func NewGetClientsBeyondRadiusQueryHandler(db *gorm.DB) GetClientsBeyondRadiusQueryHandler {
	return GetClientsBeyondRadiusQueryHandler{db: db}
}

// Handle executes the query. A client within the radius of any single
// company is excluded; with no companies registered every client qualifies
// and the nearest-company distance is left unset.
func (h GetClientsBeyondRadiusQueryHandler) Handle(
	ctx context.Context,
	query GetClientsBeyondRadiusQuery,
) ([]GetClientsBeyondRadiusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	clients, names, err := h.loadClients(ctx)
	if err != nil {
		return nil, err
	}

	references, err := h.loadCompanyLocations(ctx)
	if err != nil {
		return nil, err
	}

	beyond, err := services.NewProximityRanker().BeyondRadius(clients, references, query.RadiusMeters())
	if err != nil {
		return nil, err
	}

	responses := make([]GetClientsBeyondRadiusQueryResponse, 0, len(beyond))
	for _, r := range beyond {
		response := GetClientsBeyondRadiusQueryResponse{
			ID:       r.ID,
			Name:     names[r.ID.String()],
			Location: r.Location,
		}
		// Without companies there is no nearest distance to report.
		if len(references) > 0 {
			distance := r.DistanceMeters
			response.NearestCompanyMeters = &distance
		}
		responses = append(responses, response)
	}

	return responses, nil
}

func (h GetClientsBeyondRadiusQueryHandler) loadClients(ctx context.Context) ([]services.Locatable, map[string]string, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			address,
			location_lon,
			location_lat
		FROM clients
		ORDER BY id
	`).Rows()
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	clients := make([]services.Locatable, 0)
	names := make(map[string]string)

	for rows.Next() {
		var id uuid.UUID
		var name, address string
		var lon, lat float64

		if err = rows.Scan(&id, &name, &address, &lon, &lat); err != nil {
			return nil, nil, err
		}

		clientID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, nil, idErr
		}

		c, restoreErr := client.RestoreClient(clientID, name, address, kernel.NewPoint(lon, lat))
		if restoreErr != nil {
			return nil, nil, restoreErr
		}

		clients = append(clients, c)
		names[clientID.String()] = name
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	return clients, names, nil
}

func (h GetClientsBeyondRadiusQueryHandler) loadCompanyLocations(ctx context.Context) ([]kernel.Point, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			location_lon,
			location_lat
		FROM companies
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	points := make([]kernel.Point, 0)
	for rows.Next() {
		var lon, lat float64

		if err = rows.Scan(&lon, &lat); err != nil {
			return nil, err
		}
		points = append(points, kernel.NewPoint(lon, lat))
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return points, nil
}

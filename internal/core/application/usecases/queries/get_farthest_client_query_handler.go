package queries

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/core/domain/model/kernel"
	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/core/domain/services"
	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetFarthestClientQueryHandler finds the client farthest from a company.
type GetFarthestClientQueryHandler struct {
	db *gorm.DB
}

// NewGetFarthestClientQueryHandler creates a handler for farthest-client queries.
// Requires a GORM database connection for query execution.
func NewGetFarthestClientQueryHandler(db *gorm.DB) GetFarthestClientQueryHandler {
	return GetFarthestClientQueryHandler{db: db}
}

// Handle executes the query.
// Returns errs.ObjectNotFoundError when the company is unknown and
// Found=false when there are no clients at all.
func (h GetFarthestClientQueryHandler) Handle(
	ctx context.Context,
	query GetFarthestClientQuery,
) (GetFarthestClientQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetFarthestClientQueryResponse{}, err
	}

	var lon, lat float64
	row := h.db.WithContext(ctx).
		Table("companies").
		Select("location_lon", "location_lat").
		Where("id = ?", query.CompanyID().String()).
		Row()
	if err := row.Scan(&lon, &lat); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, sql.ErrNoRows) {
			return GetFarthestClientQueryResponse{}, errs.NewObjectNotFoundError("company", query.CompanyID())
		}
		return GetFarthestClientQueryResponse{}, err
	}
	companyLocation := kernel.NewPoint(lon, lat)

	clients, names, err := GetClientsBeyondRadiusQueryHandler{db: h.db}.loadClients(ctx)
	if err != nil {
		return GetFarthestClientQueryResponse{}, err
	}

	farthest, err := services.NewProximityRanker().Farthest(companyLocation, clients)
	if err != nil {
		return GetFarthestClientQueryResponse{}, err
	}
	if farthest == nil {
		return GetFarthestClientQueryResponse{}, nil
	}

	return GetFarthestClientQueryResponse{
		Found:          true,
		ID:             farthest.ID,
		Name:           names[farthest.ID.String()],
		Location:       farthest.Location,
		DistanceMeters: farthest.DistanceMeters,
	}, nil
}

package queries

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/core/domain/model/coverage"
	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/core/domain/model/kernel"
	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/core/domain/services"
	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CheckClientCoverageQueryHandler resolves coverage checks against the
// primary store. Reads the client and company positions plus the company's
// coverage polygons, then delegates the geometry to CoverageMatcher.
type CheckClientCoverageQueryHandler struct {
	db *gorm.DB
}

// NewCheckClientCoverageQueryHandler creates a handler for coverage checks.
// Requires a GORM database connection for query execution.
func NewCheckClientCoverageQueryHandler(db *gorm.DB) CheckClientCoverageQueryHandler {
	return CheckClientCoverageQueryHandler{db: db}
}

// Handle executes the coverage check.
// Returns errs.ObjectNotFoundError when the client or company is unknown.
// A company without coverage areas yields covered=false.
func (h CheckClientCoverageQueryHandler) Handle(
	ctx context.Context,
	query CheckClientCoverageQuery,
) (CheckClientCoverageQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return CheckClientCoverageQueryResponse{}, err
	}

	clientLocation, err := h.loadPoint(ctx, "clients", query.ClientID())
	if err != nil {
		return CheckClientCoverageQueryResponse{}, err
	}

	companyLocation, err := h.loadPoint(ctx, "companies", query.CompanyID())
	if err != nil {
		return CheckClientCoverageQueryResponse{}, err
	}

	areas, err := h.loadCompanyAreas(ctx, query.CompanyID())
	if err != nil {
		return CheckClientCoverageQueryResponse{}, err
	}

	result, err := services.NewCoverageMatcher().CoverageDetails(clientLocation, companyLocation, areas)
	if err != nil {
		return CheckClientCoverageQueryResponse{}, err
	}

	return CheckClientCoverageQueryResponse{
		Covered:                 result.Covered,
		MatchedAreaID:           result.MatchedAreaID,
		DistanceToCompanyMeters: result.DistanceToCompanyMeters,
	}, nil
}

func (h CheckClientCoverageQueryHandler) loadPoint(ctx context.Context, table string, id kernel.UUID) (kernel.Point, error) {
	var lon, lat float64

	row := h.db.WithContext(ctx).
		Table(table).
		Select("location_lon", "location_lat").
		Where("id = ?", id.String()).
		Row()

	if err := row.Scan(&lon, &lat); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, sql.ErrNoRows) {
			return kernel.Point{}, errs.NewObjectNotFoundError(table, id)
		}
		return kernel.Point{}, err
	}

	return kernel.NewPoint(lon, lat), nil
}

func (h CheckClientCoverageQueryHandler) loadCompanyAreas(
	ctx context.Context,
	companyID kernel.UUID,
) ([]*coverage.CoverageArea, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			ca.id,
			ca.name,
			ca.ring
		FROM coverage_areas ca
		JOIN company_coverage_areas cca ON cca.coverage_area_id = ca.id
		WHERE cca.company_id = ?
		ORDER BY ca.id
	`, companyID.String()).Rows()
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

// Package coveragerepo provides data transfer objects and mapping functions
// for coverage area persistence. Polygons are stored as WKT text and parsed
// back into domain geometry on read.
package coveragerepo

import (
	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/core/domain/model/coverage"
	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CoverageAreaDTO represents the database structure for persisting coverage areas.
type CoverageAreaDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"type:varchar(255);not null"`
	Ring string    `gorm:"type:text;not null"`
}

// TableName specifies the database table name for coverage area entities.
func (CoverageAreaDTO) TableName() string {
	return "coverage_areas"
}

// fromDomain converts a coverage area aggregate to its database representation.
func fromDomain(aggregate *coverage.CoverageArea) (CoverageAreaDTO, error) {
	ring, err := kernel.FormatPolygon(aggregate.Polygon())
	if err != nil {
		return CoverageAreaDTO{}, err
	}

	return CoverageAreaDTO{
		ID:   aggregate.ID().Bytes(),
		Name: aggregate.Name(),
		Ring: ring,
	}, nil
}

// toDomain converts a database DTO to a coverage area aggregate.
func toDomain(dto CoverageAreaDTO) (*coverage.CoverageArea, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	polygon, err := kernel.ParsePolygon(dto.Ring)
	if err != nil {
		return nil, err
	}

	return coverage.RestoreCoverageArea(id, dto.Name, polygon)
}

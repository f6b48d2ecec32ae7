// Package dealerrepo provides data transfer objects and mapping functions for dealer persistence.
package dealerrepo

import (
	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/core/domain/model/dealer"
	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DealerDTO represents the database structure for persisting dealer aggregates.
// FrequentRoute holds the derived most-driven route as WKT text, null until
// the recompute job has produced one.
type DealerDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name          string    `gorm:"type:varchar(255);not null"`
	Location      PointDTO  `gorm:"embedded;embeddedPrefix:location_"`
	FrequentRoute *string   `gorm:"type:text"`
}

// TableName specifies the database table name for dealer entities.
func (DealerDTO) TableName() string {
	return "dealers"
}

// PointDTO represents an embedded lon/lat position.
type PointDTO struct {
	Lon float64 `gorm:"type:double precision"`
	Lat float64 `gorm:"type:double precision"`
}

// fromDomain converts a dealer domain aggregate to its database representation.
func fromDomain(aggregate *dealer.Dealer) (DealerDTO, error) {
	dto := DealerDTO{
		ID:   aggregate.ID().Bytes(),
		Name: aggregate.Name(),
		Location: PointDTO{
			Lon: aggregate.Location().Lon(),
			Lat: aggregate.Location().Lat(),
		},
	}

	if route := aggregate.FrequentRoute(); route != nil {
		text, err := kernel.FormatLineString(*route)
		if err != nil {
			return DealerDTO{}, err
		}
		dto.FrequentRoute = &text
	}

	return dto, nil
}

// toDomain converts a database DTO to a dealer domain aggregate.
func toDomain(dto DealerDTO) (*dealer.Dealer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var frequentRoute *kernel.LineString
	if dto.FrequentRoute != nil {
		route, parseErr := kernel.ParseLineString(*dto.FrequentRoute)
		if parseErr != nil {
			return nil, parseErr
		}
		frequentRoute = &route
	}

	return dealer.RestoreDealer(id, dto.Name, kernel.NewPoint(dto.Location.Lon, dto.Location.Lat), frequentRoute)
}

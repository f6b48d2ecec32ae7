// Package clientrepo provides data transfer objects and mapping functions for client persistence.
package clientrepo

import (
	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/core/domain/model/client"
	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ClientDTO represents the database structure for persisting client aggregates.
type ClientDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name     string    `gorm:"type:varchar(255);not null"`
	Address  string    `gorm:"type:varchar(255);not null"`
	Location PointDTO  `gorm:"embedded;embeddedPrefix:location_"`
}

// TableName specifies the database table name for client entities.
func (ClientDTO) TableName() string {
	return "clients"
}

// PointDTO represents an embedded lon/lat position.
type PointDTO struct {
	Lon float64 `gorm:"type:double precision"`
	Lat float64 `gorm:"type:double precision"`
}

// fromDomain converts a client domain aggregate to its database representation.
func fromDomain(aggregate *client.Client) ClientDTO {
	return ClientDTO{
		ID:      aggregate.ID().Bytes(),
		Name:    aggregate.Name(),
		Address: aggregate.Address(),
		Location: PointDTO{
			Lon: aggregate.Location().Lon(),
			Lat: aggregate.Location().Lat(),
		},
	}
}

// toDomain converts a database DTO to a client domain aggregate.
func toDomain(dto ClientDTO) (*client.Client, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return client.RestoreClient(id, dto.Name, dto.Address, kernel.NewPoint(dto.Location.Lon, dto.Location.Lat))
}

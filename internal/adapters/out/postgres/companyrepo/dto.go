// Package companyrepo provides data transfer objects and mapping functions for company persistence.
// Coverage area and payment method links are stored in join tables owned by
// the company row, following the nested-association pattern used elsewhere
// in the postgres adapters.
package companyrepo

import (
	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/core/domain/model/company"
	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CompanyDTO represents the database structure for persisting company aggregates.
type CompanyDTO struct {
	ID               uuid.UUID          `gorm:"type:uuid;primaryKey"`
	Name             string             `gorm:"type:varchar(255);not null"`
	Location         PointDTO           `gorm:"embedded;embeddedPrefix:location_"`
	Deliveries       int                `gorm:"not null;default:0"`
	FailedDeliveries int                `gorm:"not null;default:0"`
	TotalSales       float64            `gorm:"not null;default:0"`
	CoverageAreas    []CoverageLinkDTO `gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE"`
	PaymentMethods   []PaymentLinkDTO  `gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for company entities.
func (CompanyDTO) TableName() string {
	return "companies"
}

// PointDTO represents an embedded lon/lat position.
type PointDTO struct {
	Lon float64 `gorm:"type:double precision"`
	Lat float64 `gorm:"type:double precision"`
}

// CoverageLinkDTO links a company to one of its coverage areas.
type CoverageLinkDTO struct {
	CompanyID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	CoverageAreaID uuid.UUID `gorm:"type:uuid;primaryKey"`
}

// TableName specifies the database table name for company coverage links.
func (CoverageLinkDTO) TableName() string {
	return "company_coverage_areas"
}

// PaymentLinkDTO links a company to one of its accepted payment methods.
type PaymentLinkDTO struct {
	CompanyID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	PaymentMethodID uuid.UUID `gorm:"type:uuid;primaryKey"`
}

// TableName specifies the database table name for company payment links.
func (PaymentLinkDTO) TableName() string {
	return "company_payment_methods"
}

// fromDomain converts a company domain aggregate to its database representation.
func fromDomain(aggregate *company.Company) CompanyDTO {
	companyID := aggregate.ID().Bytes()

	coverageLinks := make([]CoverageLinkDTO, 0, len(aggregate.CoverageAreaIDs()))
	for _, areaID := range aggregate.CoverageAreaIDs() {
		coverageLinks = append(coverageLinks, CoverageLinkDTO{
			CompanyID:      companyID,
			CoverageAreaID: areaID.Bytes(),
		})
	}

	paymentLinks := make([]PaymentLinkDTO, 0, len(aggregate.PaymentMethodIDs()))
	for _, methodID := range aggregate.PaymentMethodIDs() {
		paymentLinks = append(paymentLinks, PaymentLinkDTO{
			CompanyID:       companyID,
			PaymentMethodID: methodID.Bytes(),
		})
	}

	stats := aggregate.Stats()
	return CompanyDTO{
		ID:   companyID,
		Name: aggregate.Name(),
		Location: PointDTO{
			Lon: aggregate.Location().Lon(),
			Lat: aggregate.Location().Lat(),
		},
		Deliveries:       stats.Deliveries,
		FailedDeliveries: stats.FailedDeliveries,
		TotalSales:       stats.TotalSales,
		CoverageAreas:    coverageLinks,
		PaymentMethods:   paymentLinks,
	}
}

// toDomain converts a database DTO to a company domain aggregate.
func toDomain(dto CompanyDTO) (*company.Company, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	coverageAreaIDs := make([]kernel.UUID, 0, len(dto.CoverageAreas))
	for _, link := range dto.CoverageAreas {
		areaID, linkErr := kernel.UUIDFromBytes(link.CoverageAreaID[:])
		if linkErr != nil {
			return nil, linkErr
		}
		coverageAreaIDs = append(coverageAreaIDs, areaID)
	}

	paymentMethodIDs := make([]kernel.UUID, 0, len(dto.PaymentMethods))
	for _, link := range dto.PaymentMethods {
		methodID, linkErr := kernel.UUIDFromBytes(link.PaymentMethodID[:])
		if linkErr != nil {
			return nil, linkErr
		}
		paymentMethodIDs = append(paymentMethodIDs, methodID)
	}

	return company.RestoreCompany(
		id,
		dto.Name,
		kernel.NewPoint(dto.Location.Lon, dto.Location.Lat),
		coverageAreaIDs,
		paymentMethodIDs,
		company.Stats{
			Deliveries:       dto.Deliveries,
			FailedDeliveries: dto.FailedDeliveries,
			TotalSales:       dto.TotalSales,
		},
	)
}

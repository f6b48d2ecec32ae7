// Package queries contains read-only operations over the primary store.
// Implements the Query side of the CQRS architecture: handlers read raw
// rows with direct SQL, rebuild the value objects they need, and run the
// geometry services in memory.
package queries

import (
	"errors"

	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/core/domain/model/kernel"
	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/pkg/guard"
)

var ErrCheckClientCoverageQueryIsNotConstructed = errors.New(
	"CheckClientCoverageQuery must be created via NewCheckClientCoverageQuery constructor",
)

// CheckClientCoverageQuery asks whether a client's location falls inside a
// company's delivery coverage and how far apart they are.
//
// Example:
//
//	query, _ := NewCheckClientCoverageQuery(clientID, companyID)
//	handler := NewCheckClientCoverageQueryHandler(db)
//
//	verdict, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("coverage check failed: %w", err)
//	}
//	fmt.Printf("covered=%v distance=%.0fm\n", verdict.Covered, verdict.DistanceToCompanyMeters)
type CheckClientCoverageQuery struct {
	clientID  kernel.UUID
	companyID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCheckClientCoverageQuery creates a coverage check query for a client
// and company pair.
func NewCheckClientCoverageQuery(clientID kernel.UUID, companyID kernel.UUID) (CheckClientCoverageQuery, error) {
	if err := errors.Join(clientID.Validate(), companyID.Validate()); err != nil {
		return CheckClientCoverageQuery{}, err
	}

	return CheckClientCoverageQuery{
		clientID:  clientID,
		companyID: companyID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q CheckClientCoverageQuery) Validate() error {
	return q.guard.Validate(ErrCheckClientCoverageQueryIsNotConstructed)
}

// ClientID returns the client to check.
func (q CheckClientCoverageQuery) ClientID() kernel.UUID {
	return q.clientID
}

// CompanyID returns the company whose coverage is checked.
func (q CheckClientCoverageQuery) CompanyID() kernel.UUID {
	return q.companyID
}

// CheckClientCoverageQueryResponse is the coverage verdict read model.
type CheckClientCoverageQueryResponse struct {
	Covered                 bool
	MatchedAreaID           *kernel.UUID
	DistanceToCompanyMeters float64
}

// Package services contains stateless domain services that implement
// business logic spanning multiple aggregates: coverage matching between
// clients and seller areas, proximity ranking of delivery points, and
// route-zone analysis for delivery routes.
//
// Services hold no state and no infrastructure dependencies. They operate
// purely on domain model objects and are safe for concurrent use.
package services

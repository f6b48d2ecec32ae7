// Package kernel provides core domain primitives for the delivery marketplace.
// It implements the fundamental building blocks used throughout the domain model.
//
// The package includes:
//   - UUID: A value object for unique identifiers with validation and comparison capabilities
//   - Point: A WGS84 coordinate value object with geodesic distance calculation
//   - Polygon: A closed coverage ring with containment and intersection tests
//   - LineString: An ordered route of coordinates
//   - The WKT codec that parses and formats the textual geometry encoding
//     used at the service boundary
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. They are designed to be immutable
// and thread-safe, making them suitable for concurrent use.
package kernel

package http

// Error is the standard error payload.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Location is a WGS84 coordinate pair.
type Location struct {
	Lon float64 `json:"lon"`
	Lat float64 `json:"lat"`
}

// NewOrder is the request body for placing an order.
type NewOrder struct {
	ClientID   string  `json:"client_id"`
	TotalPrice float64 `json:"total_price"`
}

// CreatedOrder is the response body after placing an order.
type CreatedOrder struct {
	ID string `json:"id"`
}

// AssignOrder is the request body for dispatching an order to a dealer.
type AssignOrder struct {
	DealerID string `json:"dealer_id"`
}

// ChangeOrderStatus is the request body for a lifecycle transition. An empty
// dealer id means the change is an administrative override.
type ChangeOrderStatus struct {
	Status   string `json:"status"`
	DealerID string `json:"dealer_id,omitempty"`
}

// CoverageCheck is the response body for a coverage check.
type CoverageCheck struct {
	Covered                 bool    `json:"covered"`
	MatchedAreaID           *string `json:"matched_area_id,omitempty"`
	DistanceToCompanyMeters float64 `json:"distance_to_company_meters"`
}

// NearestDealersParams are the query parameters for the nearest-dealers ranking.
type NearestDealersParams struct {
	Lon   float64 `query:"lon"`
	Lat   float64 `query:"lat"`
	Limit int     `query:"limit"`
}

// RankedDealer is one entry of the nearest-dealers ranking.
type RankedDealer struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Location       Location `json:"location"`
	DistanceMeters float64  `json:"distance_meters"`
}

// BeyondRadiusParams are the query parameters for the remote-clients listing.
type BeyondRadiusParams struct {
	RadiusMeters float64 `query:"radius_meters"`
}

// RemoteClient is one entry of the remote-clients listing. The nearest
// company distance is omitted when no companies exist to measure against.
type RemoteClient struct {
	ID                   string   `json:"id"`
	Name                 string   `json:"name"`
	Location             Location `json:"location"`
	NearestCompanyMeters *float64 `json:"nearest_company_meters,omitempty"`
}

// FarthestClient is the response body for the farthest-client query.
type FarthestClient struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Location       Location `json:"location"`
	DistanceMeters float64  `json:"distance_meters"`
}

// ActiveOrder is the response body for a dealer's in-progress order.
type ActiveOrder struct {
	OrderID    string  `json:"order_id"`
	ClientID   string  `json:"client_id"`
	Urgent     bool    `json:"urgent"`
	OrderDate  string  `json:"order_date"`
	TotalPrice float64 `json:"total_price"`
}

// MultizoneParams are the query parameters for the multizone-orders listing.
type MultizoneParams struct {
	Threshold int `query:"threshold"`
}

// MultizoneOrder is one entry of the multizone-orders listing.
type MultizoneOrder struct {
	OrderID      string   `json:"order_id"`
	ZonesCrossed []string `json:"zones_crossed"`
}

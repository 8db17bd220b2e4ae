package models

import "time"

// RoutePoint is a circular geofence: a centre plus a radius in miles.
type RoutePoint struct {
	Lat         float64 `bson:"lat" json:"lat"`
	Lng         float64 `bson:"lng" json:"lng"`
	RadiusMiles float64 `bson:"radiusMiles" json:"radiusMiles"`
}

// FixedRoute is a geofenced origin/destination pair with a flat price,
// independent of measured distance. Routes are scanned in descending
// Priority order and the first containing route wins.
type FixedRoute struct {
	ID             string     `bson:"id" json:"id"`
	Name           string     `bson:"name" json:"name"` // e.g., "Gatwick - Brighton".
	VehicleClassID string     `bson:"vehicleClassId" json:"vehicleClassId"`
	Start          RoutePoint `bson:"start" json:"start"`
	End            RoutePoint `bson:"end" json:"end"`
	Price          float64    `bson:"price" json:"price"`
	Currency       string     `bson:"currency,omitempty" json:"currency,omitempty"`
	Priority       int        `bson:"priority" json:"priority"`       // Higher = evaluated first.
	ValidReturn    bool       `bson:"validReturn" json:"validReturn"` // Also match the reversed direction.
	Active         bool       `bson:"active" json:"active"`
	CreatedAt      time.Time  `bson:"createdAt" json:"createdAt"`
}

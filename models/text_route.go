package models

import "time"

// TextRoute is a legacy route keyed on free-text pickup/drop-off labels,
// kept for operators who priced corridors before geofencing existed.
// Matching is case-insensitive substring containment in either direction.
type TextRoute struct {
	ID        string             `bson:"id" json:"id"`
	Pickup    string             `bson:"pickup" json:"pickup"`   // e.g., "heathrow terminal 5".
	Dropoff   string             `bson:"dropoff" json:"dropoff"` // e.g., "central london".
	Prices    map[string]float64 `bson:"prices" json:"prices"`   // vehicleClassId -> price.
	Currency  string             `bson:"currency,omitempty" json:"currency,omitempty"`
	Active    bool               `bson:"active" json:"active"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// PriceFor returns the configured price for a class, if any.
func (r TextRoute) PriceFor(vehicleClassID string) (float64, bool) {
	price, ok := r.Prices[vehicleClassID]
	return price, ok
}

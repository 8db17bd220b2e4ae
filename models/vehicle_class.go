package models

import "time"

// VehicleClass is the reference data every pricing entity hangs off.
// Classes are created and edited by an administrator and are read-only
// at quote time.
type VehicleClass struct {
	ID            string    `bson:"id" json:"id"`                           // Unique class identifier (UUID).
	Name          string    `bson:"name" json:"name"`                       // e.g., "Saloon", "Executive", "MPV".
	Description   string    `bson:"description" json:"description,omitempty"`
	MaxPassengers int       `bson:"maxPassengers" json:"maxPassengers"`     // Seating capacity.
	MaxLuggage    int       `bson:"maxLuggage" json:"maxLuggage"`           // Standard suitcase capacity.
	Order         int       `bson:"order" json:"order"`                     // Display order in listings.
	ImageID       string    `bson:"imageId,omitempty" json:"imageId,omitempty"` // Cloudinary public ID.
	Active        bool      `bson:"active" json:"active"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Fits reports whether the class can carry the requested load.
func (vc VehicleClass) Fits(passengers, luggage int) bool {
	return passengers <= vc.MaxPassengers && luggage <= vc.MaxLuggage
}

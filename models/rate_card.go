package models

import "time"

// RateCard is the legacy flat per-distance tariff for a vehicle class,
// consulted only when neither a route match nor a bracket scheme produced
// a price. Distances here are kilometres, unlike the mileage brackets.
type RateCard struct {
	ID                string    `bson:"id" json:"id"`
	VehicleClassID    string    `bson:"vehicleClassId" json:"vehicleClassId"`
	BaseFee           float64   `bson:"baseFee" json:"baseFee"`
	PerKmRate         float64   `bson:"perKmRate" json:"perKmRate"`
	MinimumFare       float64   `bson:"minimumFare" json:"minimumFare"`
	AirportSurcharge  float64   `bson:"airportSurcharge" json:"airportSurcharge"`
	MeetGreetFee      float64   `bson:"meetGreetFee" json:"meetGreetFee"`
	NightSurchargePct float64   `bson:"nightSurchargePct" json:"nightSurchargePct"`
	Currency          string    `bson:"currency,omitempty" json:"currency,omitempty"`
	Active            bool      `bson:"active" json:"active"`
	UpdatedAt         time.Time `bson:"updatedAt" json:"updatedAt"`
}

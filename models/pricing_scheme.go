package models

import "time"

// MileageBracket is one distance sub-range of a tiered tariff. Brackets are
// contiguous and non-overlapping when sorted by Order. At most one of
// FixedPrice / PerMileRate is meaningful; a bracket defining neither is a
// configuration fault and contributes nothing to a price.
type MileageBracket struct {
	MinMiles    float64  `bson:"minMiles" json:"minMiles"`
	MaxMiles    *float64 `bson:"maxMiles,omitempty" json:"maxMiles,omitempty"`       // nil = unbounded final bracket.
	FixedPrice  *float64 `bson:"fixedPrice,omitempty" json:"fixedPrice,omitempty"`   // Flat amount for this range.
	PerMileRate *float64 `bson:"perMileRate,omitempty" json:"perMileRate,omitempty"` // Metered rate for this range.
	Order       int      `bson:"order" json:"order"`
}

// ExtraFees holds the per-scheme surcharges applied on top of the bracket
// arithmetic. Flat fees are added by the quote engine when the request flags
// them; the percentages apply to night (22:00-05:59) and weekend pickups.
type ExtraFees struct {
	AirportPickupFee    float64 `bson:"airportPickupFee" json:"airportPickupFee"`
	MeetGreetFee        float64 `bson:"meetGreetFee" json:"meetGreetFee"`
	NightSurchargePct   float64 `bson:"nightSurchargePct" json:"nightSurchargePct"`
	WeekendSurchargePct float64 `bson:"weekendSurchargePct" json:"weekendSurchargePct"`
	ChildSeatFee        float64 `bson:"childSeatFee" json:"childSeatFee"`
	WaitingPerMinute    float64 `bson:"waitingPerMinute" json:"waitingPerMinute"`
}

// PricingScheme is the distance-bracket tariff for one vehicle class.
// One active scheme per class.
type PricingScheme struct {
	ID             string           `bson:"id" json:"id"`
	VehicleClassID string           `bson:"vehicleClassId" json:"vehicleClassId"`
	Currency       string           `bson:"currency" json:"currency"` // e.g., "GBP".
	BaseFare       float64          `bson:"baseFare" json:"baseFare"`
	MinimumFare    float64          `bson:"minimumFare" json:"minimumFare"`
	Brackets       []MileageBracket `bson:"brackets" json:"brackets"`
	Extras         ExtraFees        `bson:"extras" json:"extras"`
	Active         bool             `bson:"active" json:"active"`
	UpdatedAt      time.Time        `bson:"updatedAt" json:"updatedAt"`
}

// HasBrackets reports whether the scheme defines any tariff at all.
// A scheme without brackets never produces a price.
func (s *PricingScheme) HasBrackets() bool {
	return s != nil && len(s.Brackets) > 0
}

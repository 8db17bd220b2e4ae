package pricing

import (
	"strings"
	"time"

	"voyago/config"
	"voyago/models"
)

// milesPerKm converts the request's kilometre distance into the mileage
// units bracket tariffs are configured in.
const milesPerKm = 0.621371

// Hard-coded last-resort formula, applied when nothing in the tariff store
// prices a class.
const (
	defaultBaseFare     = 25.0
	defaultPerKmRate    = 1.8
	defaultMeetGreetFee = 15.0
	defaultAirportFee   = 10.0
)

// classTariffs bundles the read-only reference data one class's quote is
// computed from. Everything is read before the chain runs, so a tariff edit
// mid-request cannot mix generations within one price.
type classTariffs struct {
	class       models.VehicleClass
	fixedRoutes []models.FixedRoute
	textRoutes  []models.TextRoute
	scheme      *models.PricingScheme
	rateCard    *models.RateCard
}

// tierResult is one tier's un-rounded output. An empty currency defers to
// the configured default.
type tierResult struct {
	price    float64
	currency string
}

// pricingTier is one step of the fallback chain: it either prices the
// journey for the class or declines.
type pricingTier struct {
	source string
	apply  func(req models.QuoteRequest, ct classTariffs) (tierResult, bool)
}

// quoteTiers is the fallback chain in evaluation order. The chain is data,
// not control flow: the first tier to produce a price wins, and the final
// default tier is total, so every eligible class receives exactly one price.
var quoteTiers = []pricingTier{
	{source: models.QuoteSourceFixedRoute, apply: fixedRouteTier},
	{source: models.QuoteSourceTextRoute, apply: textRouteTier},
	{source: models.QuoteSourceScheme, apply: schemeTier},
	{source: models.QuoteSourceRateCard, apply: rateCardTier},
	{source: models.QuoteSourceDefault, apply: defaultTier},
}

// fixedRouteTier prices the journey from the first matching geofenced route.
// Fixed routes are all-in prices: request surcharges do not apply on top.
func fixedRouteTier(req models.QuoteRequest, ct classTariffs) (tierResult, bool) {
	if !req.HasCoordinates() || len(ct.fixedRoutes) == 0 {
		return tierResult{}, false
	}
	route := MatchFixedRoute(*req.PickupLat, *req.PickupLng, *req.DropoffLat, *req.DropoffLng, ct.fixedRoutes)
	if route == nil {
		return tierResult{}, false
	}
	return tierResult{price: route.Price, currency: route.Currency}, true
}

// textRouteTier prices the journey from a legacy free-text corridor whose
// price map covers this class.
func textRouteTier(req models.QuoteRequest, ct classTariffs) (tierResult, bool) {
	for _, tr := range ct.textRoutes {
		if !textRouteMatches(req.PickupLocation, req.DropoffLocation, tr) {
			continue
		}
		if price, ok := tr.PriceFor(ct.class.ID); ok {
			return tierResult{price: price, currency: tr.Currency}, true
		}
	}
	return tierResult{}, false
}

// textRouteMatches reports whether the journey's labels match the route's in
// either direction of travel.
func textRouteMatches(pickup, dropoff string, route models.TextRoute) bool {
	return (labelMatches(pickup, route.Pickup) && labelMatches(dropoff, route.Dropoff)) ||
		(labelMatches(pickup, route.Dropoff) && labelMatches(dropoff, route.Pickup))
}

// labelMatches compares a request location against a configured label,
// ignoring case; either string containing the other counts as a match.
func labelMatches(text, label string) bool {
	text = strings.TrimSpace(strings.ToLower(text))
	label = strings.TrimSpace(strings.ToLower(label))
	if text == "" || label == "" {
		return false
	}
	return strings.Contains(text, label) || strings.Contains(label, text)
}

// schemeTier prices the journey on the class's bracket tariff, adds the
// scheme's flat fees for the flagged services, then applies any night or
// weekend percentage to the total.
func schemeTier(req models.QuoteRequest, ct classTariffs) (tierResult, bool) {
	price, ok := BracketPrice(req.DistanceKm*milesPerKm, ct.scheme)
	if !ok {
		return tierResult{}, false
	}

	extras := ct.scheme.Extras
	if req.AirportPickup {
		price += extras.AirportPickupFee
	}
	if req.MeetGreet {
		price += extras.MeetGreetFee
	}
	if req.ChildSeats > 0 {
		price += float64(req.ChildSeats) * extras.ChildSeatFee
	}
	price = applySurcharge(price, req.PickupAt, extras.NightSurchargePct, extras.WeekendSurchargePct)

	return tierResult{price: price, currency: ct.scheme.Currency}, true
}

// rateCardTier prices the journey on the class's legacy rate card. The card
// only configures a night percentage, so weekends pass through unchanged.
func rateCardTier(req models.QuoteRequest, ct classTariffs) (tierResult, bool) {
	if ct.rateCard == nil {
		return tierResult{}, false
	}
	flags := TripFlags{AirportPickup: req.AirportPickup, MeetGreet: req.MeetGreet}
	price := RateCardPrice(req.DistanceKm, ct.rateCard, flags)
	price = applySurcharge(price, req.PickupAt, ct.rateCard.NightSurchargePct, 0)

	return tierResult{price: price, currency: ct.rateCard.Currency}, true
}

// defaultTier is the hard-coded last resort. It always succeeds, which is
// what guarantees a quote for every eligible class.
func defaultTier(req models.QuoteRequest, ct classTariffs) (tierResult, bool) {
	price := defaultBaseFare + req.DistanceKm*defaultPerKmRate
	if req.MeetGreet {
		price += defaultMeetGreetFee
	}
	if req.AirportPickup {
		price += defaultAirportFee
	}
	return tierResult{price: price}, true
}

// applySurcharge multiplies a tier total by the configured percentage for
// the pickup time, if any.
func applySurcharge(price float64, pickupAt *time.Time, nightPct, weekendPct float64) float64 {
	pct := surchargePct(pickupAt, nightPct, weekendPct)
	if pct == 0 {
		return price
	}
	return price * (1 + pct/100)
}

// surchargePct picks the percentage for the pickup time. Night pickups take
// precedence over weekend pickups when both apply; requests without a pickup
// time carry no surcharge.
func surchargePct(pickupAt *time.Time, nightPct, weekendPct float64) float64 {
	if pickupAt == nil {
		return 0
	}

	if nightPct != 0 && inNightWindow(pickupAt.Hour()) {
		return nightPct
	}
	wd := pickupAt.Weekday()
	if weekendPct != 0 && (wd == time.Saturday || wd == time.Sunday) {
		return weekendPct
	}
	return 0
}

// inNightWindow reports whether an hour falls in the configured night
// window. The window normally wraps midnight (22:00 to 05:59); when
// configuration is absent the default window applies.
func inNightWindow(hour int) bool {
	start, end := config.AppConfig.NightStartHour, config.AppConfig.NightEndHour
	if start == 0 && end == 0 {
		start, end = 22, 6
	}
	if start <= end {
		return hour >= start && hour < end
	}
	return hour >= start || hour < end
}

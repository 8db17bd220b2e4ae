package pricing

import (
	"math"
	"sort"

	"voyago/models"
)

// earthRadiusMiles is the Earth radius used for geofence containment checks.
// Route radii are configured in miles, so the great-circle maths stays in
// miles throughout.
const earthRadiusMiles = 3959.0

// haversineMiles returns the great-circle distance in miles between two
// points specified in decimal degrees.
func haversineMiles(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := degreesToRadians(lat2 - lat1)
	dLng := degreesToRadians(lng2 - lng1)

	rLat1 := degreesToRadians(lat1)
	rLat2 := degreesToRadians(lat2)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rLat1)*math.Cos(rLat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMiles * c
}

func degreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// withinPoint reports whether a coordinate falls inside a circular geofence.
func withinPoint(lat, lng float64, point models.RoutePoint) bool {
	return haversineMiles(lat, lng, point.Lat, point.Lng) <= point.RadiusMiles
}

// MatchFixedRoute returns the first route whose start and end geofences
// contain the journey's pickup and drop-off, or nil when none do.
//
// Routes are evaluated highest priority first; the scan is re-sorted stably
// here so ties keep the order the store returned them in and the answer does
// not depend on store internals. A route with ValidReturn also matches the
// reversed pairing. Priority order, not geometric specificity, decides
// between overlapping zones.
func MatchFixedRoute(pickupLat, pickupLng, dropoffLat, dropoffLng float64, routes []models.FixedRoute) *models.FixedRoute {
	ranked := make([]models.FixedRoute, len(routes))
	copy(ranked, routes)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Priority > ranked[j].Priority
	})

	for i := range ranked {
		route := &ranked[i]
		if withinPoint(pickupLat, pickupLng, route.Start) && withinPoint(dropoffLat, dropoffLng, route.End) {
			return route
		}
		if route.ValidReturn &&
			withinPoint(pickupLat, pickupLng, route.End) && withinPoint(dropoffLat, dropoffLng, route.Start) {
			return route
		}
	}
	return nil
}

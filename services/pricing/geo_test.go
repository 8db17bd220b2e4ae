package pricing

import (
	"math"
	"testing"

	"voyago/models"
)

// Reference coordinates reused across the geofence tests.
var (
	heathrow   = [2]float64{51.4700, -0.4543}
	trafalgar  = [2]float64{51.5080, -0.1281}
	gatwick    = [2]float64{51.1537, -0.1821}
	brighton   = [2]float64{50.8225, -0.1372}
	manchester = [2]float64{53.4808, -2.2426}
)

func TestHaversineMiles_KnownDistances(t *testing.T) {
	tests := []struct {
		name      string
		from      [2]float64
		to        [2]float64
		wantMiles float64
		tolerance float64
	}{
		{
			name:      "same point",
			from:      heathrow,
			to:        heathrow,
			wantMiles: 0,
			tolerance: 0.001,
		},
		{
			name:      "Heathrow to central London (~14 miles)",
			from:      heathrow,
			to:        trafalgar,
			wantMiles: 14.3,
			tolerance: 0.5,
		},
		{
			name:      "Gatwick to Brighton (~23 miles)",
			from:      gatwick,
			to:        brighton,
			wantMiles: 23.0,
			tolerance: 0.5,
		},
		{
			name:      "New York to Los Angeles (~2450 miles)",
			from:      [2]float64{40.7128, -74.0060},
			to:        [2]float64{34.0522, -118.2437},
			wantMiles: 2451,
			tolerance: 30,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := haversineMiles(tt.from[0], tt.from[1], tt.to[0], tt.to[1])
			if math.Abs(got-tt.wantMiles) > tt.tolerance {
				t.Errorf("haversineMiles() = %f, want %f (±%f)", got, tt.wantMiles, tt.tolerance)
			}
		})
	}
}

func geoRoute(name string, start, end [2]float64, radius float64, priority int, validReturn bool) models.FixedRoute {
	return models.FixedRoute{
		ID:   name,
		Name: name,
		Start: models.RoutePoint{
			Lat: start[0], Lng: start[1], RadiusMiles: radius,
		},
		End: models.RoutePoint{
			Lat: end[0], Lng: end[1], RadiusMiles: radius,
		},
		Price:       50,
		Priority:    priority,
		ValidReturn: validReturn,
		Active:      true,
	}
}

func TestMatchFixedRoute_ContainmentAndMiss(t *testing.T) {
	routes := []models.FixedRoute{
		geoRoute("heathrow-central", heathrow, trafalgar, 3, 1, false),
	}

	if got := MatchFixedRoute(heathrow[0], heathrow[1], trafalgar[0], trafalgar[1], routes); got == nil || got.ID != "heathrow-central" {
		t.Fatalf("expected heathrow-central match, got %v", got)
	}

	// Pickup far outside the start geofence.
	if got := MatchFixedRoute(manchester[0], manchester[1], trafalgar[0], trafalgar[1], routes); got != nil {
		t.Fatalf("expected no match for out-of-zone pickup, got %s", got.ID)
	}
}

func TestMatchFixedRoute_PriorityBeatsSpecificity(t *testing.T) {
	// Both zones contain the journey. The wider, higher-priority corridor
	// must win: priority decides, not radius.
	tight := geoRoute("tight-zone", heathrow, trafalgar, 2, 10, false)
	wide := geoRoute("wide-corridor", heathrow, trafalgar, 8, 20, false)

	orderings := [][]models.FixedRoute{
		{tight, wide},
		{wide, tight},
	}
	for _, routes := range orderings {
		got := MatchFixedRoute(heathrow[0], heathrow[1], trafalgar[0], trafalgar[1], routes)
		if got == nil || got.ID != "wide-corridor" {
			t.Fatalf("expected wide-corridor (priority 20) to win regardless of store order, got %v", got)
		}
	}
}

func TestMatchFixedRoute_EqualPriorityKeepsStoreOrder(t *testing.T) {
	first := geoRoute("configured-first", heathrow, trafalgar, 5, 10, false)
	second := geoRoute("configured-second", heathrow, trafalgar, 5, 10, false)

	got := MatchFixedRoute(heathrow[0], heathrow[1], trafalgar[0], trafalgar[1], []models.FixedRoute{first, second})
	if got == nil || got.ID != "configured-first" {
		t.Fatalf("expected stable tie-break to keep configured-first, got %v", got)
	}
}

func TestMatchFixedRoute_ValidReturn(t *testing.T) {
	tests := []struct {
		name        string
		validReturn bool
		wantMatch   bool
	}{
		{name: "reverse journey matches when validReturn set", validReturn: true, wantMatch: true},
		{name: "reverse journey rejected when validReturn unset", validReturn: false, wantMatch: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			routes := []models.FixedRoute{
				geoRoute("gatwick-brighton", gatwick, brighton, 3, 1, tt.validReturn),
			}
			// Journey travelled Brighton -> Gatwick, against the configured direction.
			got := MatchFixedRoute(brighton[0], brighton[1], gatwick[0], gatwick[1], routes)
			if tt.wantMatch && (got == nil || got.ID != "gatwick-brighton") {
				t.Fatalf("expected reversed match, got %v", got)
			}
			if !tt.wantMatch && got != nil {
				t.Fatalf("expected no reversed match, got %s", got.ID)
			}
		})
	}
}

func TestMatchFixedRoute_SwappedEndpointsSameRoute(t *testing.T) {
	// With validReturn set, swapping pickup and dropoff must select the same
	// route in both directions.
	routes := []models.FixedRoute{
		geoRoute("gatwick-brighton", gatwick, brighton, 3, 5, true),
		geoRoute("decoy", heathrow, trafalgar, 3, 1, false),
	}

	forward := MatchFixedRoute(gatwick[0], gatwick[1], brighton[0], brighton[1], routes)
	reverse := MatchFixedRoute(brighton[0], brighton[1], gatwick[0], gatwick[1], routes)

	if forward == nil || reverse == nil {
		t.Fatalf("expected matches in both directions, got forward=%v reverse=%v", forward, reverse)
	}
	if forward.ID != reverse.ID {
		t.Fatalf("directions matched different routes: %s vs %s", forward.ID, reverse.ID)
	}
}

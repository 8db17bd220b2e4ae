package pricing

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"voyago/config"
	"voyago/models"
	"voyago/utils"

	"go.uber.org/zap"
)

// TariffSource is the read-only slice of the tariff store the quote engine
// consumes. Satisfied by tariffRepo.TariffRepository.
type TariffSource interface {
	ListVehicleClasses(activeOnly bool) ([]models.VehicleClass, error)
	GetSchemeForClass(vehicleClassID string) (*models.PricingScheme, error)
	ListFixedRoutesForClass(vehicleClassID string) ([]models.FixedRoute, error)
	ListActiveTextRoutes() ([]models.TextRoute, error)
	GetRateCardForClass(vehicleClassID string) (*models.RateCard, error)
}

// QuoteService defines the interface for pricing prospective journeys.
type QuoteService interface {
	Quote(req models.QuoteRequest) ([]models.Quote, error)
}

// DefaultQuoteService implements QuoteService over a tariff store.
type DefaultQuoteService struct {
	Tariffs TariffSource
}

// Quote prices the journey for every active vehicle class able to carry the
// requested passengers and luggage, cheapest first. Classes that don't fit
// are skipped, never an error. Classes with nothing configured fall through
// to the default formula, so an eligible class always comes back priced.
func (s *DefaultQuoteService) Quote(req models.QuoteRequest) ([]models.Quote, error) {
	classes, err := s.Tariffs.ListVehicleClasses(true)
	if err != nil {
		return nil, fmt.Errorf("quote: failed to load vehicle classes: %w", err)
	}

	textRoutes, err := s.Tariffs.ListActiveTextRoutes()
	if err != nil {
		return nil, fmt.Errorf("quote: failed to load text routes: %w", err)
	}

	quotes := make([]models.Quote, 0, len(classes))
	for _, class := range classes {
		if !class.Fits(req.Passengers, req.Luggage) {
			continue
		}

		ct := classTariffs{class: class, textRoutes: textRoutes}
		if req.HasCoordinates() {
			// The geofence tier is unreachable without coordinates, so the
			// route read is skipped entirely.
			ct.fixedRoutes, err = s.Tariffs.ListFixedRoutesForClass(class.ID)
			if err != nil {
				return nil, fmt.Errorf("quote: failed to load fixed routes for class %s: %w", class.ID, err)
			}
		}
		if ct.scheme, err = s.Tariffs.GetSchemeForClass(class.ID); err != nil {
			return nil, fmt.Errorf("quote: failed to load pricing scheme for class %s: %w", class.ID, err)
		}
		if ct.rateCard, err = s.Tariffs.GetRateCardForClass(class.ID); err != nil {
			return nil, fmt.Errorf("quote: failed to load rate card for class %s: %w", class.ID, err)
		}

		quotes = append(quotes, s.buildQuote(req, ct))
	}

	sort.SliceStable(quotes, func(i, j int) bool { return quotes[i].Price < quotes[j].Price })
	return quotes, nil
}

// buildQuote runs the fallback chain for one class and shapes the result.
func (s *DefaultQuoteService) buildQuote(req models.QuoteRequest, ct classTariffs) models.Quote {
	result, source := priceForClass(req, ct)
	if source == models.QuoteSourceDefault {
		// Worth surfacing for tariff tuning: the class is bookable but
		// nothing in the tariff store priced it.
		utils.GetLogger().Warn("no pricing configured for vehicle class, default formula applied",
			zap.String("vehicleClassId", ct.class.ID),
			zap.String("vehicleClassName", ct.class.Name),
		)
	}

	price := utils.RoundMoney(result.price)
	currency := result.currency
	if currency == "" {
		currency = DefaultCurrency()
	}
	if req.Currency != "" && !strings.EqualFold(req.Currency, currency) {
		// Display conversion only; misconfigured rates leave the tariff
		// currency in place rather than failing the quote.
		if converted, err := utils.ConvertCurrency(price, currency, req.Currency); err == nil {
			price = converted
			currency = strings.ToUpper(req.Currency)
		}
	}

	return models.Quote{
		VehicleClassID:   ct.class.ID,
		VehicleClassName: ct.class.Name,
		MaxPassengers:    ct.class.MaxPassengers,
		MaxLuggage:       ct.class.MaxLuggage,
		Price:            price,
		Currency:         currency,
		Source:           source,
		EstimatedMinutes: estimateMinutes(req.DistanceKm),
	}
}

// priceForClass runs the tier chain in order; the first tier to produce a
// price wins and the tiers below it are never consulted.
func priceForClass(req models.QuoteRequest, ct classTariffs) (tierResult, string) {
	for _, tier := range quoteTiers {
		if result, ok := tier.apply(req, ct); ok {
			return result, tier.source
		}
	}
	// The default tier is total, so the chain cannot end empty.
	result, _ := defaultTier(req, ct)
	return result, models.QuoteSourceDefault
}

// estimateMinutes is a placeholder duration heuristic, not a routed ETA.
func estimateMinutes(distanceKm float64) int {
	return int(math.Round(distanceKm * 2))
}

// DefaultCurrency is the currency applied when no tariff names one.
func DefaultCurrency() string {
	if c := config.AppConfig.DefaultCurrency; c != "" {
		return c
	}
	return "GBP"
}

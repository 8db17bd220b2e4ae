// File: database/repository/tariff/interface.go
package tariffRepo

import (
	"voyago/models"
)

// TariffRepository defines data access for the pricing reference data:
// vehicle classes, pricing schemes, fixed routes, text routes and rate cards.
type TariffRepository interface {
	// CreateVehicleClass inserts a new vehicle class record.
	CreateVehicleClass(vc *models.VehicleClass) error
	// UpdateVehicleClass modifies an existing vehicle class record.
	UpdateVehicleClass(vc *models.VehicleClass) error
	// DeleteVehicleClass removes a vehicle class record by its ID.
	DeleteVehicleClass(id string) error
	// GetVehicleClassByID retrieves a vehicle class by its unique ID.
	GetVehicleClassByID(id string) (*models.VehicleClass, error)
	// ListVehicleClasses retrieves vehicle classes, active ones only when
	// activeOnly is set, sorted by display order.
	ListVehicleClasses(activeOnly bool) ([]models.VehicleClass, error)

	// CreatePricingScheme inserts a new pricing scheme record.
	CreatePricingScheme(ps *models.PricingScheme) error
	// UpdatePricingScheme modifies an existing pricing scheme record.
	UpdatePricingScheme(ps *models.PricingScheme) error
	// DeletePricingScheme removes a pricing scheme record by its ID.
	DeletePricingScheme(id string) error
	// GetPricingSchemeByID retrieves a pricing scheme by its unique ID.
	GetPricingSchemeByID(id string) (*models.PricingScheme, error)
	// GetSchemeForClass retrieves the active pricing scheme for a vehicle class.
	// Returns nil without error when the class has no active scheme.
	GetSchemeForClass(vehicleClassID string) (*models.PricingScheme, error)

	// CreateFixedRoute inserts a new fixed route record.
	CreateFixedRoute(fr *models.FixedRoute) error
	// UpdateFixedRoute modifies an existing fixed route record.
	UpdateFixedRoute(fr *models.FixedRoute) error
	// DeleteFixedRoute removes a fixed route record by its ID.
	DeleteFixedRoute(id string) error
	// GetFixedRouteByID retrieves a fixed route by its unique ID.
	GetFixedRouteByID(id string) (*models.FixedRoute, error)
	// ListFixedRoutesForClass retrieves the active fixed routes priced for a
	// vehicle class, ordered by priority descending then creation time.
	ListFixedRoutesForClass(vehicleClassID string) ([]models.FixedRoute, error)

	// CreateTextRoute inserts a new text route record.
	CreateTextRoute(tr *models.TextRoute) error
	// UpdateTextRoute modifies an existing text route record.
	UpdateTextRoute(tr *models.TextRoute) error
	// DeleteTextRoute removes a text route record by its ID.
	DeleteTextRoute(id string) error
	// GetTextRouteByID retrieves a text route by its unique ID.
	GetTextRouteByID(id string) (*models.TextRoute, error)
	// ListActiveTextRoutes retrieves all active text routes.
	ListActiveTextRoutes() ([]models.TextRoute, error)

	// CreateRateCard inserts a new rate card record.
	CreateRateCard(rc *models.RateCard) error
	// UpdateRateCard modifies an existing rate card record.
	UpdateRateCard(rc *models.RateCard) error
	// DeleteRateCard removes a rate card record by its ID.
	DeleteRateCard(id string) error
	// GetRateCardByID retrieves a rate card by its unique ID.
	GetRateCardByID(id string) (*models.RateCard, error)
	// GetRateCardForClass retrieves the active rate card for a vehicle class.
	// Returns nil without error when the class has no active rate card.
	GetRateCardForClass(vehicleClassID string) (*models.RateCard, error)
}

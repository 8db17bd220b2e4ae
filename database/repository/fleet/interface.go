package fleetRepo

import (
	"voyago/models"
)

// FleetRepository defines data access for operator entities: fleet companies
// and directly-contracted drivers.
type FleetRepository interface {
	// CreateFleet inserts a new fleet record.
	CreateFleet(fleet *models.Fleet) error
	// UpdateFleet modifies an existing fleet record.
	UpdateFleet(fleet *models.Fleet) error
	// DeleteFleet removes a fleet record by its ID.
	DeleteFleet(id string) error
	// GetFleetByID retrieves a fleet by its unique ID.
	GetFleetByID(id string) (*models.Fleet, error)
	// ListFleets retrieves fleets, active ones only when activeOnly is set.
	ListFleets(activeOnly bool) ([]models.Fleet, error)

	// CreateDriver inserts a new driver record.
	CreateDriver(driver *models.Driver) error
	// UpdateDriver modifies an existing driver record.
	UpdateDriver(driver *models.Driver) error
	// DeleteDriver removes a driver record by its ID.
	DeleteDriver(id string) error
	// GetDriverByID retrieves a driver by its unique ID.
	GetDriverByID(id string) (*models.Driver, error)
	// ListDrivers retrieves drivers, optionally scoped to one fleet.
	ListDrivers(fleetID string, activeOnly bool) ([]models.Driver, error)
}

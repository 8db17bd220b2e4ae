package fleetRepo

import (
	"fmt"
	"time"

	"voyago/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateDriver inserts a new driver document.
func (r *MongoFleetRepo) CreateDriver(driver *models.Driver) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	driver.CreatedAt = now
	driver.UpdatedAt = now

	if _, err := r.drivers.InsertOne(ctx, driver); err != nil {
		return fmt.Errorf("failed to create driver: %w", err)
	}
	return nil
}

// UpdateDriver modifies an existing driver document.
func (r *MongoFleetRepo) UpdateDriver(driver *models.Driver) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	driver.UpdatedAt = time.Now()
	result, err := r.drivers.UpdateOne(ctx, bson.M{"id": driver.ID}, bson.M{"$set": driver})
	if err != nil {
		return fmt.Errorf("failed to update driver with id %s: %w", driver.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("driver with id %s not found", driver.ID)
	}
	return nil
}

// DeleteDriver removes a driver document by its ID.
func (r *MongoFleetRepo) DeleteDriver(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.drivers.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete driver with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("driver with id %s not found", id)
	}
	return nil
}

// GetDriverByID retrieves a driver by its unique ID.
func (r *MongoFleetRepo) GetDriverByID(id string) (*models.Driver, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var driver models.Driver
	if err := r.drivers.FindOne(ctx, bson.M{"id": id}).Decode(&driver); err != nil {
		return nil, fmt.Errorf("failed to fetch driver with id %s: %w", id, err)
	}
	return &driver, nil
}

// ListDrivers retrieves drivers sorted by name, optionally scoped to a fleet.
func (r *MongoFleetRepo) ListDrivers(fleetID string, activeOnly bool) ([]models.Driver, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{}
	if fleetID != "" {
		filter["fleetId"] = fleetID
	}
	if activeOnly {
		filter["active"] = true
	}
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})

	cursor, err := r.drivers.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve drivers: %w", err)
	}
	defer cursor.Close(ctx)

	var drivers []models.Driver
	for cursor.Next(ctx) {
		var d models.Driver
		if err := cursor.Decode(&d); err != nil {
			return nil, fmt.Errorf("failed to decode driver: %w", err)
		}
		drivers = append(drivers, d)
	}
	return drivers, nil
}

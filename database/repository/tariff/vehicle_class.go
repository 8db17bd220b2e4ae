package tariffRepo

import (
	"fmt"
	"time"

	"voyago/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateVehicleClass inserts a new vehicle class document.
func (r *MongoTariffRepo) CreateVehicleClass(vc *models.VehicleClass) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	vc.CreatedAt = now
	vc.UpdatedAt = now

	if _, err := r.classes.InsertOne(ctx, vc); err != nil {
		return fmt.Errorf("failed to create vehicle class: %w", err)
	}
	return nil
}

// UpdateVehicleClass modifies an existing vehicle class document.
func (r *MongoTariffRepo) UpdateVehicleClass(vc *models.VehicleClass) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	vc.UpdatedAt = time.Now()
	result, err := r.classes.UpdateOne(ctx, bson.M{"id": vc.ID}, bson.M{"$set": vc})
	if err != nil {
		return fmt.Errorf("failed to update vehicle class with id %s: %w", vc.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("vehicle class with id %s not found", vc.ID)
	}
	return nil
}

// DeleteVehicleClass removes a vehicle class document by its ID.
func (r *MongoTariffRepo) DeleteVehicleClass(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.classes.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete vehicle class with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("vehicle class with id %s not found", id)
	}
	return nil
}

// GetVehicleClassByID retrieves a vehicle class by its unique ID.
func (r *MongoTariffRepo) GetVehicleClassByID(id string) (*models.VehicleClass, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var vc models.VehicleClass
	if err := r.classes.FindOne(ctx, bson.M{"id": id}).Decode(&vc); err != nil {
		return nil, fmt.Errorf("failed to fetch vehicle class with id %s: %w", id, err)
	}
	return &vc, nil
}

// ListVehicleClasses retrieves vehicle classes sorted by display order.
func (r *MongoTariffRepo) ListVehicleClasses(activeOnly bool) ([]models.VehicleClass, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{}
	if activeOnly {
		filter["active"] = true
	}
	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}})

	cursor, err := r.classes.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve vehicle classes: %w", err)
	}
	defer cursor.Close(ctx)

	var classes []models.VehicleClass
	for cursor.Next(ctx) {
		var vc models.VehicleClass
		if err := cursor.Decode(&vc); err != nil {
			return nil, fmt.Errorf("failed to decode vehicle class: %w", err)
		}
		classes = append(classes, vc)
	}
	return classes, nil
}

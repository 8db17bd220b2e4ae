package tariffRepo

import (
	"fmt"
	"time"

	"voyago/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateFixedRoute inserts a new fixed route document.
func (r *MongoTariffRepo) CreateFixedRoute(fr *models.FixedRoute) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	fr.CreatedAt = time.Now()
	if _, err := r.fixed.InsertOne(ctx, fr); err != nil {
		return fmt.Errorf("failed to create fixed route: %w", err)
	}
	return nil
}

// UpdateFixedRoute modifies an existing fixed route document.
func (r *MongoTariffRepo) UpdateFixedRoute(fr *models.FixedRoute) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.fixed.UpdateOne(ctx, bson.M{"id": fr.ID}, bson.M{"$set": fr})
	if err != nil {
		return fmt.Errorf("failed to update fixed route with id %s: %w", fr.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("fixed route with id %s not found", fr.ID)
	}
	return nil
}

// DeleteFixedRoute removes a fixed route document by its ID.
func (r *MongoTariffRepo) DeleteFixedRoute(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.fixed.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete fixed route with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("fixed route with id %s not found", id)
	}
	return nil
}

// GetFixedRouteByID retrieves a fixed route by its unique ID.
func (r *MongoTariffRepo) GetFixedRouteByID(id string) (*models.FixedRoute, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var fr models.FixedRoute
	if err := r.fixed.FindOne(ctx, bson.M{"id": id}).Decode(&fr); err != nil {
		return nil, fmt.Errorf("failed to fetch fixed route with id %s: %w", id, err)
	}
	return &fr, nil
}

// ListFixedRoutesForClass retrieves active fixed routes for a vehicle class,
// highest priority first. Ties keep insertion order so matching is stable.
func (r *MongoTariffRepo) ListFixedRoutesForClass(vehicleClassID string) ([]models.FixedRoute, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{"vehicleClassId": vehicleClassID, "active": true}
	opts := options.Find().SetSort(bson.D{
		{Key: "priority", Value: -1},
		{Key: "createdAt", Value: 1},
	})

	cursor, err := r.fixed.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve fixed routes: %w", err)
	}
	defer cursor.Close(ctx)

	var routes []models.FixedRoute
	for cursor.Next(ctx) {
		var fr models.FixedRoute
		if err := cursor.Decode(&fr); err != nil {
			return nil, fmt.Errorf("failed to decode fixed route: %w", err)
		}
		routes = append(routes, fr)
	}
	return routes, nil
}

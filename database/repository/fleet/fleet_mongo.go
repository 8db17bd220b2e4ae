package fleetRepo

import (
	"context"
	"fmt"
	"time"

	"voyago/database"
	"voyago/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoFleetRepo implements FleetRepository using MongoDB. Fleets and
// drivers live in separate collections.
type MongoFleetRepo struct {
	fleets  *mongo.Collection
	drivers *mongo.Collection
}

// NewMongoFleetRepo creates a new instance of FleetRepository using MongoDB.
func NewMongoFleetRepo() FleetRepository {
	repo := &MongoFleetRepo{
		fleets:  database.Collection("fleets"),
		drivers: database.Collection("drivers"),
	}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create fleet indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoFleetRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	if _, err := r.fleets.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	}); err != nil {
		return fmt.Errorf("failed to create fleet indexes: %w", err)
	}

	if _, err := r.drivers.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "fleetId", Value: 1}, {Key: "active", Value: 1}}},
	}); err != nil {
		return fmt.Errorf("failed to create driver indexes: %w", err)
	}
	return nil
}

// CreateFleet inserts a new fleet document.
func (r *MongoFleetRepo) CreateFleet(fleet *models.Fleet) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	fleet.CreatedAt = now
	fleet.UpdatedAt = now

	if _, err := r.fleets.InsertOne(ctx, fleet); err != nil {
		return fmt.Errorf("failed to create fleet: %w", err)
	}
	return nil
}

// UpdateFleet modifies an existing fleet document.
func (r *MongoFleetRepo) UpdateFleet(fleet *models.Fleet) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	fleet.UpdatedAt = time.Now()
	result, err := r.fleets.UpdateOne(ctx, bson.M{"id": fleet.ID}, bson.M{"$set": fleet})
	if err != nil {
		return fmt.Errorf("failed to update fleet with id %s: %w", fleet.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("fleet with id %s not found", fleet.ID)
	}
	return nil
}

// DeleteFleet removes a fleet document by its ID.
func (r *MongoFleetRepo) DeleteFleet(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.fleets.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete fleet with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("fleet with id %s not found", id)
	}
	return nil
}

// GetFleetByID retrieves a fleet by its unique ID.
func (r *MongoFleetRepo) GetFleetByID(id string) (*models.Fleet, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var fleet models.Fleet
	if err := r.fleets.FindOne(ctx, bson.M{"id": id}).Decode(&fleet); err != nil {
		return nil, fmt.Errorf("failed to fetch fleet with id %s: %w", id, err)
	}
	return &fleet, nil
}

// ListFleets retrieves fleets sorted by name.
func (r *MongoFleetRepo) ListFleets(activeOnly bool) ([]models.Fleet, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{}
	if activeOnly {
		filter["active"] = true
	}
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})

	cursor, err := r.fleets.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve fleets: %w", err)
	}
	defer cursor.Close(ctx)

	var fleets []models.Fleet
	for cursor.Next(ctx) {
		var f models.Fleet
		if err := cursor.Decode(&f); err != nil {
			return nil, fmt.Errorf("failed to decode fleet: %w", err)
		}
		fleets = append(fleets, f)
	}
	return fleets, nil
}

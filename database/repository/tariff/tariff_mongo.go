// File: database/repository/tariff/tariff_mongo.go
package tariffRepo

import (
	"context"
	"fmt"
	"time"

	"voyago/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoTariffRepo implements TariffRepository using MongoDB. Each reference
// entity lives in its own collection.
type MongoTariffRepo struct {
	classes   *mongo.Collection
	schemes   *mongo.Collection
	fixed     *mongo.Collection
	text      *mongo.Collection
	rateCards *mongo.Collection
}

// NewMongoTariffRepo creates a new instance of TariffRepository using MongoDB.
func NewMongoTariffRepo() TariffRepository {
	repo := &MongoTariffRepo{
		classes:   database.Collection("vehicle_classes"),
		schemes:   database.Collection("pricing_schemes"),
		fixed:     database.Collection("fixed_routes"),
		text:      database.Collection("text_routes"),
		rateCards: database.Collection("rate_cards"),
	}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create tariff indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoTariffRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	if _, err := r.classes.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "order", Value: 1}}},
	}); err != nil {
		return fmt.Errorf("failed to create vehicle class indexes: %w", err)
	}

	if _, err := r.schemes.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "vehicleClassId", Value: 1}, {Key: "active", Value: 1}}},
	}); err != nil {
		return fmt.Errorf("failed to create pricing scheme indexes: %w", err)
	}

	if _, err := r.fixed.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "vehicleClassId", Value: 1}, {Key: "active", Value: 1}, {Key: "priority", Value: -1}}},
	}); err != nil {
		return fmt.Errorf("failed to create fixed route indexes: %w", err)
	}

	if _, err := r.text.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "active", Value: 1}}},
	}); err != nil {
		return fmt.Errorf("failed to create text route indexes: %w", err)
	}

	if _, err := r.rateCards.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "vehicleClassId", Value: 1}, {Key: "active", Value: 1}}},
	}); err != nil {
		return fmt.Errorf("failed to create rate card indexes: %w", err)
	}
	return nil
}

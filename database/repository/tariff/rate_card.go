package tariffRepo

import (
	"fmt"
	"time"

	"voyago/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// CreateRateCard inserts a new rate card document.
func (r *MongoTariffRepo) CreateRateCard(rc *models.RateCard) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	rc.UpdatedAt = time.Now()
	if _, err := r.rateCards.InsertOne(ctx, rc); err != nil {
		return fmt.Errorf("failed to create rate card: %w", err)
	}
	return nil
}

// UpdateRateCard modifies an existing rate card document.
func (r *MongoTariffRepo) UpdateRateCard(rc *models.RateCard) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	rc.UpdatedAt = time.Now()
	result, err := r.rateCards.UpdateOne(ctx, bson.M{"id": rc.ID}, bson.M{"$set": rc})
	if err != nil {
		return fmt.Errorf("failed to update rate card with id %s: %w", rc.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("rate card with id %s not found", rc.ID)
	}
	return nil
}

// DeleteRateCard removes a rate card document by its ID.
func (r *MongoTariffRepo) DeleteRateCard(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.rateCards.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete rate card with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("rate card with id %s not found", id)
	}
	return nil
}

// GetRateCardByID retrieves a rate card by its unique ID.
func (r *MongoTariffRepo) GetRateCardByID(id string) (*models.RateCard, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var rc models.RateCard
	if err := r.rateCards.FindOne(ctx, bson.M{"id": id}).Decode(&rc); err != nil {
		return nil, fmt.Errorf("failed to fetch rate card with id %s: %w", id, err)
	}
	return &rc, nil
}

// GetRateCardForClass retrieves the active rate card for a vehicle class.
func (r *MongoTariffRepo) GetRateCardForClass(vehicleClassID string) (*models.RateCard, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"vehicleClassId": vehicleClassID, "active": true}
	var rc models.RateCard
	if err := r.rateCards.FindOne(ctx, filter).Decode(&rc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch rate card for class %s: %w", vehicleClassID, err)
	}
	return &rc, nil
}

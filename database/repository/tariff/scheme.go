package tariffRepo

import (
	"fmt"
	"time"

	"voyago/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// CreatePricingScheme inserts a new pricing scheme document.
func (r *MongoTariffRepo) CreatePricingScheme(ps *models.PricingScheme) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	ps.UpdatedAt = time.Now()
	if _, err := r.schemes.InsertOne(ctx, ps); err != nil {
		return fmt.Errorf("failed to create pricing scheme: %w", err)
	}
	return nil
}

// UpdatePricingScheme modifies an existing pricing scheme document.
func (r *MongoTariffRepo) UpdatePricingScheme(ps *models.PricingScheme) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	ps.UpdatedAt = time.Now()
	result, err := r.schemes.UpdateOne(ctx, bson.M{"id": ps.ID}, bson.M{"$set": ps})
	if err != nil {
		return fmt.Errorf("failed to update pricing scheme with id %s: %w", ps.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("pricing scheme with id %s not found", ps.ID)
	}
	return nil
}

// DeletePricingScheme removes a pricing scheme document by its ID.
func (r *MongoTariffRepo) DeletePricingScheme(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.schemes.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete pricing scheme with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("pricing scheme with id %s not found", id)
	}
	return nil
}

// GetPricingSchemeByID retrieves a pricing scheme by its unique ID.
func (r *MongoTariffRepo) GetPricingSchemeByID(id string) (*models.PricingScheme, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var ps models.PricingScheme
	if err := r.schemes.FindOne(ctx, bson.M{"id": id}).Decode(&ps); err != nil {
		return nil, fmt.Errorf("failed to fetch pricing scheme with id %s: %w", id, err)
	}
	return &ps, nil
}

// GetSchemeForClass retrieves the active pricing scheme for a vehicle class.
func (r *MongoTariffRepo) GetSchemeForClass(vehicleClassID string) (*models.PricingScheme, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"vehicleClassId": vehicleClassID, "active": true}
	var ps models.PricingScheme
	if err := r.schemes.FindOne(ctx, filter).Decode(&ps); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch pricing scheme for class %s: %w", vehicleClassID, err)
	}
	return &ps, nil
}

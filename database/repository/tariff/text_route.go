package tariffRepo

import (
	"fmt"
	"time"

	"voyago/models"

	"go.mongodb.org/mongo-driver/bson"
)

// CreateTextRoute inserts a new text route document.
func (r *MongoTariffRepo) CreateTextRoute(tr *models.TextRoute) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	tr.CreatedAt = time.Now()
	if _, err := r.text.InsertOne(ctx, tr); err != nil {
		return fmt.Errorf("failed to create text route: %w", err)
	}
	return nil
}

// UpdateTextRoute modifies an existing text route document.
func (r *MongoTariffRepo) UpdateTextRoute(tr *models.TextRoute) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.text.UpdateOne(ctx, bson.M{"id": tr.ID}, bson.M{"$set": tr})
	if err != nil {
		return fmt.Errorf("failed to update text route with id %s: %w", tr.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("text route with id %s not found", tr.ID)
	}
	return nil
}

// DeleteTextRoute removes a text route document by its ID.
func (r *MongoTariffRepo) DeleteTextRoute(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.text.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete text route with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("text route with id %s not found", id)
	}
	return nil
}

// GetTextRouteByID retrieves a text route by its unique ID.
func (r *MongoTariffRepo) GetTextRouteByID(id string) (*models.TextRoute, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var tr models.TextRoute
	if err := r.text.FindOne(ctx, bson.M{"id": id}).Decode(&tr); err != nil {
		return nil, fmt.Errorf("failed to fetch text route with id %s: %w", id, err)
	}
	return &tr, nil
}

// ListActiveTextRoutes retrieves all active text routes. Matching against a
// request's pickup and dropoff text happens in the pricing service where the
// case-insensitive and reverse-direction rules live.
func (r *MongoTariffRepo) ListActiveTextRoutes() ([]models.TextRoute, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.text.Find(ctx, bson.M{"active": true})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve text routes: %w", err)
	}
	defer cursor.Close(ctx)

	var routes []models.TextRoute
	for cursor.Next(ctx) {
		var tr models.TextRoute
		if err := cursor.Decode(&tr); err != nil {
			return nil, fmt.Errorf("failed to decode text route: %w", err)
		}
		routes = append(routes, tr)
	}
	return routes, nil
}

// File: database/repository/booking/updates.go
package bookingRepo

import (
	"fmt"
	"time"

	"voyago/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// UpdateStatus transitions a booking between statuses as a conditional
// single-document update. The filter carries the expected current status so
// two concurrent transitions cannot both win.
func (r *MongoBookingRepo) UpdateStatus(id, from, to string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id, "status": from}
	update := bson.M{"$set": bson.M{"status": to, "updatedAt": time.Now()}}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update status for booking %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		count, err := r.coll.CountDocuments(ctx, bson.M{"id": id})
		if err != nil {
			return fmt.Errorf("failed to update status for booking %s: %w", id, err)
		}
		if count == 0 {
			return fmt.Errorf("booking with id %s: %w", id, ErrNotFound)
		}
		return ErrStatusConflict
	}
	return nil
}

// ApplyPricing writes the full derived pricing state in one atomic $set.
// Prices, extras and profit always travel together so a concurrent reader
// never observes a profit computed from different inputs than the ones
// stored beside it.
func (r *MongoBookingRepo) ApplyPricing(id string, update PricingUpdate) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if update.Extras == nil {
		update.Extras = []models.BookingExtra{}
	}

	set := bson.M{
		"customerPrice": update.CustomerPrice,
		"driverPrice":   update.DriverPrice,
		"extras":        update.Extras,
		"extrasTotal":   update.ExtrasTotal,
		"profit":        update.Profit,
		"updatedAt":     time.Now(),
	}
	if update.SetFleetID != nil {
		set["fleetId"] = *update.SetFleetID
	}
	if update.SetDriverID != nil {
		set["driverId"] = *update.SetDriverID
	}

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to apply pricing to booking %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("booking with id %s: %w", id, ErrNotFound)
	}
	return nil
}

// MarkInvoiced sets the invoice reference of the given type only when it is
// still unset, enforcing at most one invoice of each type per booking.
func (r *MongoBookingRepo) MarkInvoiced(id, invoiceType, invoiceID string) error {
	refField := models.InvoiceRefField(invoiceType)
	if refField == "" {
		return fmt.Errorf("invoice type %q does not claim bookings", invoiceType)
	}

	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"id": id,
		"$or": []bson.M{
			{refField: bson.M{"$exists": false}},
			{refField: ""},
		},
	}
	update := bson.M{"$set": bson.M{refField: invoiceID, "updatedAt": time.Now()}}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to mark booking %s invoiced: %w", id, err)
	}
	if result.MatchedCount == 0 {
		count, err := r.coll.CountDocuments(ctx, bson.M{"id": id})
		if err != nil {
			return fmt.Errorf("failed to mark booking %s invoiced: %w", id, err)
		}
		if count == 0 {
			return fmt.Errorf("booking with id %s: %w", id, ErrNotFound)
		}
		return ErrAlreadyInvoiced
	}
	return nil
}

// ClearInvoiceRef removes the invoice reference of the given type, releasing
// the booking for future invoicing. Used when an invoice is voided.
func (r *MongoBookingRepo) ClearInvoiceRef(id, invoiceType string) error {
	refField := models.InvoiceRefField(invoiceType)
	if refField == "" {
		return fmt.Errorf("invoice type %q does not claim bookings", invoiceType)
	}

	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{
		"$unset": bson.M{refField: ""},
		"$set":   bson.M{"updatedAt": time.Now()},
	}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to clear invoice ref on booking %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("booking with id %s: %w", id, ErrNotFound)
	}
	return nil
}

// NextReference reserves the next human-facing booking reference from the
// shared counters collection.
func (r *MongoBookingRepo) NextReference() (string, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var doc struct {
		Seq int64 `bson:"seq"`
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	err := r.counters.FindOneAndUpdate(ctx,
		bson.M{"_id": "booking_reference"},
		bson.M{"$inc": bson.M{"seq": 1}},
		opts,
	).Decode(&doc)
	if err != nil {
		return "", fmt.Errorf("failed to reserve booking reference: %w", err)
	}
	return fmt.Sprintf("VY-%d", 100000+doc.Seq), nil
}

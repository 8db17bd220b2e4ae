// File: database/repository/booking/queries.go
package bookingRepo

import (
	"fmt"
	"time"

	"voyago/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// findBookings runs a filtered find, newest pickup first.
func (r *MongoBookingRepo) findBookings(filter bson.M) ([]models.Booking, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "pickupAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	for cursor.Next(ctx) {
		var b models.Booking
		if err := cursor.Decode(&b); err != nil {
			return nil, fmt.Errorf("failed to decode booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	return bookings, nil
}

// ListByCustomer retrieves bookings for a customer, newest first.
func (r *MongoBookingRepo) ListByCustomer(customerID string) ([]models.Booking, error) {
	return r.findBookings(bson.M{"customerId": customerID})
}

// ListByFleet retrieves bookings assigned to a fleet, newest first.
func (r *MongoBookingRepo) ListByFleet(fleetID string) ([]models.Booking, error) {
	return r.findBookings(bson.M{"fleetId": fleetID})
}

// ListByDriver retrieves bookings assigned to a driver, newest first.
func (r *MongoBookingRepo) ListByDriver(driverID string) ([]models.Booking, error) {
	return r.findBookings(bson.M{"driverId": driverID})
}

// ListUninvoiced retrieves completed bookings for an entity that do not yet
// carry an invoice reference of the given type.
func (r *MongoBookingRepo) ListUninvoiced(invoiceType, entityID string) ([]models.Booking, error) {
	refField := models.InvoiceRefField(invoiceType)
	if refField == "" {
		return nil, fmt.Errorf("invoice type %q does not claim bookings", invoiceType)
	}

	var entityField string
	switch invoiceType {
	case models.InvoiceTypeCustomer:
		entityField = "customerId"
	case models.InvoiceTypeFleet:
		entityField = "fleetId"
	case models.InvoiceTypeDriver:
		entityField = "driverId"
	}

	filter := bson.M{
		entityField: entityID,
		"status":    models.BookingStatusCompleted,
		"$or": []bson.M{
			{refField: bson.M{"$exists": false}},
			{refField: ""},
		},
	}
	return r.findBookings(filter)
}

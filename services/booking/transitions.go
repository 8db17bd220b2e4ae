package booking

import "voyago/models"

// allowedTransitions is the booking lifecycle: pending jobs are confirmed or
// cancelled, confirmed jobs run to completion or get cancelled, and the two
// terminal states allow nothing further. Invoicing only ever sees completed
// bookings.
var allowedTransitions = map[string][]string{
	models.BookingStatusPending:   {models.BookingStatusConfirmed, models.BookingStatusCancelled},
	models.BookingStatusConfirmed: {models.BookingStatusCompleted, models.BookingStatusCancelled},
	models.BookingStatusCompleted: {},
	models.BookingStatusCancelled: {},
}

// CanTransition reports whether a booking may move from one status to
// another. Unknown statuses allow nothing.
func CanTransition(from, to string) bool {
	for _, allowed := range allowedTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

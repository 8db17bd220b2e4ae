// File: handlers/bundle.go
package handlers

import (
	adminRepo "voyago/database/repository/admin"
)

// HandlerBundle groups all endpoint handlers into one struct, along with the
// admin repository the auth middleware checks tokens against.
type HandlerBundle struct {
	AdminRepo adminRepo.AdminRepository

	Quote         *QuoteHandler
	AdminAuth     *AdminAuthHandler
	Bookings      *BookingHandler
	Invoices      *InvoiceHandler
	Tariffs       *TariffHandler
	Fleets        *FleetHandler
	Customers     *CustomerHandler
	Notifications *NotificationHandler
}

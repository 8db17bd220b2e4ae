package handlers

import (
	"errors"
	"net/http"

	bookingRepo "voyago/database/repository/booking"
	"voyago/models"
	"voyago/services/booking"
	"voyago/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the transfer booking lifecycle endpoints.
type BookingHandler struct {
	BookingService booking.BookingService
}

// CreateBookingHandler handles POST /api/bookings. Unpriced requests are
// priced on creation from the current tariffs.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var input models.BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		logger.Error("Invalid booking request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	created, err := h.BookingService.Create(input)
	if err != nil {
		logger.Error("Booking creation failed", zap.Error(err))
		c.JSON(bookingErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetBookingByIDHandler handles GET /api/bookings/id/:id.
func (h *BookingHandler) GetBookingByIDHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")

	bk, err := h.BookingService.GetByID(id)
	if err != nil {
		logger.Error("Booking not found", zap.String("id", id), zap.Error(err))
		c.JSON(bookingErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, bk)
}

// GetBookingByReferenceHandler handles GET /api/bookings/reference/:reference.
func (h *BookingHandler) GetBookingByReferenceHandler(c *gin.Context) {
	logger := utils.GetLogger()
	reference := c.Param("reference")

	bk, err := h.BookingService.GetByReference(reference)
	if err != nil {
		logger.Error("Booking not found by reference", zap.String("reference", reference), zap.Error(err))
		c.JSON(bookingErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, bk)
}

// ListBookingsHandler handles GET /api/bookings. Exactly one of the
// customerId, fleetId or driverId query parameters scopes the listing.
func (h *BookingHandler) ListBookingsHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var (
		bookings []models.Booking
		err      error
	)
	switch {
	case c.Query("customerId") != "":
		bookings, err = h.BookingService.ListByCustomer(c.Query("customerId"))
	case c.Query("fleetId") != "":
		bookings, err = h.BookingService.ListByFleet(c.Query("fleetId"))
	case c.Query("driverId") != "":
		bookings, err = h.BookingService.ListByDriver(c.Query("driverId"))
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "one of customerId, fleetId or driverId is required"})
		return
	}
	if err != nil {
		logger.Error("Booking listing failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings, "count": len(bookings)})
}

// UpdateBookingPricingHandler handles PUT /api/bookings/:id/pricing. Both
// prices travel together so the margin breakdown is never computed from a
// half-updated pair.
func (h *BookingHandler) UpdateBookingPricingHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")

	var req struct {
		CustomerPrice float64               `json:"customerPrice" binding:"required"`
		DriverPrice   float64               `json:"driverPrice" binding:"required"`
		Extras        []models.BookingExtra `json:"extras,omitempty"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid pricing update request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	updated, err := h.BookingService.UpdatePricing(id, req.CustomerPrice, req.DriverPrice, req.Extras)
	if err != nil {
		logger.Error("Pricing update failed", zap.String("id", id), zap.Error(err))
		c.JSON(bookingErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// AssignFleetHandler handles PUT /api/bookings/:id/assign-fleet.
func (h *BookingHandler) AssignFleetHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")

	var req struct {
		FleetID     string   `json:"fleetId" binding:"required"`
		DriverPrice *float64 `json:"driverPrice,omitempty"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid fleet assignment request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	updated, err := h.BookingService.AssignFleet(id, req.FleetID, req.DriverPrice)
	if err != nil {
		logger.Error("Fleet assignment failed", zap.String("id", id), zap.Error(err))
		c.JSON(bookingErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// AssignDriverHandler handles PUT /api/bookings/:id/assign-driver.
func (h *BookingHandler) AssignDriverHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")

	var req struct {
		DriverID    string   `json:"driverId" binding:"required"`
		DriverPrice *float64 `json:"driverPrice,omitempty"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid driver assignment request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	updated, err := h.BookingService.AssignDriver(id, req.DriverID, req.DriverPrice)
	if err != nil {
		logger.Error("Driver assignment failed", zap.String("id", id), zap.Error(err))
		c.JSON(bookingErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// UpdateBookingStatusHandler handles PUT /api/bookings/:id/status.
func (h *BookingHandler) UpdateBookingStatusHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid status update request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	updated, err := h.BookingService.UpdateStatus(id, req.Status)
	if err != nil {
		logger.Error("Status update failed", zap.String("id", id), zap.String("to", req.Status), zap.Error(err))
		c.JSON(bookingErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteBookingHandler handles DELETE /api/bookings/:id.
func (h *BookingHandler) DeleteBookingHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")

	if err := h.BookingService.Delete(id); err != nil {
		logger.Error("Booking deletion failed", zap.String("id", id), zap.Error(err))
		c.JSON(bookingErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking deleted"})
}

// bookingErrorStatus maps booking service errors to HTTP status codes.
func bookingErrorStatus(err error) int {
	var (
		validationErr *booking.ValidationError
		transitionErr *booking.TransitionError
	)
	switch {
	case errors.Is(err, booking.ErrNotFound):
		return http.StatusNotFound
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.As(err, &transitionErr), errors.Is(err, bookingRepo.ErrStatusConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

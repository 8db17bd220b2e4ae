package handlers

import (
	"net/http"

	fleetRepo "voyago/database/repository/fleet"
	"voyago/models"
	"voyago/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// FleetHandler exposes admin CRUD over operator entities: fleet companies
// and their drivers, plus directly-contracted drivers.
type FleetHandler struct {
	Fleets fleetRepo.FleetRepository
}

// CreateFleetHandler handles POST /api/admin/fleets.
func (h *FleetHandler) CreateFleetHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var fleet models.Fleet
	if err := c.ShouldBindJSON(&fleet); err != nil {
		logger.Error("Invalid fleet payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if fleet.ID == "" {
		fleet.ID = uuid.New().String()
	}
	if err := h.Fleets.CreateFleet(&fleet); err != nil {
		logger.Error("Fleet creation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, fleet)
}

// UpdateFleetHandler handles PUT /api/admin/fleets/:id.
func (h *FleetHandler) UpdateFleetHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var fleet models.Fleet
	if err := c.ShouldBindJSON(&fleet); err != nil {
		logger.Error("Invalid fleet payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	fleet.ID = c.Param("id")
	if err := h.Fleets.UpdateFleet(&fleet); err != nil {
		logger.Error("Fleet update failed", zap.String("id", fleet.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, fleet)
}

// DeleteFleetHandler handles DELETE /api/admin/fleets/:id.
func (h *FleetHandler) DeleteFleetHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")

	if err := h.Fleets.DeleteFleet(id); err != nil {
		logger.Error("Fleet deletion failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Fleet deleted"})
}

// GetFleetHandler handles GET /api/admin/fleets/:id.
func (h *FleetHandler) GetFleetHandler(c *gin.Context) {
	id := c.Param("id")

	fleet, err := h.Fleets.GetFleetByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, fleet)
}

// ListFleetsHandler handles GET /api/admin/fleets.
func (h *FleetHandler) ListFleetsHandler(c *gin.Context) {
	logger := utils.GetLogger()
	activeOnly := c.Query("activeOnly") == "true"

	fleets, err := h.Fleets.ListFleets(activeOnly)
	if err != nil {
		logger.Error("Fleet listing failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"fleets": fleets, "count": len(fleets)})
}

// RegisterFleetDeviceHandler handles PUT /api/admin/fleets/:id/device. It
// records the FCM token push notifications for the fleet are sent to.
func (h *FleetHandler) RegisterFleetDeviceHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")

	var req struct {
		FCMToken string `json:"fcmToken" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	fleet, err := h.Fleets.GetFleetByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	fleet.FCMToken = req.FCMToken
	if err := h.Fleets.UpdateFleet(fleet); err != nil {
		logger.Error("Fleet device registration failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Device registered"})
}

// ---------------------------------------------------------------------------
// Drivers

// CreateDriverHandler handles POST /api/admin/drivers. A driver with no
// fleetId is a directly-contracted operator.
func (h *FleetHandler) CreateDriverHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var driver models.Driver
	if err := c.ShouldBindJSON(&driver); err != nil {
		logger.Error("Invalid driver payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if driver.FleetID != "" {
		if _, err := h.Fleets.GetFleetByID(driver.FleetID); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown fleet " + driver.FleetID})
			return
		}
	}
	if driver.ID == "" {
		driver.ID = uuid.New().String()
	}
	if err := h.Fleets.CreateDriver(&driver); err != nil {
		logger.Error("Driver creation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, driver)
}

// UpdateDriverHandler handles PUT /api/admin/drivers/:id.
func (h *FleetHandler) UpdateDriverHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var driver models.Driver
	if err := c.ShouldBindJSON(&driver); err != nil {
		logger.Error("Invalid driver payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	driver.ID = c.Param("id")
	if err := h.Fleets.UpdateDriver(&driver); err != nil {
		logger.Error("Driver update failed", zap.String("id", driver.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, driver)
}

// DeleteDriverHandler handles DELETE /api/admin/drivers/:id.
func (h *FleetHandler) DeleteDriverHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")

	if err := h.Fleets.DeleteDriver(id); err != nil {
		logger.Error("Driver deletion failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Driver deleted"})
}

// GetDriverHandler handles GET /api/admin/drivers/:id.
func (h *FleetHandler) GetDriverHandler(c *gin.Context) {
	id := c.Param("id")

	driver, err := h.Fleets.GetDriverByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, driver)
}

// ListDriversHandler handles GET /api/admin/drivers. Pass fleetId to scope
// the listing to one fleet's drivers.
func (h *FleetHandler) ListDriversHandler(c *gin.Context) {
	logger := utils.GetLogger()
	fleetID := c.Query("fleetId")
	activeOnly := c.Query("activeOnly") == "true"

	drivers, err := h.Fleets.ListDrivers(fleetID, activeOnly)
	if err != nil {
		logger.Error("Driver listing failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"drivers": drivers, "count": len(drivers)})
}

// RegisterDriverDeviceHandler handles PUT /api/admin/drivers/:id/device.
func (h *FleetHandler) RegisterDriverDeviceHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")

	var req struct {
		FCMToken string `json:"fcmToken" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	driver, err := h.Fleets.GetDriverByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	driver.FCMToken = req.FCMToken
	if err := h.Fleets.UpdateDriver(driver); err != nil {
		logger.Error("Driver device registration failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Device registered"})
}

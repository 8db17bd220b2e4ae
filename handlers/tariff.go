package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	tariffRepo "voyago/database/repository/tariff"
	"voyago/models"
	"voyago/services/storage"
	"voyago/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TariffHandler exposes admin CRUD over the pricing reference data: vehicle
// classes, pricing schemes, fixed routes, text routes and rate cards.
// Mutations here change what the quote engine returns on the next request;
// nothing is cached server-side beyond the short quote cache TTL.
type TariffHandler struct {
	Tariffs    tariffRepo.TariffRepository
	StorageSvc storage.StorageService
}

// ---------------------------------------------------------------------------
// Vehicle classes

// CreateVehicleClassHandler handles POST /api/admin/tariffs/vehicle-classes.
func (h *TariffHandler) CreateVehicleClassHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var vc models.VehicleClass
	if err := c.ShouldBindJSON(&vc); err != nil {
		logger.Error("Invalid vehicle class payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if vc.ID == "" {
		vc.ID = uuid.New().String()
	}
	if err := h.Tariffs.CreateVehicleClass(&vc); err != nil {
		logger.Error("Vehicle class creation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, vc)
}

// UpdateVehicleClassHandler handles PUT /api/admin/tariffs/vehicle-classes/:id.
func (h *TariffHandler) UpdateVehicleClassHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var vc models.VehicleClass
	if err := c.ShouldBindJSON(&vc); err != nil {
		logger.Error("Invalid vehicle class payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	vc.ID = c.Param("id")
	if err := h.Tariffs.UpdateVehicleClass(&vc); err != nil {
		logger.Error("Vehicle class update failed", zap.String("id", vc.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, vc)
}

// DeleteVehicleClassHandler handles DELETE /api/admin/tariffs/vehicle-classes/:id.
func (h *TariffHandler) DeleteVehicleClassHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")

	if err := h.Tariffs.DeleteVehicleClass(id); err != nil {
		logger.Error("Vehicle class deletion failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Vehicle class deleted"})
}

// GetVehicleClassHandler handles GET /api/admin/tariffs/vehicle-classes/:id.
func (h *TariffHandler) GetVehicleClassHandler(c *gin.Context) {
	id := c.Param("id")

	vc, err := h.Tariffs.GetVehicleClassByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, vc)
}

// ListVehicleClassesHandler handles GET /api/admin/tariffs/vehicle-classes.
// Pass activeOnly=true to hide retired classes.
func (h *TariffHandler) ListVehicleClassesHandler(c *gin.Context) {
	logger := utils.GetLogger()
	activeOnly := c.Query("activeOnly") == "true"

	classes, err := h.Tariffs.ListVehicleClasses(activeOnly)
	if err != nil {
		logger.Error("Vehicle class listing failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"vehicleClasses": classes, "count": len(classes)})
}

// UploadVehicleClassImageHandler handles PUT /api/admin/tariffs/vehicle-classes/:id/image.
// The uploaded image is stored in Cloudinary and its public ID recorded on
// the class.
func (h *TariffHandler) UploadVehicleClassImageHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")

	vc, err := h.Tariffs.GetVehicleClassByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file not provided", "detail": err.Error()})
		return
	}

	tempFilePath := filepath.Join(os.TempDir(), fileHeader.Filename)
	if err := c.SaveUploadedFile(fileHeader, tempFilePath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save file", "detail": err.Error()})
		return
	}
	defer os.Remove(tempFilePath)

	publicID, err := h.StorageSvc.UploadFile(c, tempFilePath, "vehicles/images")
	if err != nil {
		logger.Error("Vehicle class image upload failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload image", "detail": err.Error()})
		return
	}

	previousImageID := vc.ImageID
	vc.ImageID = publicID
	if err := h.Tariffs.UpdateVehicleClass(vc); err != nil {
		logger.Error("Failed to record image on vehicle class", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if previousImageID != "" && previousImageID != publicID {
		if err := h.StorageSvc.DeleteFile(c, previousImageID); err != nil {
			logger.Warn("Failed to remove replaced vehicle image",
				zap.String("imageId", previousImageID), zap.Error(err))
		}
	}

	downloadURL, err := h.StorageSvc.GetDownloadURL(c, "image", publicID)
	if err != nil {
		logger.Error("Failed to construct image URL", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"imageId": publicID, "downloadURL": downloadURL})
}

// ---------------------------------------------------------------------------
// Pricing schemes

// CreatePricingSchemeHandler handles POST /api/admin/tariffs/schemes.
func (h *TariffHandler) CreatePricingSchemeHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var ps models.PricingScheme
	if err := c.ShouldBindJSON(&ps); err != nil {
		logger.Error("Invalid pricing scheme payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if ps.ID == "" {
		ps.ID = uuid.New().String()
	}
	if err := h.Tariffs.CreatePricingScheme(&ps); err != nil {
		logger.Error("Pricing scheme creation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, ps)
}

// UpdatePricingSchemeHandler handles PUT /api/admin/tariffs/schemes/:id.
func (h *TariffHandler) UpdatePricingSchemeHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var ps models.PricingScheme
	if err := c.ShouldBindJSON(&ps); err != nil {
		logger.Error("Invalid pricing scheme payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	ps.ID = c.Param("id")
	if err := h.Tariffs.UpdatePricingScheme(&ps); err != nil {
		logger.Error("Pricing scheme update failed", zap.String("id", ps.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, ps)
}

// DeletePricingSchemeHandler handles DELETE /api/admin/tariffs/schemes/:id.
func (h *TariffHandler) DeletePricingSchemeHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")

	if err := h.Tariffs.DeletePricingScheme(id); err != nil {
		logger.Error("Pricing scheme deletion failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Pricing scheme deleted"})
}

// GetPricingSchemeHandler handles GET /api/admin/tariffs/schemes/:id.
func (h *TariffHandler) GetPricingSchemeHandler(c *gin.Context) {
	id := c.Param("id")

	ps, err := h.Tariffs.GetPricingSchemeByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, ps)
}

// GetSchemeForClassHandler handles GET /api/admin/tariffs/schemes/for-class/:classId.
func (h *TariffHandler) GetSchemeForClassHandler(c *gin.Context) {
	logger := utils.GetLogger()
	classID := c.Param("classId")

	ps, err := h.Tariffs.GetSchemeForClass(classID)
	if err != nil {
		logger.Error("Scheme lookup failed", zap.String("classId", classID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if ps == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no active scheme for vehicle class " + classID})
		return
	}
	c.JSON(http.StatusOK, ps)
}

// ---------------------------------------------------------------------------
// Fixed routes

// CreateFixedRouteHandler handles POST /api/admin/tariffs/fixed-routes.
func (h *TariffHandler) CreateFixedRouteHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var fr models.FixedRoute
	if err := c.ShouldBindJSON(&fr); err != nil {
		logger.Error("Invalid fixed route payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if fr.ID == "" {
		fr.ID = uuid.New().String()
	}
	if err := h.Tariffs.CreateFixedRoute(&fr); err != nil {
		logger.Error("Fixed route creation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, fr)
}

// UpdateFixedRouteHandler handles PUT /api/admin/tariffs/fixed-routes/:id.
func (h *TariffHandler) UpdateFixedRouteHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var fr models.FixedRoute
	if err := c.ShouldBindJSON(&fr); err != nil {
		logger.Error("Invalid fixed route payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	fr.ID = c.Param("id")
	if err := h.Tariffs.UpdateFixedRoute(&fr); err != nil {
		logger.Error("Fixed route update failed", zap.String("id", fr.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, fr)
}

// DeleteFixedRouteHandler handles DELETE /api/admin/tariffs/fixed-routes/:id.
func (h *TariffHandler) DeleteFixedRouteHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")

	if err := h.Tariffs.DeleteFixedRoute(id); err != nil {
		logger.Error("Fixed route deletion failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Fixed route deleted"})
}

// GetFixedRouteHandler handles GET /api/admin/tariffs/fixed-routes/:id.
func (h *TariffHandler) GetFixedRouteHandler(c *gin.Context) {
	id := c.Param("id")

	fr, err := h.Tariffs.GetFixedRouteByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, fr)
}

// ListFixedRoutesForClassHandler handles GET /api/admin/tariffs/fixed-routes/for-class/:classId.
func (h *TariffHandler) ListFixedRoutesForClassHandler(c *gin.Context) {
	logger := utils.GetLogger()
	classID := c.Param("classId")

	routes, err := h.Tariffs.ListFixedRoutesForClass(classID)
	if err != nil {
		logger.Error("Fixed route listing failed", zap.String("classId", classID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"fixedRoutes": routes, "count": len(routes)})
}

// ---------------------------------------------------------------------------
// Text routes

// CreateTextRouteHandler handles POST /api/admin/tariffs/text-routes.
func (h *TariffHandler) CreateTextRouteHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var tr models.TextRoute
	if err := c.ShouldBindJSON(&tr); err != nil {
		logger.Error("Invalid text route payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if tr.ID == "" {
		tr.ID = uuid.New().String()
	}
	if err := h.Tariffs.CreateTextRoute(&tr); err != nil {
		logger.Error("Text route creation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, tr)
}

// UpdateTextRouteHandler handles PUT /api/admin/tariffs/text-routes/:id.
func (h *TariffHandler) UpdateTextRouteHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var tr models.TextRoute
	if err := c.ShouldBindJSON(&tr); err != nil {
		logger.Error("Invalid text route payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	tr.ID = c.Param("id")
	if err := h.Tariffs.UpdateTextRoute(&tr); err != nil {
		logger.Error("Text route update failed", zap.String("id", tr.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, tr)
}

// DeleteTextRouteHandler handles DELETE /api/admin/tariffs/text-routes/:id.
func (h *TariffHandler) DeleteTextRouteHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")

	if err := h.Tariffs.DeleteTextRoute(id); err != nil {
		logger.Error("Text route deletion failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Text route deleted"})
}

// GetTextRouteHandler handles GET /api/admin/tariffs/text-routes/:id.
func (h *TariffHandler) GetTextRouteHandler(c *gin.Context) {
	id := c.Param("id")

	tr, err := h.Tariffs.GetTextRouteByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, tr)
}

// ListTextRoutesHandler handles GET /api/admin/tariffs/text-routes. Only
// active routes are returned; retired ones stay queryable by ID.
func (h *TariffHandler) ListTextRoutesHandler(c *gin.Context) {
	logger := utils.GetLogger()

	routes, err := h.Tariffs.ListActiveTextRoutes()
	if err != nil {
		logger.Error("Text route listing failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"textRoutes": routes, "count": len(routes)})
}

// ---------------------------------------------------------------------------
// Rate cards

// CreateRateCardHandler handles POST /api/admin/tariffs/rate-cards.
func (h *TariffHandler) CreateRateCardHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var rc models.RateCard
	if err := c.ShouldBindJSON(&rc); err != nil {
		logger.Error("Invalid rate card payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if rc.ID == "" {
		rc.ID = uuid.New().String()
	}
	if err := h.Tariffs.CreateRateCard(&rc); err != nil {
		logger.Error("Rate card creation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, rc)
}

// UpdateRateCardHandler handles PUT /api/admin/tariffs/rate-cards/:id.
func (h *TariffHandler) UpdateRateCardHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var rc models.RateCard
	if err := c.ShouldBindJSON(&rc); err != nil {
		logger.Error("Invalid rate card payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	rc.ID = c.Param("id")
	if err := h.Tariffs.UpdateRateCard(&rc); err != nil {
		logger.Error("Rate card update failed", zap.String("id", rc.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rc)
}

// DeleteRateCardHandler handles DELETE /api/admin/tariffs/rate-cards/:id.
func (h *TariffHandler) DeleteRateCardHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")

	if err := h.Tariffs.DeleteRateCard(id); err != nil {
		logger.Error("Rate card deletion failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Rate card deleted"})
}

// GetRateCardHandler handles GET /api/admin/tariffs/rate-cards/:id.
func (h *TariffHandler) GetRateCardHandler(c *gin.Context) {
	id := c.Param("id")

	rc, err := h.Tariffs.GetRateCardByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rc)
}

// GetRateCardForClassHandler handles GET /api/admin/tariffs/rate-cards/for-class/:classId.
func (h *TariffHandler) GetRateCardForClassHandler(c *gin.Context) {
	logger := utils.GetLogger()
	classID := c.Param("classId")

	rc, err := h.Tariffs.GetRateCardForClass(classID)
	if err != nil {
		logger.Error("Rate card lookup failed", zap.String("classId", classID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if rc == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no active rate card for vehicle class " + classID})
		return
	}
	c.JSON(http.StatusOK, rc)
}

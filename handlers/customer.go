package handlers

import (
	"net/http"

	customerRepo "voyago/database/repository/customer"
	"voyago/models"
	"voyago/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CustomerHandler exposes admin CRUD over billing customers.
type CustomerHandler struct {
	Customers customerRepo.CustomerRepository
}

// CreateCustomerHandler handles POST /api/admin/customers.
func (h *CustomerHandler) CreateCustomerHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var customer models.Customer
	if err := c.ShouldBindJSON(&customer); err != nil {
		logger.Error("Invalid customer payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if customer.ID == "" {
		customer.ID = uuid.New().String()
	}
	if err := h.Customers.Create(&customer); err != nil {
		logger.Error("Customer creation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, customer)
}

// UpdateCustomerHandler handles PUT /api/admin/customers/:id.
func (h *CustomerHandler) UpdateCustomerHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var customer models.Customer
	if err := c.ShouldBindJSON(&customer); err != nil {
		logger.Error("Invalid customer payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	customer.ID = c.Param("id")
	if err := h.Customers.Update(&customer); err != nil {
		logger.Error("Customer update failed", zap.String("id", customer.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, customer)
}

// DeleteCustomerHandler handles DELETE /api/admin/customers/:id.
func (h *CustomerHandler) DeleteCustomerHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")

	if err := h.Customers.Delete(id); err != nil {
		logger.Error("Customer deletion failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Customer deleted"})
}

// GetCustomerHandler handles GET /api/admin/customers/:id.
func (h *CustomerHandler) GetCustomerHandler(c *gin.Context) {
	id := c.Param("id")

	customer, err := h.Customers.GetByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, customer)
}

// GetCustomerByEmailHandler handles GET /api/admin/customers/email/:email.
func (h *CustomerHandler) GetCustomerByEmailHandler(c *gin.Context) {
	email := c.Param("email")

	customer, err := h.Customers.GetByEmail(email)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, customer)
}

// ListCustomersHandler handles GET /api/admin/customers.
func (h *CustomerHandler) ListCustomersHandler(c *gin.Context) {
	logger := utils.GetLogger()
	activeOnly := c.Query("activeOnly") == "true"

	customers, err := h.Customers.List(activeOnly)
	if err != nil {
		logger.Error("Customer listing failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"customers": customers, "count": len(customers)})
}

// RegisterCustomerDeviceHandler handles PUT /api/admin/customers/:id/device.
// It records the FCM token push notifications for the customer are sent to.
func (h *CustomerHandler) RegisterCustomerDeviceHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")

	var req struct {
		FCMToken string `json:"fcmToken" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	customer, err := h.Customers.GetByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	customer.FCMToken = req.FCMToken
	if err := h.Customers.Update(customer); err != nil {
		logger.Error("Customer device registration failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Device registered"})
}

package handlers

import (
	"net/http"

	"voyago/services/admin"
	"voyago/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminAuthHandler exposes authentication endpoints for back-office staff.
type AdminAuthHandler struct {
	AdminService admin.AdminService
}

// LoginHandler handles POST /api/admin/login. On success it returns the
// admin profile with a bearer token valid for 24 hours.
func (h *AdminAuthHandler) LoginHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid login request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	resp, err := h.AdminService.Authenticate(req.Email, req.Password, c.ClientIP())
	if err != nil {
		logger.Error("Admin login failed", zap.String("email", req.Email), zap.Error(err))
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// LogoutHandler handles POST /api/admin/logout. It revokes the stored token
// hash so the presented token stops working everywhere.
func (h *AdminAuthHandler) LogoutHandler(c *gin.Context) {
	logger := utils.GetLogger()

	adminID, exists := c.Get("adminID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	if err := h.AdminService.Logout(adminID.(string)); err != nil {
		logger.Error("Admin logout failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// RegisterAdminHandler handles POST /api/admin/register. Registration is
// itself admin-guarded: only a signed-in admin can create another account.
func (h *AdminAuthHandler) RegisterAdminHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid admin registration request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	created, err := h.AdminService.Register(req.Name, req.Email, req.Password)
	if err != nil {
		logger.Error("Admin registration failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

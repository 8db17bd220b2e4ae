package admin

import (
	adminRepo "voyago/database/repository/admin"
	"voyago/models"
)

// AuthResponse is returned on a successful sign-in.
type AuthResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Token string `json:"token"`
}

// AdminService manages back-office accounts and their sessions.
type AdminService interface {
	Authenticate(email, password, ip string) (*AuthResponse, error)
	Logout(adminID string) error
	Register(name, email, password string) (*models.Admin, error)
}

// DefaultAdminService is the production implementation.
type DefaultAdminService struct {
	Repo adminRepo.AdminRepository
}

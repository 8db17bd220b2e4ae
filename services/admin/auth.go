package admin

import (
	"context"
	"fmt"
	"strings"
	"time"

	"voyago/models"
	"voyago/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// tokenLifetime bounds an admin session; the stored token hash lets a
// sign-out revoke it earlier.
const tokenLifetime = 24 * time.Hour

// Authenticate verifies credentials and opens a session: a fresh JWT is
// issued and its hash replaces the one on the account, so at most one
// session per admin is valid at a time.
func (s *DefaultAdminService) Authenticate(email, password, ip string) (*AuthResponse, error) {
	adminRec, err := s.Repo.GetByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		utils.GetLogger().Error("Authenticate: failed to fetch admin", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if adminRec == nil || !adminRec.Active {
		return nil, fmt.Errorf("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(adminRec.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	token, err := utils.GenerateToken(adminRec.ID, adminRec.Email, tokenLifetime)
	if err != nil {
		utils.GetLogger().Error("Authenticate: failed to generate token", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	tokenHash := utils.HashToken(token)

	if err := s.Repo.UpdateTokenHash(adminRec.ID, tokenHash); err != nil {
		utils.GetLogger().Error("Authenticate: failed to store token hash", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	sessionClient := utils.GetAuthCacheClient()
	ctx := context.Background()

	// Replace any cached hash from a previous session.
	cacheKey := utils.AuthCachePrefix + "admin:" + adminRec.ID
	if err := sessionClient.Set(ctx, cacheKey, tokenHash, time.Hour).Err(); err != nil {
		utils.GetLogger().Error("Authenticate: failed to cache token hash", zap.Error(err))
	}

	session := utils.AuthSession{
		AdminID:    adminRec.ID,
		Email:      adminRec.Email,
		IP:         ip,
		SignedInAt: time.Now(),
	}
	if err := utils.SaveAuthSession(sessionClient, adminRec.ID, session); err != nil {
		utils.GetLogger().Error("Authenticate: failed to save session record", zap.Error(err))
	}

	return &AuthResponse{
		ID:    adminRec.ID,
		Name:  adminRec.Name,
		Email: adminRec.Email,
		Token: token,
	}, nil
}

// Logout revokes the admin's current session everywhere: the stored hash,
// the auth cache entry and the session record.
func (s *DefaultAdminService) Logout(adminID string) error {
	if err := s.Repo.UpdateTokenHash(adminID, ""); err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}

	sessionClient := utils.GetAuthCacheClient()
	ctx := context.Background()
	if err := sessionClient.Del(ctx, utils.AuthCachePrefix+"admin:"+adminID).Err(); err != nil {
		utils.GetLogger().Error("Logout: failed to clear auth cache", zap.Error(err))
	}
	if err := utils.DeleteAuthSession(sessionClient, adminID); err != nil {
		utils.GetLogger().Error("Logout: failed to delete session record", zap.Error(err))
	}
	return nil
}

// Register creates a back-office account.
func (s *DefaultAdminService) Register(name, email, password string) (*models.Admin, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" || email == "" {
		return nil, fmt.Errorf("name and email are required")
	}
	if len(password) < 8 {
		return nil, fmt.Errorf("password must be at least 8 characters")
	}

	existing, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing accounts: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("an account with email %s already exists", email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	adminRec := &models.Admin{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Active:       true,
	}
	if err := s.Repo.Create(adminRec); err != nil {
		return nil, fmt.Errorf("failed to create admin account: %w", err)
	}
	return adminRec, nil
}

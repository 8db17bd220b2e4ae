package admin

import (
	"fmt"
	"strings"
	"testing"

	"voyago/models"
	"voyago/utils"

	"github.com/go-redis/redis/v8"
)

// fakeAdminRepo is an in-memory AdminRepository.
type fakeAdminRepo struct {
	byID map[string]*models.Admin
}

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{byID: make(map[string]*models.Admin)}
}

func (r *fakeAdminRepo) Create(admin *models.Admin) error {
	cp := *admin
	r.byID[admin.ID] = &cp
	return nil
}

func (r *fakeAdminRepo) GetByID(id string) (*models.Admin, error) {
	a, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("admin with id %s not found", id)
	}
	cp := *a
	return &cp, nil
}

func (r *fakeAdminRepo) GetByEmail(email string) (*models.Admin, error) {
	for _, a := range r.byID {
		if a.Email == email {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeAdminRepo) UpdateTokenHash(id, tokenHash string) error {
	a, ok := r.byID[id]
	if !ok {
		return fmt.Errorf("admin with id %s not found", id)
	}
	a.TokenHash = tokenHash
	return nil
}

// newTestAdminService wires the service against the fake repo. The auth
// cache global is pointed at an unreachable address: cache writes fail fast
// and are only logged, which is the degraded path the service tolerates.
func newTestAdminService(t *testing.T) (*DefaultAdminService, *fakeAdminRepo) {
	t.Helper()
	prev := utils.AuthCacheClient
	utils.AuthCacheClient = redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
	t.Cleanup(func() { utils.AuthCacheClient = prev })

	repo := newFakeAdminRepo()
	return &DefaultAdminService{Repo: repo}, repo
}

func TestRegisterThenAuthenticate(t *testing.T) {
	svc, repo := newTestAdminService(t)

	created, err := svc.Register("Dana Obi", "Dana@Voyago.example ", "correct-horse")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if created.Email != "dana@voyago.example" {
		t.Fatalf("email not normalized: %q", created.Email)
	}
	if created.PasswordHash == "correct-horse" || created.PasswordHash == "" {
		t.Fatalf("password stored without hashing")
	}
	if !created.Active {
		t.Fatalf("new account should be active")
	}

	resp, err := svc.Authenticate("dana@voyago.example", "correct-horse", "203.0.113.9")
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if resp.Token == "" {
		t.Fatalf("expected a session token")
	}

	sub, err := utils.ExtractIDFromToken(resp.Token)
	if err != nil {
		t.Fatalf("token does not validate: %v", err)
	}
	if sub != created.ID {
		t.Fatalf("token subject = %q, want %q", sub, created.ID)
	}

	stored, _ := repo.GetByID(created.ID)
	if stored.TokenHash != utils.HashToken(resp.Token) {
		t.Fatalf("stored token hash does not match issued token")
	}
}

func TestAuthenticateRejectsBadCredentials(t *testing.T) {
	svc, repo := newTestAdminService(t)
	if _, err := svc.Register("Dana Obi", "dana@voyago.example", "correct-horse"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"wrong password", "dana@voyago.example", "wrong-horse"},
		{"unknown email", "nobody@voyago.example", "correct-horse"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Authenticate(tt.email, tt.password, "203.0.113.9")
			if err == nil {
				t.Fatalf("expected authentication to fail")
			}
			if err.Error() != "invalid email or password" {
				t.Fatalf("error = %q, want the generic credential error", err)
			}
		})
	}

	// Deactivated accounts fail the same way.
	for _, a := range repo.byID {
		a.Active = false
	}
	if _, err := svc.Authenticate("dana@voyago.example", "correct-horse", "203.0.113.9"); err == nil {
		t.Fatalf("expected inactive account to be rejected")
	}
}

func TestAuthenticateReplacesPreviousSession(t *testing.T) {
	svc, repo := newTestAdminService(t)
	created, err := svc.Register("Dana Obi", "dana@voyago.example", "correct-horse")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	first, err := svc.Authenticate("dana@voyago.example", "correct-horse", "203.0.113.9")
	if err != nil {
		t.Fatalf("first Authenticate: %v", err)
	}
	second, err := svc.Authenticate("dana@voyago.example", "correct-horse", "203.0.113.10")
	if err != nil {
		t.Fatalf("second Authenticate: %v", err)
	}

	stored, _ := repo.GetByID(created.ID)
	if stored.TokenHash == utils.HashToken(first.Token) {
		t.Fatalf("first session should have been replaced")
	}
	if stored.TokenHash != utils.HashToken(second.Token) {
		t.Fatalf("stored hash should match the latest token")
	}
}

func TestLogoutRevokesSession(t *testing.T) {
	svc, repo := newTestAdminService(t)
	created, err := svc.Register("Dana Obi", "dana@voyago.example", "correct-horse")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if _, err := svc.Authenticate("dana@voyago.example", "correct-horse", "203.0.113.9"); err != nil {
		t.Fatalf("Authenticate: %v", err)
	}

	if err := svc.Logout(created.ID); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	stored, _ := repo.GetByID(created.ID)
	if stored.TokenHash != "" {
		t.Fatalf("token hash should be cleared on logout, got %q", stored.TokenHash)
	}
}

func TestRegisterValidation(t *testing.T) {
	svc, _ := newTestAdminService(t)
	if _, err := svc.Register("Dana Obi", "dana@voyago.example", "correct-horse"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	tests := []struct {
		name     string
		admin    string
		email    string
		password string
		wantErr  string
	}{
		{"duplicate email", "Sam Cole", "dana@voyago.example", "another-pass", "already exists"},
		{"short password", "Sam Cole", "sam@voyago.example", "short", "at least 8 characters"},
		{"missing name", "", "sam@voyago.example", "long-enough", "required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(tt.admin, tt.email, tt.password)
			if err == nil {
				t.Fatalf("expected registration to fail")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("error = %q, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}

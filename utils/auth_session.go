// File: utils/auth_session.go
package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const AuthSessionPrefix = "authSession:"

// AuthSessionTTL matches the admin token lifetime, so the session record
// expires with the token it describes.
const AuthSessionTTL = 24 * time.Hour

// AuthSession records an admin's current sign-in.
type AuthSession struct {
	AdminID    string    `json:"adminId"`
	Email      string    `json:"email"`
	IP         string    `json:"ip"`
	SignedInAt time.Time `json:"signedInAt"`
}

// SaveAuthSession saves the sign-in record in Redis with a TTL.
func SaveAuthSession(client *redis.Client, adminID string, session AuthSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal auth session: %w", err)
	}
	ctx := context.Background()
	if err := client.Set(ctx, AuthSessionPrefix+adminID, data, AuthSessionTTL).Err(); err != nil {
		return fmt.Errorf("store auth session: %w", err)
	}
	return nil
}

// GetAuthSession retrieves an admin's sign-in record from Redis.
func GetAuthSession(client *redis.Client, adminID string) (*AuthSession, error) {
	ctx := context.Background()
	data, err := client.Get(ctx, AuthSessionPrefix+adminID).Result()
	if err != nil {
		return nil, err
	}
	var session AuthSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("decode auth session: %w", err)
	}
	return &session, nil
}

// DeleteAuthSession removes an admin's sign-in record from Redis.
func DeleteAuthSession(client *redis.Client, adminID string) error {
	ctx := context.Background()
	return client.Del(ctx, AuthSessionPrefix+adminID).Err()
}

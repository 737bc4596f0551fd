package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/vidyaquiz/vidyaquiz-backend/internal/models"
	"github.com/vidyaquiz/vidyaquiz-backend/pkg/utils"
)

// RefreshTokenLifetime bounds how long a refresh token can sit unused.
const RefreshTokenLifetime = 30 * 24 * time.Hour

// Session is the bearer-token pair handed to clients.
type Session struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresAt    int64  `json:"expires_at"`
}

// SessionIssuer mints and rotates sessions. Redeem consumes a refresh
// token exactly once and returns the user it belonged to.
type SessionIssuer interface {
	Issue(ctx context.Context, user *models.User) (*Session, error)
	Redeem(ctx context.Context, refreshToken string) (uint, error)
}

type redisSessionIssuer struct {
	client *redis.Client
}

// NewSessionIssuer returns the JWT + Redis-backed issuer.
func NewSessionIssuer(client *redis.Client) SessionIssuer {
	return &redisSessionIssuer{client: client}
}

func refreshKey(token string) string {
	return fmt.Sprintf("session:refresh:%s", token)
}

func (i *redisSessionIssuer) Issue(ctx context.Context, user *models.User) (*Session, error) {
	accessToken, err := utils.GenerateToken(user)
	if err != nil {
		return nil, err
	}

	refreshToken := uuid.NewString()
	if err := i.client.Set(ctx, refreshKey(refreshToken), user.ID, RefreshTokenLifetime).Err(); err != nil {
		return nil, err
	}

	return &Session{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "bearer",
		ExpiresAt:    time.Now().Add(utils.AccessTokenLifetime).Unix(),
	}, nil
}

func (i *redisSessionIssuer) Redeem(ctx context.Context, refreshToken string) (uint, error) {
	// GETDEL so a refresh token rotates atomically: replaying it after
	// redemption finds nothing.
	userID, err := i.client.GetDel(ctx, refreshKey(refreshToken)).Uint64()
	if errors.Is(err, redis.Nil) {
		return 0, ErrSessionExpired
	}
	if err != nil {
		return 0, err
	}
	return uint(userID), nil
}

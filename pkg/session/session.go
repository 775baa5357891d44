package session

import (
	"context"
	"errors"
	"net/http"
	"time"

	"campus-events/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const CookieName = "campus_session"

const revokedPrefix = "session:revoked:"

var (
	ErrInvalidSession = errors.New("invalid session")
	ErrRevokedSession = errors.New("session has been revoked")
)

// Claims is the per-request authentication context: the resolved identity
// bound at login, carried in a signed HttpOnly cookie.
type Claims struct {
	UserID uint        `json:"uid"`
	Name   string      `json:"name"`
	Email  string      `json:"email"`
	Role   models.Role `json:"role"`
	jwt.RegisteredClaims
}

// Manager signs and verifies session cookies. When a Redis client is
// provided, logout revokes the token id for the remainder of its lifetime;
// with a nil client revocation is skipped and sessions expire by TTL alone.
type Manager struct {
	secret      []byte
	ttl         time.Duration
	revocations *goredis.Client
	log         *zap.Logger
}

func NewManager(secret string, ttl time.Duration, revocations *goredis.Client, log *zap.Logger) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	return &Manager{secret: []byte(secret), ttl: ttl, revocations: revocations, log: log}
}

func (m *Manager) Issue(user *models.User) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

func (m *Manager) Verify(ctx context.Context, tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidSession
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, ErrInvalidSession
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidSession
	}

	if m.revocations != nil && claims.ID != "" {
		n, err := m.revocations.Exists(ctx, revokedPrefix+claims.ID).Result()
		if err != nil {
			// Fail open: an unreachable revocation store must not lock
			// everyone out, but it cannot go unnoticed either.
			m.log.Warn("session revocation lookup failed", zap.Error(err), zap.String("jti", claims.ID))
		} else if n > 0 {
			return nil, ErrRevokedSession
		}
	}
	return claims, nil
}

// Revoke blacklists the token id until the token would have expired anyway.
func (m *Manager) Revoke(ctx context.Context, claims *Claims) error {
	if m.revocations == nil || claims.ID == "" || claims.ExpiresAt == nil {
		return nil
	}
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}
	return m.revocations.Set(ctx, revokedPrefix+claims.ID, "1", ttl).Err()
}

func (m *Manager) Cookie(token string) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(m.ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

func (m *Manager) ClearCookie() *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"jobboard_backend/internal/config"
)

// TokenTTL is the fixed bearer-token lifetime.
const TokenTTL = 24 * time.Hour

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

// Claims carried by every issued bearer token.
type Claims struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken signs a bearer token for the given user id and role. The
// lifetime comes from configuration, falling back to TokenTTL.
func GenerateToken(userID, role string) (string, error) {
	cfg := config.GetConfig()
	ttl := TokenTTL
	if cfg.JWT.TTL > 0 {
		ttl = time.Duration(cfg.JWT.TTL) * time.Hour
	}
	return generateToken(userID, role, cfg.JWT.Secret, ttl)
}

// GenerateTokenWithSecret is the injectable variant used by tests.
func GenerateTokenWithSecret(userID, role, secret string) (string, error) {
	return generateToken(userID, role, secret, TokenTTL)
}

func generateToken(userID, role, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken verifies signature and expiry and returns the decoded claims.
func ParseToken(tokenStr string) (*Claims, error) {
	return ParseTokenWithSecret(tokenStr, config.GetConfig().JWT.Secret)
}

// ParseTokenWithSecret is the injectable variant used by tests.
func ParseTokenWithSecret(tokenStr, secret string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// Package token signs and verifies the bearer tokens issued at login.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"musicapi/internal/models"
)

var (
	// ErrExpired means the token was well-formed and correctly signed but
	// its expiry has passed.
	ErrExpired = errors.New("jwt expired")
	// ErrInvalid covers every other verification failure: bad signature,
	// malformed token, unexpected signing method.
	ErrInvalid = errors.New("invalid token")
)

// Codec signs claims into opaque strings and verifies them back, using a
// server-held HMAC secret.
type Codec struct {
	secret []byte
	ttl    time.Duration
}

func NewCodec(secret []byte, ttl time.Duration) *Codec {
	return &Codec{secret: secret, ttl: ttl}
}

// Sign fills in the registered time claims and returns the signed token.
func (c *Codec) Sign(claims *models.Claims) (string, error) {
	now := time.Now()
	claims.RegisteredClaims = jwt.RegisteredClaims{
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(c.secret)
}

// Verify checks signature and expiry and decodes the claims. Failures are
// collapsed into ErrExpired or ErrInvalid so callers can answer them without
// inspecting message text.
func (c *Codec) Verify(raw string) (*models.Claims, error) {
	claims := &models.Claims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return c.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpired
		}
		return nil, ErrInvalid
	}
	if !token.Valid {
		return nil, ErrInvalid
	}
	return claims, nil
}

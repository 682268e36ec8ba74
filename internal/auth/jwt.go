package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"retreat-backoffice/internal/model"
)

// Claims is the session token payload. The user id travels as the
// registered subject; email and role are informational copies. The
// authoritative role is always re-read from the database on verification.
type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

func (c *Claims) UserID() string {
	return c.Subject
}

// Codec signs and parses session tokens with a process-wide HS256 secret.
// Tokens are integrity-protected, not confidential, and carry a fixed
// lifetime; there is no refresh or rotation.
type Codec struct {
	secret []byte
	ttl    time.Duration
}

func NewCodec(secret string, ttl time.Duration) *Codec {
	return &Codec{secret: []byte(secret), ttl: ttl}
}

func (c *Codec) TTL() time.Duration {
	return c.ttl
}

func (c *Codec) Issue(user model.User) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		Email: user.Email,
		Role:  string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(c.secret)
}

// Parse verifies signature and expiry. Every failure collapses to
// model.ErrInvalidToken so callers cannot distinguish tampering from
// expiry in client-facing paths.
func (c *Codec) Parse(tokenString string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, model.ErrInvalidToken
		}
		return c.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, model.ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || claims.Subject == "" {
		return nil, model.ErrInvalidToken
	}

	return claims, nil
}

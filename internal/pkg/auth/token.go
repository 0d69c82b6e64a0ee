package auth

import (
	"fmt"
	"time"

	"fasttrack/internal/core/domain/model/account"
	"fasttrack/internal/core/domain/model/kernel"
	"fasttrack/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the JWT payload for an authenticated account. Subject carries
// the user ID; Role is checked by the admin-only middleware without a
// database round trip.
type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// UserID parses the subject claim back into a user identifier.
func (c *Claims) UserID() (kernel.UUID, error) {
	return kernel.UUIDFromString(c.Subject)
}

// TokenService issues and verifies HMAC-signed access tokens.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService creates a token service. Tokens are signed with HS256
// using the given secret and expire after ttl.
func NewTokenService(secret string, ttl time.Duration) (*TokenService, error) {
	if secret == "" {
		return nil, errs.NewValueIsRequiredError("jwtSecret")
	}
	if ttl <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"jwtTTL", fmt.Errorf("%s is not a positive duration", ttl))
	}

	return &TokenService{secret: []byte(secret), ttl: ttl}, nil
}

// Issue signs an access token for the account.
func (s *TokenService) Issue(user *account.User) (string, error) {
	if err := user.Validate(); err != nil {
		return "", err
	}

	now := time.Now().UTC()
	claims := Claims{
		Email: user.Email(),
		Role:  user.Role().String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify parses and validates a token, returning its claims. Expired,
// malformed, or foreign-key tokens all come back as UnauthorizedError.
func (s *TokenService) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(_ *jwt.Token) (interface{}, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return nil, errs.NewUnauthorizedErrorWithCause("invalid or expired token", err)
	}
	if !token.Valid {
		return nil, errs.NewUnauthorizedError("invalid or expired token")
	}

	return claims, nil
}

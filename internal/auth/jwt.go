// Package auth issues and verifies the signed session tokens handed out on
// login.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/juju/clock"
	"github.com/juju/errors"
)

// Claims identifies the account a token was issued to.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
	Name  string `json:"name"`
}

// TokenIssuer signs and verifies HS256 tokens with a single process-wide
// secret.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	clock  clock.Clock
}

// NewTokenIssuer creates a TokenIssuer. A zero ttl issues tokens without an
// expiry claim.
func NewTokenIssuer(secret []byte, ttl time.Duration, clk clock.Clock) (*TokenIssuer, error) {
	if len(secret) == 0 {
		return nil, errors.NotValidf("empty signing secret")
	}
	if clk == nil {
		clk = clock.WallClock
	}
	return &TokenIssuer{secret: secret, ttl: ttl, clock: clk}, nil
}

// Issue returns a signed token for the given identity.
func (i *TokenIssuer) Issue(userID, email, name string) (string, error) {
	now := i.clock.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  userID,
			IssuedAt: jwt.NewNumericDate(now),
		},
		Email: email,
		Name:  name,
	}
	if i.ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(i.ttl))
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", errors.Annotate(err, "failed to sign token")
	}
	return token, nil
}

// Verify checks the signature and expiry of tokenString and returns its
// claims. Every failure satisfies errors.Is(err, errors.Unauthorized).
func (i *TokenIssuer) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return i.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(i.clock.Now),
	)
	if err != nil {
		return nil, errors.NewUnauthorized(err, "invalid token")
	}
	if !token.Valid || claims.Subject == "" {
		return nil, errors.Unauthorizedf("invalid token")
	}

	return claims, nil
}

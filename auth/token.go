// Package auth, token codec. Issues and verifies the signed, time-limited
// tokens that are the sole authorization proof in the system. The codec is a
// pure function of the injected secret: verification never consults the
// store, which is why a deleted user can still present a structurally valid
// token until it expires. That stale-authority window is a documented
// property of the stateless design, not something to patch around here.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/user/archon-go/config"
)

// tokenIssuer identifies tokens minted by this service.
const tokenIssuer = "archon"

// Verification failure classes. The middleware collapses all of these into a
// generic 401 for the caller; the distinction exists for logging and tests.
var (
	// ErrTokenMalformed means the token could not be parsed at all.
	ErrTokenMalformed = errors.New("token is malformed")
	// ErrTokenSignature means the signature does not match the secret.
	ErrTokenSignature = errors.New("token signature is invalid")
	// ErrTokenExpired means the token parsed and verified but its expiry
	// has passed.
	ErrTokenExpired = errors.New("token has expired")
)

// Claims is the JWT payload carried by every issued token. It embeds
// jwt.RegisteredClaims for the standard iat/exp/nbf fields and adds the
// identity and role claims the middleware enforces.
type Claims struct {
	RegNo string `json:"regNo"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// TokenCodec creates and verifies signed tokens. The secret and TTL are
// fixed at construction from configuration; the codec itself is stateless
// and safe for concurrent use.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenCodec creates a TokenCodec from auth configuration. The secret is
// an explicit injected value so deployments and tests can swap it; there is
// no package-level secret anywhere.
func NewTokenCodec(cfg config.AuthConfig) *TokenCodec {
	return &TokenCodec{
		secret: []byte(cfg.JWTSecret),
		ttl:    cfg.TokenDuration,
	}
}

// Issue signs a token carrying the given identity and role claims. The
// returned expiry is now plus the configured TTL. Tampering with any claim
// invalidates the HS256 signature.
func (c *TokenCodec) Issue(regNo, role string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(c.ttl)
	claims := &Claims{
		RegNo: regNo,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
			Subject:   regNo,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(c.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, expiresAt, nil
}

// Verify parses and validates a token string, returning the original claims
// unchanged on success. Failures are classified as ErrTokenMalformed,
// ErrTokenSignature, or ErrTokenExpired. This is a pure cryptographic and
// structural check with no I/O.
func (c *TokenCodec) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			// A token signed with anything but HMAC was not issued by us.
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return c.secret, nil
	})

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrTokenSignature
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, ErrTokenMalformed
		default:
			return nil, fmt.Errorf("%w: %v", ErrTokenMalformed, err)
		}
	}

	if !token.Valid {
		return nil, ErrTokenSignature
	}

	// A structurally valid token without identity claims was not minted by
	// this service either.
	if claims.RegNo == "" || !ValidRole(claims.Role) {
		return nil, ErrTokenMalformed
	}

	return claims, nil
}

// Package auth is responsible for credential issuance: registering users and
// logging them in. The service layer holds the business rules (validation,
// hashing, duplicate handling, credential indistinguishability) and leans on
// the UserStore for persistence and the TokenCodec for token minting.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/user/archon-go/apperror"
)

// bcryptCost is the work factor for password hashing. Existing hashes in the
// users table were produced at cost 10, so this stays pinned rather than
// tracking bcrypt.DefaultCost.
const bcryptCost = 10

// AuthService provides registration and login.
type AuthService struct {
	store UserStore
	codec *TokenCodec
}

// NewAuthService creates a new AuthService with its dependencies injected.
func NewAuthService(store UserStore, codec *TokenCodec) *AuthService {
	return &AuthService{
		store: store,
		codec: codec,
	}
}

// Register creates a new user. All three fields are required and the role
// must be in the enumerated set; violations surface as 400. A duplicate
// registration number surfaces as 409. On success the returned User carries
// the public projection fields; the hash never leaves this package.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	if req.RegNo == "" || req.Password == "" || req.Role == "" {
		return nil, apperror.NewValidationError("missing required fields: regNo, password, role", nil)
	}
	if !ValidRole(req.Role) {
		return nil, apperror.NewValidationError("role must be 'user' or 'admin'", nil)
	}

	// Check-then-insert: this pre-check gives the common case a clean 409,
	// but the race between two concurrent registrations is decided by the
	// store's unique constraint below, never by this read.
	if _, err := s.store.GetUserByRegNo(ctx, req.RegNo); err == nil {
		return nil, apperror.NewConflictError("user with this registration number already exists", nil)
	} else if !errors.Is(err, ErrUserNotFound) {
		return nil, apperror.NewDatabaseError("failed to check existing user", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &User{
		RegNo:        req.RegNo,
		PasswordHash: string(hashedPassword),
		Role:         req.Role,
	}

	createdUser, err := s.store.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, ErrRegNoExists) {
			return nil, apperror.NewConflictError("user with this registration number already exists", nil)
		}
		return nil, apperror.NewDatabaseError("failed to create user", err)
	}

	log.Printf("New user registered: %s, role: %s", createdUser.RegNo, createdUser.Role)
	return createdUser, nil
}

// Login authenticates a user and issues a token carrying their identity and
// role claims as of this moment; a later role change is not reflected until
// the next login. An unknown registration number and a wrong password
// produce byte-identical failures so the endpoint does not leak which
// identities exist.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	if req.RegNo == "" || req.Password == "" {
		return nil, apperror.NewValidationError("missing required fields: regNo, password", nil)
	}

	user, err := s.store.GetUserByRegNo(ctx, req.RegNo)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, apperror.NewAuthError("invalid credentials", nil)
		}
		log.Printf("Database error in Login for %s: %v", req.RegNo, err)
		return nil, apperror.NewDatabaseError("failed to get user", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		// Same error kind and message as the unknown-identity case above.
		return nil, apperror.NewAuthError("invalid credentials", nil)
	}

	token, expiresAt, err := s.codec.Issue(user.RegNo, user.Role)
	if err != nil {
		return nil, apperror.NewInternalError("failed to issue token", err)
	}

	log.Printf("User logged in: %s, role: %s", user.RegNo, user.Role)
	return &LoginResponse{
		Token:     token,
		RegNo:     user.RegNo,
		Role:      user.Role,
		ExpiresIn: int64(time.Until(expiresAt).Round(time.Second).Seconds()),
	}, nil
}

// Package users provides user administration (list, delete, analytics) and
// the caller's own profile projection. The admin operations run behind the
// admin-only role gate; the profile runs behind the any-authenticated gate.
package users

import (
	"context"
	"errors"
	"log"

	"github.com/user/archon-go/apperror"
	"github.com/user/archon-go/auth"
)

// UserService holds the business rules for user administration.
type UserService struct {
	store AdminStore
}

// NewUserService creates a new UserService.
func NewUserService(store AdminStore) *UserService {
	return &UserService{store: store}
}

// ListUsers returns the public projection of every user, newest first.
func (s *UserService) ListUsers(ctx context.Context) (*UserListResponse, error) {
	users, err := s.store.ListUsers(ctx)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to list users", err)
	}

	projections := make([]PublicUser, 0, len(users))
	for _, u := range users {
		projections = append(projections, PublicUser{
			RegNo:     u.RegNo,
			Role:      u.Role,
			CreatedAt: u.CreatedAt,
		})
	}
	return &UserListResponse{
		TotalUsers: len(projections),
		Users:      projections,
	}, nil
}

// DeleteUser removes the target user. An admin cannot delete their own
// account: the self-delete is rejected before any store access, so the
// caller's row is untouched on that path.
func (s *UserService) DeleteUser(ctx context.Context, callerRegNo, targetRegNo string) (*DeletedUserResponse, error) {
	if targetRegNo == "" {
		return nil, apperror.NewValidationError("registration number is required", nil)
	}
	if targetRegNo == callerRegNo {
		return nil, apperror.NewBadRequestError("cannot delete your own account", nil)
	}

	deleted, err := s.store.DeleteByRegNo(ctx, targetRegNo)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			return nil, apperror.NewNotFoundError("user not found", nil)
		}
		return nil, apperror.NewDatabaseError("failed to delete user", err)
	}

	log.Printf("User deleted by admin %s: %s (role %s)", callerRegNo, deleted.RegNo, deleted.Role)
	return &DeletedUserResponse{
		Message: "User deleted successfully",
		DeletedUser: PublicUser{
			RegNo:     deleted.RegNo,
			Role:      deleted.Role,
			CreatedAt: deleted.CreatedAt,
		},
	}, nil
}

// Analytics returns aggregate counts for the admin dashboard.
func (s *UserService) Analytics(ctx context.Context) (*AnalyticsResponse, error) {
	totalUsers, err := s.store.CountUsersByRole(ctx, auth.RoleUser)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to count users", err)
	}
	totalAdmins, err := s.store.CountUsersByRole(ctx, auth.RoleAdmin)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to count admins", err)
	}
	totalChats, err := s.store.CountChats(ctx)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to count chats", err)
	}

	return &AnalyticsResponse{
		TotalUsers:  totalUsers,
		TotalAdmins: totalAdmins,
		TotalChats:  totalChats,
	}, nil
}

// Profile returns the caller's own projection with relation counts.
func (s *UserService) Profile(ctx context.Context, regNo string) (*ProfileResponse, error) {
	user, chats, files, err := s.store.GetProfile(ctx, regNo)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			return nil, apperror.NewNotFoundError("user not found", nil)
		}
		return nil, apperror.NewDatabaseError("failed to load profile", err)
	}

	return &ProfileResponse{
		RegNo:         user.RegNo,
		Role:          user.Role,
		CreatedAt:     user.CreatedAt,
		ChatCount:     chats,
		UploadedFiles: files,
	}, nil
}

package users

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/archon-go/apperror"
	"github.com/user/archon-go/auth"
)

// fakeAdminStore is an in-memory AdminStore ordered newest first.
type fakeAdminStore struct {
	users     []auth.User
	chats     map[string]int64
	files     map[string]int64
	deleteErr error
}

func newFakeAdminStore(users ...auth.User) *fakeAdminStore {
	return &fakeAdminStore{
		users: users,
		chats: make(map[string]int64),
		files: make(map[string]int64),
	}
}

func (f *fakeAdminStore) ListUsers(ctx context.Context) ([]auth.User, error) {
	out := make([]auth.User, len(f.users))
	copy(out, f.users)
	return out, nil
}

func (f *fakeAdminStore) DeleteByRegNo(ctx context.Context, regNo string) (*auth.User, error) {
	if f.deleteErr != nil {
		return nil, f.deleteErr
	}
	for i, u := range f.users {
		if u.RegNo == regNo {
			f.users = append(f.users[:i], f.users[i+1:]...)
			return &u, nil
		}
	}
	return nil, auth.ErrUserNotFound
}

func (f *fakeAdminStore) CountUsersByRole(ctx context.Context, role string) (int64, error) {
	var count int64
	for _, u := range f.users {
		if u.Role == role {
			count++
		}
	}
	return count, nil
}

func (f *fakeAdminStore) CountChats(ctx context.Context) (int64, error) {
	var total int64
	for _, n := range f.chats {
		total += n
	}
	return total, nil
}

func (f *fakeAdminStore) GetProfile(ctx context.Context, regNo string) (*auth.User, int64, int64, error) {
	for _, u := range f.users {
		if u.RegNo == regNo {
			return &u, f.chats[regNo], f.files[regNo], nil
		}
	}
	return nil, 0, 0, auth.ErrUserNotFound
}

func testUser(regNo, role string) auth.User {
	return auth.User{
		ID:           1,
		RegNo:        regNo,
		PasswordHash: "$2a$10$notarealhash",
		Role:         role,
		CreatedAt:    time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC),
	}
}

func TestListUsersProjection(t *testing.T) {
	t.Parallel()

	store := newFakeAdminStore(testUser("A001", auth.RoleAdmin), testUser("S001", auth.RoleUser))
	svc := NewUserService(store)

	resp, err := svc.ListUsers(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, resp.TotalUsers)
	require.Len(t, resp.Users, 2)
	assert.Equal(t, "A001", resp.Users[0].RegNo)
	assert.Equal(t, auth.RoleAdmin, resp.Users[0].Role)
	// The projection never carries credential material.
	for _, u := range resp.Users {
		assert.NotEmpty(t, u.RegNo)
		assert.NotEmpty(t, u.Role)
		assert.False(t, u.CreatedAt.IsZero())
	}
}

func TestDeleteUser(t *testing.T) {
	t.Parallel()

	store := newFakeAdminStore(testUser("A001", auth.RoleAdmin), testUser("S001", auth.RoleUser))
	svc := NewUserService(store)

	resp, err := svc.DeleteUser(context.Background(), "A001", "S001")
	require.NoError(t, err)

	assert.Equal(t, "User deleted successfully", resp.Message)
	assert.Equal(t, "S001", resp.DeletedUser.RegNo)
	assert.Equal(t, auth.RoleUser, resp.DeletedUser.Role)
	assert.Len(t, store.users, 1)
}

func TestDeleteUserSelf(t *testing.T) {
	t.Parallel()

	store := newFakeAdminStore(testUser("A001", auth.RoleAdmin))
	svc := NewUserService(store)

	_, err := svc.DeleteUser(context.Background(), "A001", "A001")
	require.Error(t, err)
	appErr, ok := apperror.FromError(err)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.StatusCode())
	assert.Len(t, store.users, 1, "the caller's row must be untouched on the self-delete path")
}

func TestDeleteUserMissing(t *testing.T) {
	t.Parallel()

	store := newFakeAdminStore(testUser("A001", auth.RoleAdmin))
	svc := NewUserService(store)

	_, err := svc.DeleteUser(context.Background(), "A001", "GHOST")
	assert.True(t, apperror.IsNotFound(err), "expected not-found, got %v", err)
}

func TestDeleteUserEmptyTarget(t *testing.T) {
	t.Parallel()

	svc := NewUserService(newFakeAdminStore())

	_, err := svc.DeleteUser(context.Background(), "A001", "")
	assert.True(t, apperror.IsValidationError(err))
}

func TestDeleteUserStoreFailure(t *testing.T) {
	t.Parallel()

	store := newFakeAdminStore(testUser("A001", auth.RoleAdmin))
	store.deleteErr = errors.New("connection reset")
	svc := NewUserService(store)

	_, err := svc.DeleteUser(context.Background(), "A001", "S001")
	require.Error(t, err)
	appErr, ok := apperror.FromError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.DatabaseError, appErr.Type)
}

func TestAnalytics(t *testing.T) {
	t.Parallel()

	store := newFakeAdminStore(
		testUser("A001", auth.RoleAdmin),
		testUser("S001", auth.RoleUser),
		testUser("S002", auth.RoleUser),
	)
	store.chats["S001"] = 4
	store.chats["S002"] = 1
	svc := NewUserService(store)

	resp, err := svc.Analytics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.TotalUsers)
	assert.Equal(t, int64(1), resp.TotalAdmins)
	assert.Equal(t, int64(5), resp.TotalChats)
}

func TestProfile(t *testing.T) {
	t.Parallel()

	store := newFakeAdminStore(testUser("S001", auth.RoleUser))
	store.chats["S001"] = 7
	store.files["S001"] = 2
	svc := NewUserService(store)

	resp, err := svc.Profile(context.Background(), "S001")
	require.NoError(t, err)
	assert.Equal(t, "S001", resp.RegNo)
	assert.Equal(t, auth.RoleUser, resp.Role)
	assert.Equal(t, int64(7), resp.ChatCount)
	assert.Equal(t, int64(2), resp.UploadedFiles)
}

func TestProfileMissingUser(t *testing.T) {
	t.Parallel()

	svc := NewUserService(newFakeAdminStore())

	_, err := svc.Profile(context.Background(), "GHOST")
	assert.True(t, apperror.IsNotFound(err))
}

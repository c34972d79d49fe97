package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/archon-go/apperror"
)

// fakeUserStore is an in-memory UserStore for service tests.
type fakeUserStore struct {
	users     map[string]*User
	createErr error
	getErr    error
	nextID    int64
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]*User)}
}

func (f *fakeUserStore) CreateUser(ctx context.Context, user *User) (*User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if _, exists := f.users[user.RegNo]; exists {
		return nil, ErrRegNoExists
	}
	f.nextID++
	user.ID = f.nextID
	user.CreatedAt = time.Now()
	stored := *user
	f.users[user.RegNo] = &stored
	return user, nil
}

func (f *fakeUserStore) GetUserByRegNo(ctx context.Context, regNo string) (*User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	user, ok := f.users[regNo]
	if !ok {
		return nil, ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func newTestService(store UserStore) *AuthService {
	return NewAuthService(store, newTestCodec(time.Hour))
}

func TestRegisterThenLogin(t *testing.T) {
	t.Parallel()

	store := newFakeUserStore()
	svc := newTestService(store)
	ctx := context.Background()

	user, err := svc.Register(ctx, RegisterRequest{RegNo: "S001", Password: "p@ss", Role: RoleUser})
	require.NoError(t, err)
	assert.Equal(t, "S001", user.RegNo)
	assert.Equal(t, RoleUser, user.Role)
	assert.NotEqual(t, "p@ss", user.PasswordHash, "password must be stored hashed")

	resp, err := svc.Login(ctx, LoginRequest{RegNo: "S001", Password: "p@ss"})
	require.NoError(t, err)
	assert.Equal(t, "S001", resp.RegNo)
	assert.Equal(t, RoleUser, resp.Role, "returned role equals the registered role")
	assert.NotEmpty(t, resp.Token)
	assert.Greater(t, resp.ExpiresIn, int64(0))
}

func TestRegisterValidation(t *testing.T) {
	t.Parallel()

	svc := newTestService(newFakeUserStore())
	ctx := context.Background()

	cases := []struct {
		name string
		req  RegisterRequest
	}{
		{"missing regNo", RegisterRequest{Password: "p", Role: RoleUser}},
		{"missing password", RegisterRequest{RegNo: "S001", Role: RoleUser}},
		{"missing role", RegisterRequest{RegNo: "S001", Password: "p"}},
		{"unknown role", RegisterRequest{RegNo: "S001", Password: "p", Role: "superuser"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Register(ctx, tc.req)
			assert.True(t, apperror.IsValidationError(err), "expected validation error, got %v", err)
		})
	}
}

func TestRegisterDuplicate(t *testing.T) {
	t.Parallel()

	store := newFakeUserStore()
	svc := newTestService(store)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterRequest{RegNo: "S001", Password: "p", Role: RoleUser})
	require.NoError(t, err)

	_, err = svc.Register(ctx, RegisterRequest{RegNo: "S001", Password: "other", Role: RoleAdmin})
	assert.True(t, apperror.IsConflictError(err), "expected conflict error, got %v", err)
}

func TestRegisterDuplicateRace(t *testing.T) {
	t.Parallel()

	// The pre-check misses (store reports not-found) but the insert hits the
	// unique constraint: the store decided the race, the service still maps
	// it to a conflict.
	store := newFakeUserStore()
	store.createErr = ErrRegNoExists
	svc := newTestService(store)

	_, err := svc.Register(context.Background(), RegisterRequest{RegNo: "S001", Password: "p", Role: RoleUser})
	assert.True(t, apperror.IsConflictError(err), "expected conflict error, got %v", err)
}

func TestLoginIndistinguishability(t *testing.T) {
	t.Parallel()

	store := newFakeUserStore()
	svc := newTestService(store)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterRequest{RegNo: "S001", Password: "right", Role: RoleUser})
	require.NoError(t, err)

	_, wrongPassErr := svc.Login(ctx, LoginRequest{RegNo: "S001", Password: "wrong"})
	_, noUserErr := svc.Login(ctx, LoginRequest{RegNo: "GHOST", Password: "whatever"})

	require.Error(t, wrongPassErr)
	require.Error(t, noUserErr)

	wrongPassApp, ok := apperror.FromError(wrongPassErr)
	require.True(t, ok)
	noUserApp, ok := apperror.FromError(noUserErr)
	require.True(t, ok)

	// Same status code and same message: the caller cannot tell which
	// identities exist.
	assert.Equal(t, wrongPassApp.StatusCode(), noUserApp.StatusCode())
	assert.Equal(t, wrongPassApp.Message, noUserApp.Message)
}

func TestLoginValidation(t *testing.T) {
	t.Parallel()

	svc := newTestService(newFakeUserStore())

	_, err := svc.Login(context.Background(), LoginRequest{RegNo: "S001"})
	assert.True(t, apperror.IsValidationError(err))

	_, err = svc.Login(context.Background(), LoginRequest{Password: "p"})
	assert.True(t, apperror.IsValidationError(err))
}

func TestLoginTokenCarriesRoleClaims(t *testing.T) {
	t.Parallel()

	store := newFakeUserStore()
	codec := newTestCodec(time.Hour)
	svc := NewAuthService(store, codec)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterRequest{RegNo: "A001", Password: "p", Role: RoleAdmin})
	require.NoError(t, err)

	resp, err := svc.Login(ctx, LoginRequest{RegNo: "A001", Password: "p"})
	require.NoError(t, err)

	claims, err := codec.Verify(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "A001", claims.RegNo)
	assert.Equal(t, RoleAdmin, claims.Role)
}

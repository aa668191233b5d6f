package user

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/hun-meta/api-base-template/internal/apperror"
	"github.com/hun-meta/api-base-template/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// --- mocks ---

type mockUserStore struct{ mock.Mock }

func (m *mockUserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if u, _ := args.Get(0).(*domain.User); u != nil {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if u, _ := args.Get(0).(*domain.User); u != nil {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockUserStore) Put(ctx context.Context, u *domain.User) error {
	return m.Called(ctx, u).Error(0)
}
func (m *mockUserStore) QueryPage(ctx context.Context, limit int32, cursor string) ([]domain.User, string, error) {
	args := m.Called(ctx, limit, cursor)
	return args.Get(0).([]domain.User), args.String(1), args.Error(2)
}
func (m *mockUserStore) Get(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if u, _ := args.Get(0).(*domain.User); u != nil {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockUserStore) Update(ctx context.Context, userID string, updates map[string]interface{}) error {
	return m.Called(ctx, userID, updates).Error(0)
}
func (m *mockUserStore) SoftDelete(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

type mockJWTSigner struct{ mock.Mock }

func (m *mockJWTSigner) Sign(userID, role string) (string, error) {
	args := m.Called(userID, role)
	return args.String(0), args.Error(1)
}

func appStatus(t *testing.T, err error) int {
	t.Helper()
	var appErr *apperror.Error
	require.ErrorAs(t, err, &appErr)
	return appErr.Status
}

// --- Register ---

func TestRegister_HappyPath(t *testing.T) {
	repo := &mockUserStore{}
	repo.On("GetByUsername", mock.Anything, "alice").Return(nil, apperror.NotFound("user not found"))
	repo.On("GetByEmail", mock.Anything, "alice@example.com").Return(nil, apperror.NotFound("user not found"))
	repo.On("Put", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(repo, nil)
	u, err := svc.Register(context.Background(), domain.CreateUserRequest{
		Username: "alice", Password: "secret123", Email: "alice@example.com",
		FirstName: "Alice", LastName: "Smith",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, u.UserID)
	assert.Equal(t, domain.RoleUser, u.Role)
	assert.Equal(t, 1, u.Enable)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret123")))
	repo.AssertExpectations(t)
}

func TestRegister_UsernameTaken(t *testing.T) {
	repo := &mockUserStore{}
	repo.On("GetByUsername", mock.Anything, "alice").Return(&domain.User{UserID: "u1"}, nil)

	svc := NewService(repo, nil)
	_, err := svc.Register(context.Background(), domain.CreateUserRequest{
		Username: "alice", Password: "secret123", Email: "alice@example.com",
		FirstName: "Alice", LastName: "Smith",
	})
	assert.Equal(t, http.StatusConflict, appStatus(t, err))
}

func TestRegister_EmailTaken(t *testing.T) {
	repo := &mockUserStore{}
	repo.On("GetByUsername", mock.Anything, "alice").Return(nil, apperror.NotFound("user not found"))
	repo.On("GetByEmail", mock.Anything, "alice@example.com").Return(&domain.User{UserID: "u2"}, nil)

	svc := NewService(repo, nil)
	_, err := svc.Register(context.Background(), domain.CreateUserRequest{
		Username: "alice", Password: "secret123", Email: "alice@example.com",
		FirstName: "Alice", LastName: "Smith",
	})
	assert.Equal(t, http.StatusConflict, appStatus(t, err))
}

// --- Authenticate ---

func hashOf(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestAuthenticate_HappyPath(t *testing.T) {
	repo := &mockUserStore{}
	repo.On("GetByUsername", mock.Anything, "alice").Return(&domain.User{
		UserID: "u1", Username: "alice", Role: domain.RoleUser, Enable: 1,
		PasswordHash: hashOf(t, "secret123"),
	}, nil)
	signer := &mockJWTSigner{}
	signer.On("Sign", "u1", domain.RoleUser).Return("bearer-token", nil)

	svc := NewService(repo, signer)
	u, bearer, err := svc.Authenticate(context.Background(), domain.LoginRequest{Username: "alice", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, "u1", u.UserID)
	assert.Equal(t, "bearer-token", bearer)
	signer.AssertExpectations(t)
}

func TestAuthenticate_WrongPassword(t *testing.T) {
	repo := &mockUserStore{}
	repo.On("GetByUsername", mock.Anything, "alice").Return(&domain.User{
		UserID: "u1", Enable: 1, PasswordHash: hashOf(t, "secret123"),
	}, nil)

	svc := NewService(repo, &mockJWTSigner{})
	_, _, err := svc.Authenticate(context.Background(), domain.LoginRequest{Username: "alice", Password: "wrong"})
	assert.Equal(t, http.StatusUnauthorized, appStatus(t, err))
}

func TestAuthenticate_UnknownUser_SameAnswer(t *testing.T) {
	repo := &mockUserStore{}
	repo.On("GetByUsername", mock.Anything, "ghost").Return(nil, apperror.NotFound("user not found"))

	svc := NewService(repo, &mockJWTSigner{})
	_, _, err := svc.Authenticate(context.Background(), domain.LoginRequest{Username: "ghost", Password: "whatever"})
	// Must not leak whether the user exists: 401, not 404.
	assert.Equal(t, http.StatusUnauthorized, appStatus(t, err))
}

func TestAuthenticate_DisabledUser(t *testing.T) {
	repo := &mockUserStore{}
	repo.On("GetByUsername", mock.Anything, "alice").Return(&domain.User{
		UserID: "u1", Enable: 0, PasswordHash: hashOf(t, "secret123"),
	}, nil)

	svc := NewService(repo, &mockJWTSigner{})
	_, _, err := svc.Authenticate(context.Background(), domain.LoginRequest{Username: "alice", Password: "secret123"})
	assert.Equal(t, http.StatusUnauthorized, appStatus(t, err))
}

func TestAuthenticate_NoSignerReportsMissingEnv(t *testing.T) {
	svc := NewService(&mockUserStore{}, nil)
	_, _, err := svc.Authenticate(context.Background(), domain.LoginRequest{Username: "alice", Password: "x"})
	var appErr *apperror.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusInternalServerError, appErr.Status)
	assert.Contains(t, appErr.Message, "JWT_PRIVATE_KEY_PATH")
}

// --- Update ---

func TestUpdate_InvalidRole(t *testing.T) {
	svc := NewService(&mockUserStore{}, nil)
	role := "superuser"
	_, err := svc.Update(context.Background(), "u1", domain.UpdateUserRequest{Role: &role})
	assert.Equal(t, http.StatusBadRequest, appStatus(t, err))
}

func TestUpdate_NoFields_ReturnsCurrent(t *testing.T) {
	repo := &mockUserStore{}
	repo.On("Get", mock.Anything, "u1").Return(&domain.User{UserID: "u1"}, nil)

	svc := NewService(repo, nil)
	u, err := svc.Update(context.Background(), "u1", domain.UpdateUserRequest{})
	require.NoError(t, err)
	assert.Equal(t, "u1", u.UserID)
	repo.AssertNotCalled(t, "Update")
}

func TestUpdate_HappyPath(t *testing.T) {
	repo := &mockUserStore{}
	newName := "alice2"
	repo.On("Update", mock.Anything, "u1", map[string]interface{}{fieldUsername: "alice2"}).Return(nil)
	repo.On("Get", mock.Anything, "u1").Return(&domain.User{UserID: "u1", Username: "alice2"}, nil)

	svc := NewService(repo, nil)
	u, err := svc.Update(context.Background(), "u1", domain.UpdateUserRequest{Username: &newName})
	require.NoError(t, err)
	assert.Equal(t, "alice2", u.Username)
	repo.AssertExpectations(t)
}

func TestUpdate_StoreFailurePropagates(t *testing.T) {
	repo := &mockUserStore{}
	newName := "alice2"
	storeErr := errors.New("throughput exceeded")
	repo.On("Update", mock.Anything, "u1", mock.Anything).Return(storeErr)

	svc := NewService(repo, nil)
	_, err := svc.Update(context.Background(), "u1", domain.UpdateUserRequest{Username: &newName})
	assert.ErrorIs(t, err, storeErr)
}

// --- List / Delete ---

func TestList_DefaultLimit(t *testing.T) {
	repo := &mockUserStore{}
	repo.On("QueryPage", mock.Anything, int32(50), "").Return([]domain.User{}, "", nil)

	svc := NewService(repo, nil)
	_, _, err := svc.List(context.Background(), 0, "")
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestDelete_SoftDeletes(t *testing.T) {
	repo := &mockUserStore{}
	repo.On("SoftDelete", mock.Anything, "u1").Return(nil)

	svc := NewService(repo, nil)
	require.NoError(t, svc.Delete(context.Background(), "u1"))
	repo.AssertExpectations(t)
}

package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/ramonankersmit/vlier-planner-sub001/internal/models"
	appErrors "github.com/ramonankersmit/vlier-planner-sub001/pkg/errors"
)

type mockUserRepo struct {
	user    *models.User
	touched []string
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.user == nil || m.user.Email != email {
		return nil, sql.ErrNoRows
	}
	return m.user, nil
}

func (m *mockUserRepo) TouchLastLogin(ctx context.Context, userID string) error {
	m.touched = append(m.touched, userID)
	return nil
}

func testUser(t *testing.T, password string) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &models.User{
		ID:           "user-1",
		Email:        "docent@vlier.nl",
		PasswordHash: string(hash),
		FullName:     "Docent Wiskunde",
		Role:         models.RoleTeacher,
		Active:       true,
	}
}

func TestLoginIssuesToken(t *testing.T) {
	repo := &mockUserRepo{user: testUser(t, "geheim123")}
	svc := NewAuthService(repo, nil, nil, "test-secret", time.Hour)

	resp, err := svc.Login(context.Background(), models.LoginRequest{Email: "docent@vlier.nl", Password: "geheim123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, int64(3600), resp.ExpiresIn)
	assert.Equal(t, models.RoleTeacher, resp.User.Role)
	assert.Equal(t, []string{"user-1"}, repo.touched)

	claims, err := svc.ValidateToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "docent@vlier.nl", claims.Email)
}

func TestLoginWrongPassword(t *testing.T) {
	repo := &mockUserRepo{user: testUser(t, "geheim123")}
	svc := NewAuthService(repo, nil, nil, "test-secret", time.Hour)

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "docent@vlier.nl", Password: "fout"})
	assert.ErrorIs(t, err, appErrors.ErrInvalidCredentials)
	assert.Empty(t, repo.touched)
}

func TestLoginUnknownUser(t *testing.T) {
	svc := NewAuthService(&mockUserRepo{}, nil, nil, "test-secret", time.Hour)

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "nobody@vlier.nl", Password: "x"})
	assert.ErrorIs(t, err, appErrors.ErrInvalidCredentials)
}

func TestLoginInactiveAccount(t *testing.T) {
	user := testUser(t, "geheim123")
	user.Active = false
	svc := NewAuthService(&mockUserRepo{user: user}, nil, nil, "test-secret", time.Hour)

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "docent@vlier.nl", Password: "geheim123"})
	assert.ErrorIs(t, err, appErrors.ErrInactiveAccount)
}

func TestValidateTokenRejectsForeignSecret(t *testing.T) {
	repo := &mockUserRepo{user: testUser(t, "geheim123")}
	issuer := NewAuthService(repo, nil, nil, "secret-a", time.Hour)
	verifier := NewAuthService(repo, nil, nil, "secret-b", time.Hour)

	resp, err := issuer.Login(context.Background(), models.LoginRequest{Email: "docent@vlier.nl", Password: "geheim123"})
	require.NoError(t, err)

	_, err = verifier.ValidateToken(resp.AccessToken)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrUnauthorized.Code, appErrors.FromError(err).Code)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	repo := &mockUserRepo{user: testUser(t, "geheim123")}
	svc := NewAuthService(repo, nil, nil, "test-secret", time.Hour)
	svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	resp, err := svc.Login(context.Background(), models.LoginRequest{Email: "docent@vlier.nl", Password: "geheim123"})
	require.NoError(t, err)

	_, err = svc.ValidateToken(resp.AccessToken)
	require.Error(t, err)
}

package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ramonankersmit/vlier-planner-sub001/internal/dto"
	"github.com/ramonankersmit/vlier-planner-sub001/internal/models"
	"github.com/ramonankersmit/vlier-planner-sub001/internal/service"
)

type overviewServiceMock struct {
	response *dto.OverviewResponse
}

func (m *overviewServiceMock) Overview(ctx context.Context, req dto.OverviewRequest) (*dto.OverviewResponse, error) {
	return m.response, nil
}

type vacationServiceMock struct{}

func (m *vacationServiceMock) List(ctx context.Context, schoolYear string, activeOnly bool) ([]models.SchoolVacation, error) {
	return nil, nil
}

func (m *vacationServiceMock) Replace(ctx context.Context, req dto.ReplaceVacationsRequest) ([]models.SchoolVacation, error) {
	return nil, nil
}

type authServiceMock struct{}

func (m *authServiceMock) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	return &models.LoginResponse{AccessToken: "token"}, nil
}

type exportServiceMock struct{}

func (m *exportServiceMock) Export(ctx context.Context, req dto.OverviewRequest, format string) (*service.ExportResult, error) {
	return &service.ExportResult{Content: []byte("Week"), ContentType: "text/csv", Filename: "weekoverzicht.csv"}, nil
}

func signedToken(t *testing.T, role models.UserRole) string {
	t.Helper()
	claims := &models.JWTClaims{
		UserID: "user-1",
		Role:   role,
		Email:  "docent@vlier.nl",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func testRouter(t *testing.T, exportEnabled bool) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	auth := service.NewAuthService(nil, nil, nil, "test-secret", time.Hour)
	handlers := Handlers{
		Auth:      NewAuthHandler(&authServiceMock{}),
		Documents: NewDocumentHandler(newDocumentServiceMock()),
		Vacations: NewVacationHandler(&vacationServiceMock{}),
		Overview:  NewOverviewHandler(&overviewServiceMock{response: &dto.OverviewResponse{}}),
		Export:    NewExportHandler(&exportServiceMock{}),
		Metrics:   NewMetricsHandler(service.NewMetricsService()),
	}

	r := gin.New()
	RegisterRoutes(r, "/api/v1", handlers, auth, exportEnabled)
	return r
}

func TestRoutesPublicReads(t *testing.T) {
	r := testRouter(t, true)

	for _, path := range []string{"/api/v1/docs", "/api/v1/vacations", "/api/v1/weeks", "/api/v1/weeks/export"} {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, path, nil)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}

func TestRoutesDocsListToleratesBadToken(t *testing.T) {
	r := testRouter(t, true)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/docs", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRoutesMutationsRequireToken(t *testing.T) {
	r := testRouter(t, true)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodDelete, "/api/v1/docs/f1", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRoutesVacationReplaceRequiresAdmin(t *testing.T) {
	r := testRouter(t, true)
	token := signedToken(t, models.RoleTeacher)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPut, "/api/v1/vacations", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRoutesExportDisabled(t *testing.T) {
	r := testRouter(t, false)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/weeks/export", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRoutesMetrics(t *testing.T) {
	r := testRouter(t, true)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/metrics", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
}

package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"email-responder-backend/internal/reply/domain"
	"email-responder-backend/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type stubUsecase struct{}

func (stubUsecase) GenerateReply(_ context.Context, emailText, tone string) (*domain.EmailReply, error) {
	return &domain.EmailReply{EmailText: emailText, Tone: domain.Tone(tone), ReplyText: "stub"}, nil
}

func (stubUsecase) ListReplies(_ context.Context, _ int) ([]domain.EmailReply, error) {
	return []domain.EmailReply{}, nil
}

func (stubUsecase) GetReplyByID(_ context.Context, _ uint) (*domain.EmailReply, error) {
	return nil, domain.ErrReplyNotFound
}

func newRouter(t *testing.T, db *gorm.DB, cfg *config.Config) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	SetupRoutes(r, stubUsecase{}, db, cfg, zap.NewNop())
	return r
}

// brokenDB returns a *gorm.DB that was never opened; DB() fails on it
// without panicking.
func brokenDB() *gorm.DB {
	return &gorm.DB{Config: &gorm.Config{}}
}

func doGet(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func jsonBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestRootInfo_StatelessMode(t *testing.T) {
	r := newRouter(t, nil, &config.Config{})

	w := doGet(r, "/")
	require.Equal(t, http.StatusOK, w.Code)

	body := jsonBody(t, w)
	assert.Equal(t, "AI Email Responder API", body["message"])
	assert.Equal(t, "1.0", body["version"])
	assert.Equal(t, []interface{}{"/generate-reply"}, body["endpoints"])
}

func TestRootInfo_PersistedMode(t *testing.T) {
	r := newRouter(t, brokenDB(), &config.Config{})

	w := doGet(r, "/")
	require.Equal(t, http.StatusOK, w.Code)

	body := jsonBody(t, w)
	assert.Equal(t, []interface{}{"/generate-reply", "/history", "/history/{id}"}, body["endpoints"])
}

func TestHealth_GeminiConfigured(t *testing.T) {
	r := newRouter(t, nil, &config.Config{GeminiAPIKey: "key-123"})

	w := doGet(r, "/health")
	require.Equal(t, http.StatusOK, w.Code)

	body := jsonBody(t, w)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, true, body["gemini_api_configured"])
}

func TestHealth_GeminiNotConfigured(t *testing.T) {
	r := newRouter(t, nil, &config.Config{})

	body := jsonBody(t, doGet(r, "/health"))
	assert.Equal(t, false, body["gemini_api_configured"])
}

func TestHealth_StatelessOmitsDatabase(t *testing.T) {
	r := newRouter(t, nil, &config.Config{GeminiAPIKey: "key-123"})

	body := jsonBody(t, doGet(r, "/health"))
	assert.NotContains(t, body, "database")
}

func TestHealth_PersistedReportsDatabaseDown(t *testing.T) {
	r := newRouter(t, brokenDB(), &config.Config{GeminiAPIKey: "key-123"})

	w := doGet(r, "/health")
	require.Equal(t, http.StatusOK, w.Code)

	body := jsonBody(t, w)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "down", body["database"])
}

func TestHistoryRoutes_AbsentInStatelessMode(t *testing.T) {
	r := newRouter(t, nil, &config.Config{})

	assert.Equal(t, http.StatusNotFound, doGet(r, "/history").Code)
	assert.Equal(t, http.StatusNotFound, doGet(r, "/history/5").Code)
}

func TestHistoryRoutes_PresentInPersistedMode(t *testing.T) {
	r := newRouter(t, brokenDB(), &config.Config{})

	w := doGet(r, "/history")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())

	// Stub reports every id as unknown
	assert.Equal(t, http.StatusNotFound, doGet(r, "/history/5").Code)
}

func TestMetricsEndpoint(t *testing.T) {
	r := newRouter(t, nil, &config.Config{})

	w := doGet(r, "/metrics")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "go_goroutines")
}

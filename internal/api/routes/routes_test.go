package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tailorhq/resume-tailor/internal/api/handlers"
	"github.com/tailorhq/resume-tailor/internal/models"
	"github.com/tailorhq/resume-tailor/internal/services"
	"github.com/tailorhq/resume-tailor/internal/utils"
)

const testSecret = "super-secret-signing-key"

type stubJobService struct {
	created *models.JobDescription
}

func (s *stubJobService) Create(ctx context.Context, userID string, job *models.JobDescription) (*models.JobDescription, error) {
	if job.Title == "" || job.Company == "" || job.Description == "" {
		return nil, utils.E(utils.CodeInvalidArgument, "JobService.Create", "title, company, and description are required", nil)
	}
	job.UserID = userID
	s.created = job
	return job, nil
}

func (s *stubJobService) Get(ctx context.Context, userID, id string) (*models.JobDescription, error) {
	return nil, utils.E(utils.CodeNotFound, "JobService.Get", "job description not found", nil)
}

func (s *stubJobService) List(ctx context.Context, userID string) ([]models.JobDescription, error) {
	return []models.JobDescription{}, nil
}

type stubTailorService struct {
	lastUserID string
}

func (s *stubTailorService) Tailor(ctx context.Context, userID string, in services.TailorInput) (*models.TailoringResult, error) {
	s.lastUserID = userID
	return &models.TailoringResult{
		UserID:         userID,
		Score:          82,
		KeywordMatches: []string{"golang"},
		Suggestions:    []string{},
		Metadata:       models.TailoringMetadata{Source: models.SourceAI},
	}, nil
}

func (s *stubTailorService) History(ctx context.Context, userID string) ([]models.TailoringResult, error) {
	return []models.TailoringResult{}, nil
}

type stubProfileService struct{}

func (stubProfileService) GetMe(ctx context.Context, userID string) (*models.Profile, error) {
	return nil, nil
}

func (stubProfileService) Save(ctx context.Context, userID string, content *models.ResumeContent) (*models.Profile, error) {
	return &models.Profile{UserID: userID, ResumeContent: content}, nil
}

// newRouter builds the full route table over stub services. SUPABASE_JWT_SECRET
// must be set before RegisterRoutes because JWTAuth reads it at construction.
func newRouter(t *testing.T) (*gin.Engine, *stubTailorService) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv("SUPABASE_JWT_SECRET", testSecret)
	t.Setenv("SUPABASE_JWT_ISSUER", "")
	t.Setenv("SUPABASE_JWT_AUDIENCE", "")

	tailorSvc := &stubTailorService{}
	r := gin.New()
	RegisterRoutes(r, Deps{
		Job:     handlers.NewJobHandler(&stubJobService{}),
		Tailor:  handlers.NewTailorHandler(tailorSvc),
		Profile: handlers.NewProfileHandler(stubProfileService{}),
	})
	return r, tailorSvc
}

func signToken(t *testing.T, subject string) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := tok.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func doJSON(r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestTailorRequiresAuth(t *testing.T) {
	r, _ := newRouter(t)

	w := doJSON(r, http.MethodPost, "/resume/tailor", "", gin.H{
		"title": "Engineer", "company": "Acme", "description": "golang", "rawText": "golang",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	body := decodeEnvelope(t, w)
	assert.Equal(t, false, body["success"])
	assert.NotEmpty(t, body["error"])
}

func TestTailorRejectsForgedToken(t *testing.T) {
	r, _ := newRouter(t)

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "user-1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	forged, err := tok.SignedString([]byte("some-other-secret"))
	require.NoError(t, err)

	w := doJSON(r, http.MethodPost, "/resume/tailor", forged, gin.H{})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, false, decodeEnvelope(t, w)["success"])
}

func TestTailorWithValidToken(t *testing.T) {
	r, tailorSvc := newRouter(t)

	w := doJSON(r, http.MethodPost, "/resume/tailor", signToken(t, "user-42"), gin.H{
		"title": "Engineer", "company": "Acme", "description": "golang", "rawText": "golang resume",
	})

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeEnvelope(t, w)
	assert.Equal(t, true, body["success"])
	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(82), data["score"])
	assert.Equal(t, "user-42", tailorSvc.lastUserID)
}

func TestPingIsPublic(t *testing.T) {
	r, _ := newRouter(t)

	w := doJSON(r, http.MethodGet, "/ping", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUnknownRouteEnvelope(t *testing.T) {
	r, _ := newRouter(t)

	w := doJSON(r, http.MethodGet, "/nope", "", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	body := decodeEnvelope(t, w)
	assert.Equal(t, false, body["success"])
	assert.NotEmpty(t, body["error"])
}

func TestWrongMethodEnvelope(t *testing.T) {
	r, _ := newRouter(t)

	w := doJSON(r, http.MethodDelete, "/jobs", "", nil)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	body := decodeEnvelope(t, w)
	assert.Equal(t, false, body["success"])
	assert.NotEmpty(t, body["error"])
}

func TestCreateJob(t *testing.T) {
	r, _ := newRouter(t)

	w := doJSON(r, http.MethodPost, "/jobs", signToken(t, "user-1"), gin.H{
		"title": "Engineer", "company": "Acme", "description": "golang services",
	})

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, true, decodeEnvelope(t, w)["success"])
}

func TestCreateJobMissingFields(t *testing.T) {
	r, _ := newRouter(t)

	w := doJSON(r, http.MethodPost, "/jobs", signToken(t, "user-1"), gin.H{
		"title": "Engineer",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeEnvelope(t, w)
	assert.Equal(t, false, body["success"])
	assert.NotEmpty(t, body["error"])
}

func TestProfileMeWithoutProfile(t *testing.T) {
	r, _ := newRouter(t)

	w := doJSON(r, http.MethodGet, "/profile", signToken(t, "user-1"), nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeEnvelope(t, w)
	assert.Equal(t, true, body["success"])
	_, hasData := body["data"]
	assert.False(t, hasData)
}

func TestHistoryEmptyList(t *testing.T) {
	r, _ := newRouter(t)

	w := doJSON(r, http.MethodGet, "/resumes", signToken(t, "user-1"), nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeEnvelope(t, w)
	assert.Equal(t, true, body["success"])
	data, ok := body["data"].([]any)
	require.True(t, ok)
	assert.Empty(t, data)
}

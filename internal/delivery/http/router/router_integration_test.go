package router

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"nutribalance/config"
	"nutribalance/internal/delivery/http/middleware"
	"nutribalance/internal/delivery/http/router/handler"
	"nutribalance/internal/delivery/http/validator"
	"nutribalance/internal/infra/localstore"
	"nutribalance/internal/infra/reference"
	mockService "nutribalance/internal/mocks/service"
	"nutribalance/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// newTestServer wires the full HTTP stack over a temp-dir store and the
// built-in reference tables, with a mocked advisor behind the coaching
// routes.
func newTestServer(t *testing.T, advisor *mockService.MockAdvisorService) *echo.Echo {
	t.Helper()

	cfg := &config.Config{}
	cfg.Store.Path = t.TempDir()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	repo, err := localstore.New(localstore.Params{Config: cfg, Logger: logger})
	require.NoError(t, err)

	catalog, err := reference.New(reference.Params{Config: cfg, Logger: logger})
	require.NoError(t, err)

	tracker, err := impl.NewTrackerService(repo, catalog, logger)
	require.NoError(t, err)

	advice := impl.NewAdviceService(advisor, tracker, logger)

	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	NewRouter(RouterParams{
		ProfileHandler:      handler.NewProfileHandler(tracker, logger),
		MealHandler:         handler.NewMealHandler(tracker, logger),
		ExerciseHandler:     handler.NewExerciseHandler(tracker, logger),
		SummaryHandler:      handler.NewSummaryHandler(tracker, logger),
		AdviceHandler:       handler.NewAdviceHandler(advice, logger),
		RequestIDMiddleware: middleware.NewRequestIDMiddleware(logger),
	}).RegisterRoutes(e)

	return e
}

func doJSON(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var envelope map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))

	return envelope
}

func TestRouter_HealthCheck(t *testing.T) {
	e := newTestServer(t, new(mockService.MockAdvisorService))

	rec := doJSON(e, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestRouter_ProfileDefaultsAndPartialUpdate(t *testing.T) {
	e := newTestServer(t, new(mockService.MockAdvisorService))

	rec := doJSON(e, http.MethodGet, "/profile", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	envelope := decodeEnvelope(t, rec)
	data := envelope["data"].(map[string]any)
	assert.InDelta(t, 75.0, data["weight_kg"], 0.001)
	assert.InDelta(t, 180.0, data["height_cm"], 0.001)
	assert.Equal(t, "maintenance", data["goal"])

	rec = doJSON(e, http.MethodPatch, "/profile", `{"weight_kg": 80, "goal": "loss"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	envelope = decodeEnvelope(t, rec)
	data = envelope["data"].(map[string]any)
	assert.InDelta(t, 80.0, data["weight_kg"], 0.001)
	assert.Equal(t, "loss", data["goal"])
	// Untouched fields keep their value.
	assert.InDelta(t, 180.0, data["height_cm"], 0.001)
}

func TestRouter_ProfileRejectsUnknownGender(t *testing.T) {
	e := newTestServer(t, new(mockService.MockAdvisorService))

	rec := doJSON(e, http.MethodPatch, "/profile", `{"gender": "robot"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, false, envelope["success"])
}

func TestRouter_RecordMealScalesMassBasedFood(t *testing.T) {
	e := newTestServer(t, new(mockService.MockAdvisorService))

	rec := doJSON(e, http.MethodPost, "/meals", `{"food": "Pechuga de Pollo", "quantity": 150}`)
	assert.Equal(t, http.StatusCreated, rec.Code)

	envelope := decodeEnvelope(t, rec)
	data := envelope["data"].(map[string]any)
	assert.InDelta(t, 248, data["calories"], 0.001)
	assert.InDelta(t, 46.5, data["protein"], 0.001)

	rec = doJSON(e, http.MethodGet, "/meals", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	envelope = decodeEnvelope(t, rec)
	assert.Len(t, envelope["data"].([]any), 1)
}

func TestRouter_RecordMealUnknownFood(t *testing.T) {
	e := newTestServer(t, new(mockService.MockAdvisorService))

	rec := doJSON(e, http.MethodPost, "/meals", `{"food": "Ambrosia", "quantity": 1}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, false, envelope["success"])
	errorInfo := envelope["error"].(map[string]any)
	assert.Equal(t, "FOOD_NOT_FOUND", errorInfo["code"])
}

func TestRouter_RecordMealRejectsNonPositiveQuantity(t *testing.T) {
	e := newTestServer(t, new(mockService.MockAdvisorService))

	rec := doJSON(e, http.MethodPost, "/meals", `{"food": "Manzana", "quantity": 0}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_DeleteMeal(t *testing.T) {
	e := newTestServer(t, new(mockService.MockAdvisorService))

	rec := doJSON(e, http.MethodPost, "/meals", `{"food": "Manzana", "quantity": 1}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	envelope := decodeEnvelope(t, rec)
	id := envelope["data"].(map[string]any)["id"].(string)

	rec = doJSON(e, http.MethodDelete, "/meals/"+id, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(e, http.MethodGet, "/meals", "")
	envelope = decodeEnvelope(t, rec)
	assert.Empty(t, envelope["data"])

	// Deleting an absent id is a silent no-op; a malformed id is not.
	rec = doJSON(e, http.MethodDelete, "/meals/"+uuid.New().String(), "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(e, http.MethodDelete, "/meals/not-a-uuid", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_RecordExerciseDerivesBurn(t *testing.T) {
	e := newTestServer(t, new(mockService.MockAdvisorService))

	rec := doJSON(e, http.MethodPost, "/exercises", `{"type_id": "running", "duration_minutes": 30}`)
	assert.Equal(t, http.StatusCreated, rec.Code)

	// 8.8 MET at the default 75kg for 30 minutes.
	envelope := decodeEnvelope(t, rec)
	data := envelope["data"].(map[string]any)
	assert.InDelta(t, 347, data["calories_burned"], 0.001)

	rec = doJSON(e, http.MethodPost, "/exercises", `{"type_id": "levitation", "duration_minutes": 30}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	envelope = decodeEnvelope(t, rec)
	errorInfo := envelope["error"].(map[string]any)
	assert.Equal(t, "EXERCISE_TYPE_NOT_FOUND", errorInfo["code"])
}

func TestRouter_SummaryReflectsLogs(t *testing.T) {
	e := newTestServer(t, new(mockService.MockAdvisorService))

	rec := doJSON(e, http.MethodGet, "/summary", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec)
	data := envelope["data"].(map[string]any)
	target := data["target_calories"].(float64)
	baseRemaining := data["remaining"].(float64)
	assert.InDelta(t, target, baseRemaining, 0.001)

	rec = doJSON(e, http.MethodPost, "/meals", `{"food": "Manzana", "quantity": 1}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(e, http.MethodGet, "/summary", "")
	envelope = decodeEnvelope(t, rec)
	data = envelope["data"].(map[string]any)
	assert.Less(t, data["remaining"].(float64), baseRemaining)
}

func TestRouter_ReferenceTables(t *testing.T) {
	e := newTestServer(t, new(mockService.MockAdvisorService))

	rec := doJSON(e, http.MethodGet, "/reference/foods", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.Len(t, envelope["data"].([]any), 19)

	rec = doJSON(e, http.MethodGet, "/reference/foods?q=arroz", "")
	envelope = decodeEnvelope(t, rec)
	assert.Len(t, envelope["data"].([]any), 2)

	rec = doJSON(e, http.MethodGet, "/reference/exercises", "")
	envelope = decodeEnvelope(t, rec)
	assert.Len(t, envelope["data"].([]any), 8)

	rec = doJSON(e, http.MethodGet, "/reference/activity-levels", "")
	envelope = decodeEnvelope(t, rec)
	assert.Len(t, envelope["data"].([]any), 5)
}

func TestRouter_AskAdvice(t *testing.T) {
	advisor := new(mockService.MockAdvisorService)
	advisor.On("Advise", mock.Anything, "What should I eat for dinner?", mock.Anything).
		Return("Grilled chicken with rice.", nil)

	e := newTestServer(t, advisor)

	rec := doJSON(e, http.MethodPost, "/advice", `{"question": "What should I eat for dinner?"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec)
	data := envelope["data"].(map[string]any)
	assert.Equal(t, "Grilled chicken with rice.", data["reply"])

	rec = doJSON(e, http.MethodPost, "/advice", `{"question": ""}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_AnalyzeMealPhoto(t *testing.T) {
	advisor := new(mockService.MockAdvisorService)
	advisor.On("AnalyzeMealImage", mock.Anything, mock.Anything, "image/png").
		Return("Around 420 kcal.", nil)

	e := newTestServer(t, advisor)

	encoded := base64.StdEncoding.EncodeToString([]byte("png bytes"))
	body := fmt.Sprintf(`{"image_base64": %q, "mime_type": "image/png"}`, encoded)

	rec := doJSON(e, http.MethodPost, "/advice/photo", body)
	assert.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec)
	data := envelope["data"].(map[string]any)
	assert.Equal(t, "Around 420 kcal.", data["reply"])

	rec = doJSON(e, http.MethodPost, "/advice/photo", `{"image_base64": "%%%not-base64%%%"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	envelope = decodeEnvelope(t, rec)
	errorInfo := envelope["error"].(map[string]any)
	assert.Equal(t, "VALIDATION_FAILED", errorInfo["code"])
}

func TestRouter_RequestIDHeaderPropagates(t *testing.T) {
	e := newTestServer(t, new(mockService.MockAdvisorService))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-Id", "trace-123")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "trace-123", rec.Header().Get("X-Request-Id"))

	// A missing header gets a generated id.
	rec = doJSON(e, http.MethodGet, "/health", "")
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

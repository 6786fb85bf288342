package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/fillme/fillme-backend/internal/handlers"
	"github.com/fillme/fillme-backend/internal/logger"
	"github.com/fillme/fillme-backend/internal/middleware"
	"github.com/fillme/fillme-backend/internal/questionnaire"
	"github.com/fillme/fillme-backend/internal/repos"
	"github.com/fillme/fillme-backend/internal/server"
	"github.com/fillme/fillme-backend/internal/services"
	"github.com/fillme/fillme-backend/internal/types"
)

const adminKey = "test-admin-key"

const validPayload = `{
	"full_name": "Asha",
	"email": "a@b.com",
	"age_group": "20–30",
	"household_type": "Living alone",
	"awareness": true,
	"platforms_used": ["Zepto"],
	"most_used_platform": "Zepto",
	"usage_frequency": "Daily",
	"average_order_value": "Below ₹300",
	"time_saved": "15–30 minutes",
	"product_categories": ["Groceries & staples"],
	"purchase_frequency_change": "No change",
	"impulse_buying": "Neutral",
	"price_sensitivity": 3,
	"price_comparison": "Almost the same",
	"local_shops_impact": "No change",
	"importance_delivery": "Important",
	"importance_convenience": "Important",
	"importance_pricing": "Neutral",
	"importance_availability": "Neutral",
	"overall_satisfaction": "Satisfied",
	"future_usage_intent": "Yes"
}`

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&types.SurveyResponse{}))

	log := &logger.Logger{SugaredLogger: zap.NewNop().Sugar()}
	surveyRepo := repos.NewSurveyResponseRepo(db, log)
	surveyService := services.NewSurveyService(db, log, surveyRepo)
	surveyHandler := handlers.NewSurveyHandler(log, surveyService, 100)
	adminGate := middleware.NewAdminKeyMiddleware(log, adminKey)

	return server.NewRouter(server.RouterConfig{
		SurveyHandler:      surveyHandler,
		AdminKeyMiddleware: adminGate,
	})
}

func submit(t *testing.T, router *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/submit-response", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSubmitResponseAccepted(t *testing.T) {
	router := newTestRouter(t)
	w := submit(t, router, validPayload)
	require.Equal(t, http.StatusCreated, w.Code)

	var stored types.SurveyResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stored))
	require.Equal(t, uint(1), stored.ID)
	require.False(t, stored.SubmittedAt.IsZero())
	require.Equal(t, "Asha", stored.FullName)
	require.Equal(t, []string{"Zepto"}, []string(stored.PlatformsUsed))
}

func TestSubmitResponseValidationErrorNamesField(t *testing.T) {
	router := newTestRouter(t)
	payload := strings.Replace(validPayload, `"age_group": "20–30"`, `"age_group": "Teenager"`, 1)
	w := submit(t, router, payload)

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	var envelope handlers.ErrorEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.Equal(t, "validation_error", envelope.Error.Code)
	require.Contains(t, envelope.Error.Message, "age_group")
}

func TestSubmitResponseWrongTypedFieldNamesField(t *testing.T) {
	router := newTestRouter(t)
	cases := []struct {
		name  string
		from  string
		to    string
		field string
	}{
		{"string for bool", `"awareness": true`, `"awareness": "yes"`, "awareness"},
		{"string for int", `"price_sensitivity": 3`, `"price_sensitivity": "3"`, "price_sensitivity"},
		{"string for list", `"platforms_used": ["Zepto"]`, `"platforms_used": "Zepto"`, "platforms_used"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			payload := strings.Replace(validPayload, tc.from, tc.to, 1)
			w := submit(t, router, payload)

			require.Equal(t, http.StatusUnprocessableEntity, w.Code)
			var envelope handlers.ErrorEnvelope
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
			require.Equal(t, "validation_error", envelope.Error.Code)
			require.Contains(t, envelope.Error.Message, tc.field)
		})
	}
}

func TestSubmitResponseMalformedBody(t *testing.T) {
	router := newTestRouter(t)
	w := submit(t, router, `{"full_name": `)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

type failingSurveyService struct{}

func (failingSurveyService) Submit(ctx context.Context, in questionnaire.SubmissionInput) (*types.SurveyResponse, error) {
	return nil, errors.New("insert failed")
}

func (failingSurveyService) List(ctx context.Context, offset, limit int) ([]*types.SurveyResponse, error) {
	return nil, errors.New("select failed")
}

func (failingSurveyService) ExportExcel(ctx context.Context) (*services.ExportFile, error) {
	return nil, errors.New("select failed")
}

func TestHandlerLogsCarryRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zap.ErrorLevel)
	log := &logger.Logger{SugaredLogger: zap.New(core).Sugar()}

	surveyHandler := handlers.NewSurveyHandler(log, failingSurveyService{}, 100)
	adminGate := middleware.NewAdminKeyMiddleware(log, adminKey)
	router := server.NewRouter(server.RouterConfig{
		SurveyHandler:      surveyHandler,
		AdminKeyMiddleware: adminGate,
	})

	req := httptest.NewRequest(http.MethodPost, "/submit-response", bytes.NewBufferString(validPayload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", "req-123")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Equal(t, "req-123", w.Header().Get("X-Request-ID"))

	entries := logs.FilterMessage("SubmitResponse failed").All()
	require.Len(t, entries, 1)
	require.Equal(t, "req-123", entries[0].ContextMap()["request_id"])
}

func TestListResponsesRequiresKey(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/responses", nil))
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/responses?key=wrong", nil))
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestListResponsesPagination(t *testing.T) {
	router := newTestRouter(t)
	for i := 0; i < 3; i++ {
		require.Equal(t, http.StatusCreated, submit(t, router, validPayload).Code)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/responses?key="+adminKey+"&skip=1&limit=1", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var listed []types.SurveyResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	require.Len(t, listed, 1)
	require.Equal(t, uint(2), listed[0].ID)
}

func TestExportExcelEmptyStore(t *testing.T) {
	router := newTestRouter(t)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/export-excel?key="+adminKey, nil))
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestExportExcelReturnsAttachment(t *testing.T) {
	router := newTestRouter(t)
	require.Equal(t, http.StatusCreated, submit(t, router, validPayload).Code)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/export-excel?key="+adminKey, nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", w.Header().Get("Content-Type"))
	require.Contains(t, w.Header().Get("Content-Disposition"), "survey_responses.xlsx")
	require.NotEmpty(t, w.Body.Bytes())
}

func TestExportExcelRequiresKey(t *testing.T) {
	router := newTestRouter(t)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/export-excel", nil))
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/fillme/fillme-backend/internal/logger"
	"github.com/fillme/fillme-backend/internal/middleware"
	pkgerrors "github.com/fillme/fillme-backend/internal/pkg/errors"
	"github.com/fillme/fillme-backend/internal/questionnaire"
	"github.com/fillme/fillme-backend/internal/services"
)

type SurveyHandler struct {
	log           *logger.Logger
	surveyService services.SurveyService
	defaultLimit  int
}

func NewSurveyHandler(log *logger.Logger, surveyService services.SurveyService, defaultLimit int) *SurveyHandler {
	if defaultLimit <= 0 {
		defaultLimit = 100
	}
	return &SurveyHandler{
		log:           log.With("handler", "SurveyHandler"),
		surveyService: surveyService,
		defaultLimit:  defaultLimit,
	}
}

// requestLog scopes the handler logger to the current request id.
func (h *SurveyHandler) requestLog(c *gin.Context) *logger.Logger {
	if id := c.GetString(middleware.RequestIDKey); id != "" {
		return h.log.With("request_id", id)
	}
	return h.log
}

// POST /submit-response
// Validate a submission against the questionnaire schema and persist it.
func (h *SurveyHandler) SubmitResponse(c *gin.Context) {
	log := h.requestLog(c)

	var in questionnaire.SubmissionInput
	if err := c.ShouldBindJSON(&in); err != nil {
		// A wrong-typed field is still well-formed JSON; name the field
		// like any other validation rejection.
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			RespondError(c, http.StatusUnprocessableEntity, "validation_error", &questionnaire.FieldError{
				Field:  typeErr.Field,
				Reason: fmt.Sprintf("must be of type %s", typeErr.Type),
			})
			return
		}
		RespondError(c, http.StatusBadRequest, "invalid_body", errors.New("invalid request body"))
		return
	}

	stored, err := h.surveyService.Submit(c.Request.Context(), in)
	if err != nil {
		var fieldErr *questionnaire.FieldError
		if errors.As(err, &fieldErr) {
			RespondError(c, http.StatusUnprocessableEntity, "validation_error", fieldErr)
			return
		}
		// Storage internals stay out of the client response.
		log.Error("SubmitResponse failed", "error", err)
		RespondError(c, http.StatusInternalServerError, "storage_error", errors.New("failed to store response"))
		return
	}
	log.Info("Stored survey response", "id", stored.ID)
	c.JSON(http.StatusCreated, stored)
}

// GET /responses?key=&skip=&limit=
// List stored submissions in ascending id order (admin use).
func (h *SurveyHandler) ListResponses(c *gin.Context) {
	skip := parseIntQuery(c, "skip", 0)
	limit := parseIntQuery(c, "limit", h.defaultLimit)

	responses, err := h.surveyService.List(c.Request.Context(), skip, limit)
	if err != nil {
		h.requestLog(c).Error("ListResponses failed", "error", err)
		RespondError(c, http.StatusInternalServerError, "storage_error", errors.New("failed to list responses"))
		return
	}
	c.JSON(http.StatusOK, responses)
}

// GET /export-excel?key=
// Export every stored submission as an xlsx attachment (admin use).
func (h *SurveyHandler) ExportExcel(c *gin.Context) {
	export, err := h.surveyService.ExportExcel(c.Request.Context())
	if err != nil {
		if errors.Is(err, pkgerrors.ErrNotFound) {
			RespondError(c, http.StatusNotFound, "no_responses", errors.New("no responses found to export"))
			return
		}
		h.requestLog(c).Error("ExportExcel failed", "error", err)
		RespondError(c, http.StatusInternalServerError, "storage_error", errors.New("failed to export responses"))
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename))
	c.Data(http.StatusOK, export.ContentType, export.Content)
}

func parseIntQuery(c *gin.Context, name string, defaultVal int) int {
	raw := c.Query(name)
	if raw == "" {
		return defaultVal
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return defaultVal
	}
	return v
}

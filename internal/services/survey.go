package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/fillme/fillme-backend/internal/logger"
	pkgerrors "github.com/fillme/fillme-backend/internal/pkg/errors"
	"github.com/fillme/fillme-backend/internal/questionnaire"
	"github.com/fillme/fillme-backend/internal/repos"
	"github.com/fillme/fillme-backend/internal/types"
)

// ExportFile is a rendered spreadsheet ready to be sent as an attachment.
type ExportFile struct {
	Filename    string
	ContentType string
	Content     []byte
}

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type SurveyService interface {
	Submit(ctx context.Context, in questionnaire.SubmissionInput) (*types.SurveyResponse, error)
	List(ctx context.Context, offset, limit int) ([]*types.SurveyResponse, error)
	ExportExcel(ctx context.Context) (*ExportFile, error)
}

type surveyService struct {
	db           *gorm.DB
	log          *logger.Logger
	responseRepo repos.SurveyResponseRepo
}

func NewSurveyService(db *gorm.DB, log *logger.Logger, responseRepo repos.SurveyResponseRepo) SurveyService {
	return &surveyService{
		db:           db,
		log:          log.With("service", "SurveyService"),
		responseRepo: responseRepo,
	}
}

// Submit validates the raw submission and appends it to the store. A
// *questionnaire.FieldError marks a client-caused rejection; any other error
// is a storage failure. Submissions are not idempotent: identical content
// always produces a new record.
func (s *surveyService) Submit(ctx context.Context, in questionnaire.SubmissionInput) (*types.SurveyResponse, error) {
	response, err := questionnaire.Validate(in)
	if err != nil {
		s.log.Debug("Submission rejected", "error", err)
		return nil, err
	}
	stored, err := s.responseRepo.Create(ctx, nil, response)
	if err != nil {
		s.log.Error("Failed to store survey response", "error", err)
		return nil, fmt.Errorf("store survey response: %w", err)
	}
	s.log.Info("Survey response stored", "id", stored.ID)
	return stored, nil
}

func (s *surveyService) List(ctx context.Context, offset, limit int) ([]*types.SurveyResponse, error) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = 100
	}
	responses, err := s.responseRepo.List(ctx, nil, offset, limit)
	if err != nil {
		s.log.Error("Failed to list survey responses", "error", err)
		return nil, fmt.Errorf("list survey responses: %w", err)
	}
	return responses, nil
}

// ExportExcel projects the full store into an xlsx workbook. An empty store
// yields pkgerrors.ErrNotFound rather than an empty spreadsheet.
func (s *surveyService) ExportExcel(ctx context.Context) (*ExportFile, error) {
	responses, err := s.responseRepo.ListAll(ctx, nil)
	if err != nil {
		s.log.Error("Failed to load survey responses for export", "error", err)
		return nil, fmt.Errorf("load survey responses: %w", err)
	}
	if len(responses) == 0 {
		return nil, fmt.Errorf("no responses to export: %w", pkgerrors.ErrNotFound)
	}

	header, rows := BuildExportTable(responses)
	content, err := WriteExcel(header, rows)
	if err != nil {
		s.log.Error("Failed to render export workbook", "error", err)
		return nil, fmt.Errorf("render export workbook: %w", err)
	}
	s.log.Info("Export workbook rendered", "rows", len(rows))
	return &ExportFile{
		Filename:    "survey_responses.xlsx",
		ContentType: xlsxContentType,
		Content:     content,
	}, nil
}

package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/fillme/fillme-backend/internal/logger"
	"github.com/fillme/fillme-backend/internal/types"
)

// SurveyResponseRepo is the append-only store of accepted submissions.
// Create assigns id and submitted_at; there are no update or delete
// operations on purpose.
type SurveyResponseRepo interface {
	Create(ctx context.Context, tx *gorm.DB, response *types.SurveyResponse) (*types.SurveyResponse, error)
	List(ctx context.Context, tx *gorm.DB, offset, limit int) ([]*types.SurveyResponse, error)
	ListAll(ctx context.Context, tx *gorm.DB) ([]*types.SurveyResponse, error)
}

type surveyResponseRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSurveyResponseRepo(db *gorm.DB, baseLog *logger.Logger) SurveyResponseRepo {
	repoLog := baseLog.With("repo", "SurveyResponseRepo")
	return &surveyResponseRepo{db: db, log: repoLog}
}

func (r *surveyResponseRepo) Create(ctx context.Context, tx *gorm.DB, response *types.SurveyResponse) (*types.SurveyResponse, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if err := transaction.WithContext(ctx).Create(response).Error; err != nil {
		return nil, err
	}
	return response, nil
}

func (r *surveyResponseRepo) List(ctx context.Context, tx *gorm.DB, offset, limit int) ([]*types.SurveyResponse, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.SurveyResponse
	if err := transaction.WithContext(ctx).
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *surveyResponseRepo) ListAll(ctx context.Context, tx *gorm.DB) ([]*types.SurveyResponse, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.SurveyResponse
	if err := transaction.WithContext(ctx).
		Order("id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

package mysql

import (
	"context"

	submissionDomain "kpisuite-backend/internal/domain/submission"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SubmissionRepository struct{ db *gorm.DB }

func NewSubmissionRepository(db *gorm.DB) *SubmissionRepository { return &SubmissionRepository{db: db} }

func (r *SubmissionRepository) Create(ctx context.Context, s *submissionDomain.Submission) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *SubmissionRepository) Save(ctx context.Context, s *submissionDomain.Submission) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *SubmissionRepository) GetBySubmissionID(ctx context.Context, submissionID string) (*submissionDomain.Submission, error) {
	var out submissionDomain.Submission
	res := r.db.WithContext(ctx).Where("submission_id = ?", submissionID).First(&out)
	return &out, res.Error
}

func (r *SubmissionRepository) GetBySubmissionIDForUpdate(ctx context.Context, submissionID string) (*submissionDomain.Submission, error) {
	var out submissionDomain.Submission
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("submission_id = ?", submissionID).
		First(&out)
	return &out, res.Error
}

func (r *SubmissionRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*submissionDomain.Submission, error) {
	var out submissionDomain.Submission
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&out)
	return &out, res.Error
}

func (r *SubmissionRepository) List(ctx context.Context, f submissionDomain.Filter) ([]submissionDomain.Submission, error) {
	q := r.db.WithContext(ctx).Model(&submissionDomain.Submission{})
	if f.OrgUnitID != 0 {
		q = q.Where("org_unit_id = ?", f.OrgUnitID)
	}
	if f.PeriodID != 0 {
		q = q.Where("period_id = ?", f.PeriodID)
	}
	if f.Status != "" {
		q = q.Where("submission_status = ?", f.Status)
	}
	if f.Type != "" {
		q = q.Where("submission_type = ?", f.Type)
	}
	var out []submissionDomain.Submission
	res := q.Order("id ASC").Find(&out)
	return out, res.Error
}

package mysql

import (
	"context"

	evidenceDomain "kpisuite-backend/internal/domain/evidence"

	"gorm.io/gorm"
)

type EvidenceRepository struct{ db *gorm.DB }

func NewEvidenceRepository(db *gorm.DB) *EvidenceRepository { return &EvidenceRepository{db: db} }

func (r *EvidenceRepository) Create(ctx context.Context, e *evidenceDomain.Evidence) error {
	return r.db.WithContext(ctx).Create(e).Error
}

// upload order == insertion order
func (r *EvidenceRepository) ListBySubmissionID(ctx context.Context, submissionID uint64) ([]evidenceDomain.Evidence, error) {
	var out []evidenceDomain.Evidence
	res := r.db.WithContext(ctx).
		Where("submission_id = ?", submissionID).
		Order("id ASC").
		Find(&out)
	return out, res.Error
}

func (r *EvidenceRepository) CountBySubmissionID(ctx context.Context, submissionID uint64) (int64, error) {
	var n int64
	res := r.db.WithContext(ctx).
		Model(&evidenceDomain.Evidence{}).
		Where("submission_id = ?", submissionID).
		Count(&n)
	return n, res.Error
}

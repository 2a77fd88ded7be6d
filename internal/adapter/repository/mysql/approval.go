package mysql

import (
	"context"

	approvalDomain "kpisuite-backend/internal/domain/approval"
	"kpisuite-backend/internal/workflow"

	"gorm.io/gorm"
)

type ApprovalRepository struct{ db *gorm.DB }

func NewApprovalRepository(db *gorm.DB) *ApprovalRepository { return &ApprovalRepository{db: db} }

func (r *ApprovalRepository) Create(ctx context.Context, a *approvalDomain.Approval) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *ApprovalRepository) Save(ctx context.Context, a *approvalDomain.Approval) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *ApprovalRepository) ListBySubmissionID(ctx context.Context, submissionID uint64) ([]approvalDomain.Approval, error) {
	var out []approvalDomain.Approval
	res := r.db.WithContext(ctx).
		Where("submission_id = ?", submissionID).
		Order("id ASC").
		Find(&out)
	return out, res.Error
}

func (r *ApprovalRepository) GetByApprovalID(ctx context.Context, approvalID string) (*approvalDomain.Approval, error) {
	var out approvalDomain.Approval
	res := r.db.WithContext(ctx).
		Where("approval_id = ?", approvalID).
		First(&out)
	return &out, res.Error
}

func (r *ApprovalRepository) SoftDeletePending(ctx context.Context, submissionID uint64, deletedBy string) error {
	return r.db.WithContext(ctx).
		Model(&approvalDomain.Approval{}).
		Where("submission_id = ? AND approval_status = ?", submissionID, workflow.ApprovalPending).
		Updates(map[string]any{"deleted_at": gorm.Expr("CURRENT_TIMESTAMP"), "deleted_by": deletedBy}).Error
}

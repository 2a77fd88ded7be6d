package approvalmock

import (
	"context"

	domain "kpisuite-backend/internal/domain/approval"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn             func(ctx context.Context, a *domain.Approval) error
	ListBySubmissionIDFn func(ctx context.Context, submissionID uint64) ([]domain.Approval, error)
	GetByApprovalIDFn    func(ctx context.Context, approvalID string) (*domain.Approval, error)
	SaveFn               func(ctx context.Context, a *domain.Approval) error
	SoftDeletePendingFn  func(ctx context.Context, submissionID uint64, deletedBy string) error
}

func (m *Repo) Create(ctx context.Context, a *domain.Approval) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, a)
	}
	return nil
}

func (m *Repo) ListBySubmissionID(ctx context.Context, submissionID uint64) ([]domain.Approval, error) {
	if m.ListBySubmissionIDFn != nil {
		return m.ListBySubmissionIDFn(ctx, submissionID)
	}
	return nil, nil
}

func (m *Repo) GetByApprovalID(ctx context.Context, approvalID string) (*domain.Approval, error) {
	if m.GetByApprovalIDFn != nil {
		return m.GetByApprovalIDFn(ctx, approvalID)
	}
	return nil, context.Canceled
}

func (m *Repo) Save(ctx context.Context, a *domain.Approval) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, a)
	}
	return nil
}

func (m *Repo) SoftDeletePending(ctx context.Context, submissionID uint64, deletedBy string) error {
	if m.SoftDeletePendingFn != nil {
		return m.SoftDeletePendingFn(ctx, submissionID, deletedBy)
	}
	return nil
}

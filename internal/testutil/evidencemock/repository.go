package evidencemock

import (
	"context"

	domain "kpisuite-backend/internal/domain/evidence"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn              func(ctx context.Context, e *domain.Evidence) error
	ListBySubmissionIDFn  func(ctx context.Context, submissionID uint64) ([]domain.Evidence, error)
	CountBySubmissionIDFn func(ctx context.Context, submissionID uint64) (int64, error)
}

func (m *Repo) Create(ctx context.Context, e *domain.Evidence) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, e)
	}
	return nil
}

func (m *Repo) ListBySubmissionID(ctx context.Context, submissionID uint64) ([]domain.Evidence, error) {
	if m.ListBySubmissionIDFn != nil {
		return m.ListBySubmissionIDFn(ctx, submissionID)
	}
	return nil, nil
}

func (m *Repo) CountBySubmissionID(ctx context.Context, submissionID uint64) (int64, error) {
	if m.CountBySubmissionIDFn != nil {
		return m.CountBySubmissionIDFn(ctx, submissionID)
	}
	return 0, nil
}

package uowmock

import (
	"context"
	"errors"

	"kpisuite-backend/internal/domain/submission"
	"kpisuite-backend/internal/domain/uow"
)

// Ensure compile-time compliance
var _ uow.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: method not implemented")

// UoW is a function-backed mock that satisfies uow.UnitOfWork.
// Fill in the function fields you need in a test; unfilled ones return errUnimplemented.
type UoW struct {
	WithinTxFn           func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinSubmissionTxFn func(ctx context.Context, submissionID string, fn func(r uow.Repos, s *submission.Submission) error) error
}

func New() *UoW { return &UoW{} }

// Passthrough wires both methods straight through to the given repos with no
// transaction, with the submission looked up via the repos themselves.
func Passthrough(repos uow.Repos) *UoW {
	return &UoW{
		WithinTxFn: func(ctx context.Context, fn func(r uow.Repos) error) error {
			return fn(repos)
		},
		WithinSubmissionTxFn: func(ctx context.Context, submissionID string, fn func(r uow.Repos, s *submission.Submission) error) error {
			s, err := repos.Submissions.GetBySubmissionIDForUpdate(ctx, submissionID)
			if err != nil {
				return submission.ErrNotFound
			}
			return fn(repos, s)
		},
	}
}

func (m *UoW) Reset() { *m = UoW{} }

func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return errUnimplemented
}

func (m *UoW) WithinSubmissionTx(ctx context.Context, submissionID string, fn func(r uow.Repos, s *submission.Submission) error) error {
	if m.WithinSubmissionTxFn != nil {
		return m.WithinSubmissionTxFn(ctx, submissionID, fn)
	}
	return errUnimplemented
}

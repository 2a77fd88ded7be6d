package uow

import (
	"context"

	"kpisuite-backend/internal/domain/approval"
	"kpisuite-backend/internal/domain/evidence"
	"kpisuite-backend/internal/domain/kpi"
	"kpisuite-backend/internal/domain/submission"
)

// Repos are the tx-bound repositories a workflow transition touches.
type Repos struct {
	Submissions submission.Repository
	Approvals   approval.Repository
	Evidence    evidence.Repository
	Targets     kpi.TargetRepository
	Actuals     kpi.ActualRepository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the submission row first, then pass it in
	WithinSubmissionTx(ctx context.Context, submissionID string, fn func(r Repos, s *submission.Submission) error) error
}

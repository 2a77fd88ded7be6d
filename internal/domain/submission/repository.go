package submission

import (
	"context"

	"kpisuite-backend/internal/workflow"
)

// Filter narrows List; zero values mean "any".
type Filter struct {
	OrgUnitID uint64
	PeriodID  uint64
	Status    workflow.Status
	Type      workflow.SubmissionType
}

type Repository interface {
	Create(ctx context.Context, s *Submission) error
	GetBySubmissionID(ctx context.Context, submissionID string) (*Submission, error)
	// Locks the row (SELECT ... FOR UPDATE) for transactional transitions.
	GetBySubmissionIDForUpdate(ctx context.Context, submissionID string) (*Submission, error)
	GetByIDForUpdate(ctx context.Context, id uint64) (*Submission, error)
	List(ctx context.Context, f Filter) ([]Submission, error)
	Save(ctx context.Context, s *Submission) error
}

package approval

import "context"

type Repository interface {
	Create(ctx context.Context, a *Approval) error

	// All approvals for a submission, oldest first.
	ListBySubmissionID(ctx context.Context, submissionID uint64) ([]Approval, error)

	// Get by public approval_id
	GetByApprovalID(ctx context.Context, approvalID string) (*Approval, error)

	Save(ctx context.Context, a *Approval) error

	// Revert-to-draft invalidates open approvals; rows are soft-deleted so
	// the decision history survives.
	SoftDeletePending(ctx context.Context, submissionID uint64, deletedBy string) error
}

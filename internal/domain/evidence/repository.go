package evidence

import "context"

type Repository interface {
	Create(ctx context.Context, e *Evidence) error

	// Rows in upload order (insertion id ascending).
	ListBySubmissionID(ctx context.Context, submissionID uint64) ([]Evidence, error)

	CountBySubmissionID(ctx context.Context, submissionID uint64) (int64, error)
}

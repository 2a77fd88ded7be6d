package kpi

import "context"

// DefinitionFilter narrows catalog listings; zero values mean "any".
type DefinitionFilter struct {
	OrgUnitID   uint64
	Perspective string
	Category    string
}

type DefinitionRepository interface {
	Create(ctx context.Context, d *Definition) error
	GetByDefinitionID(ctx context.Context, definitionID string) (*Definition, error)
	List(ctx context.Context, f DefinitionFilter) ([]Definition, error)
}

type TargetRepository interface {
	// Insert-or-update keyed on (definition, submission, month); used by the
	// bulk target editor.
	Upsert(ctx context.Context, t *Target) error
	ListBySubmissionID(ctx context.Context, submissionID uint64) ([]Target, error)
	// GetByDefinitionPeriodMonth resolves the planned value an actual is
	// measured against: the target for the same definition and month whose
	// owning submission belongs to the given period.
	GetByDefinitionPeriodMonth(ctx context.Context, definitionID, periodID uint64, month int) (*Target, error)
}

type ActualRepository interface {
	Upsert(ctx context.Context, a *Actual) error
	ListBySubmissionID(ctx context.Context, submissionID uint64) ([]Actual, error)
}

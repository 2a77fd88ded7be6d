package kpimock

import (
	"context"

	domain "kpisuite-backend/internal/domain/kpi"
)

var (
	_ domain.DefinitionRepository = (*DefinitionRepo)(nil)
	_ domain.TargetRepository     = (*TargetRepo)(nil)
	_ domain.ActualRepository     = (*ActualRepo)(nil)
)

// Function-backed mocks for the three KPI repositories.

type DefinitionRepo struct {
	CreateFn            func(ctx context.Context, d *domain.Definition) error
	GetByDefinitionIDFn func(ctx context.Context, definitionID string) (*domain.Definition, error)
	ListFn              func(ctx context.Context, f domain.DefinitionFilter) ([]domain.Definition, error)
}

func (m *DefinitionRepo) Create(ctx context.Context, d *domain.Definition) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, d)
	}
	return nil
}

func (m *DefinitionRepo) GetByDefinitionID(ctx context.Context, definitionID string) (*domain.Definition, error) {
	if m.GetByDefinitionIDFn != nil {
		return m.GetByDefinitionIDFn(ctx, definitionID)
	}
	return nil, context.Canceled
}

func (m *DefinitionRepo) List(ctx context.Context, f domain.DefinitionFilter) ([]domain.Definition, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, f)
	}
	return nil, nil
}

type TargetRepo struct {
	UpsertFn                     func(ctx context.Context, t *domain.Target) error
	ListBySubmissionIDFn         func(ctx context.Context, submissionID uint64) ([]domain.Target, error)
	GetByDefinitionPeriodMonthFn func(ctx context.Context, definitionID, periodID uint64, month int) (*domain.Target, error)
}

func (m *TargetRepo) Upsert(ctx context.Context, t *domain.Target) error {
	if m.UpsertFn != nil {
		return m.UpsertFn(ctx, t)
	}
	return nil
}

func (m *TargetRepo) ListBySubmissionID(ctx context.Context, submissionID uint64) ([]domain.Target, error) {
	if m.ListBySubmissionIDFn != nil {
		return m.ListBySubmissionIDFn(ctx, submissionID)
	}
	return nil, nil
}

func (m *TargetRepo) GetByDefinitionPeriodMonth(ctx context.Context, definitionID, periodID uint64, month int) (*domain.Target, error) {
	if m.GetByDefinitionPeriodMonthFn != nil {
		return m.GetByDefinitionPeriodMonthFn(ctx, definitionID, periodID, month)
	}
	return nil, context.Canceled
}

type ActualRepo struct {
	UpsertFn             func(ctx context.Context, a *domain.Actual) error
	ListBySubmissionIDFn func(ctx context.Context, submissionID uint64) ([]domain.Actual, error)
}

func (m *ActualRepo) Upsert(ctx context.Context, a *domain.Actual) error {
	if m.UpsertFn != nil {
		return m.UpsertFn(ctx, a)
	}
	return nil
}

func (m *ActualRepo) ListBySubmissionID(ctx context.Context, submissionID uint64) ([]domain.Actual, error) {
	if m.ListBySubmissionIDFn != nil {
		return m.ListBySubmissionIDFn(ctx, submissionID)
	}
	return nil, nil
}

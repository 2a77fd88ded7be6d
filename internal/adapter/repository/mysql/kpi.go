package mysql

import (
	"context"

	kpiDomain "kpisuite-backend/internal/domain/kpi"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type KPIDefinitionRepository struct{ db *gorm.DB }

func NewKPIDefinitionRepository(db *gorm.DB) *KPIDefinitionRepository {
	return &KPIDefinitionRepository{db: db}
}

func (r *KPIDefinitionRepository) Create(ctx context.Context, d *kpiDomain.Definition) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *KPIDefinitionRepository) GetByDefinitionID(ctx context.Context, definitionID string) (*kpiDomain.Definition, error) {
	var out kpiDomain.Definition
	res := r.db.WithContext(ctx).Where("definition_id = ?", definitionID).First(&out)
	return &out, res.Error
}

func (r *KPIDefinitionRepository) List(ctx context.Context, f kpiDomain.DefinitionFilter) ([]kpiDomain.Definition, error) {
	q := r.db.WithContext(ctx).Model(&kpiDomain.Definition{})
	if f.OrgUnitID != 0 {
		q = q.Where("org_unit_id = ?", f.OrgUnitID)
	}
	if f.Perspective != "" {
		q = q.Where("perspective = ?", f.Perspective)
	}
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	var out []kpiDomain.Definition
	res := q.Order("code ASC").Find(&out)
	return out, res.Error
}

type KPITargetRepository struct{ db *gorm.DB }

func NewKPITargetRepository(db *gorm.DB) *KPITargetRepository { return &KPITargetRepository{db: db} }

func (r *KPITargetRepository) Upsert(ctx context.Context, t *kpiDomain.Target) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "definition_id"}, {Name: "submission_id"}, {Name: "month"}},
			DoUpdates: clause.AssignmentColumns([]string{"target_value", "updated_at"}),
		}).
		Create(t).Error
}

func (r *KPITargetRepository) ListBySubmissionID(ctx context.Context, submissionID uint64) ([]kpiDomain.Target, error) {
	var out []kpiDomain.Target
	res := r.db.WithContext(ctx).
		Where("submission_id = ?", submissionID).
		Order("definition_id ASC, month ASC").
		Find(&out)
	return out, res.Error
}

func (r *KPITargetRepository) GetByDefinitionPeriodMonth(ctx context.Context, definitionID, periodID uint64, month int) (*kpiDomain.Target, error) {
	var out kpiDomain.Target
	res := r.db.WithContext(ctx).
		Joins("JOIN submissions ON submissions.id = kpi_targets.submission_id AND submissions.deleted_at IS NULL").
		Where("kpi_targets.definition_id = ? AND kpi_targets.month = ? AND submissions.period_id = ?", definitionID, month, periodID).
		Order("kpi_targets.updated_at DESC").
		First(&out)
	return &out, res.Error
}

type KPIActualRepository struct{ db *gorm.DB }

func NewKPIActualRepository(db *gorm.DB) *KPIActualRepository { return &KPIActualRepository{db: db} }

func (r *KPIActualRepository) Upsert(ctx context.Context, a *kpiDomain.Actual) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "definition_id"}, {Name: "submission_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"actual_value", "achievement_percent", "problem_identification", "corrective_action", "month", "updated_at"}),
		}).
		Create(a).Error
}

func (r *KPIActualRepository) ListBySubmissionID(ctx context.Context, submissionID uint64) ([]kpiDomain.Actual, error) {
	var out []kpiDomain.Actual
	res := r.db.WithContext(ctx).
		Where("submission_id = ?", submissionID).
		Order("definition_id ASC, month ASC").
		Find(&out)
	return out, res.Error
}

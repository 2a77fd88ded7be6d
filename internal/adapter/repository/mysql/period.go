package mysql

import (
	"context"

	periodDomain "kpisuite-backend/internal/domain/period"

	"gorm.io/gorm"
)

type PeriodRepository struct{ db *gorm.DB }

func NewPeriodRepository(db *gorm.DB) *PeriodRepository { return &PeriodRepository{db: db} }

func (r *PeriodRepository) GetByID(ctx context.Context, id uint64) (*periodDomain.Period, error) {
	var out periodDomain.Period
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	return &out, res.Error
}

func (r *PeriodRepository) List(ctx context.Context) ([]periodDomain.Period, error) {
	var out []periodDomain.Period
	res := r.db.WithContext(ctx).Order("year DESC").Find(&out)
	return out, res.Error
}

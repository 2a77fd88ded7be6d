package mysql

import (
	"context"

	orgunitDomain "kpisuite-backend/internal/domain/orgunit"

	"gorm.io/gorm"
)

type OrgUnitRepository struct{ db *gorm.DB }

func NewOrgUnitRepository(db *gorm.DB) *OrgUnitRepository { return &OrgUnitRepository{db: db} }

func (r *OrgUnitRepository) GetByID(ctx context.Context, id uint64) (*orgunitDomain.OrgUnit, error) {
	var out orgunitDomain.OrgUnit
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	return &out, res.Error
}

func (r *OrgUnitRepository) ListChildren(ctx context.Context, parentID uint64) ([]orgunitDomain.OrgUnit, error) {
	var out []orgunitDomain.OrgUnit
	res := r.db.WithContext(ctx).
		Where("parent_id = ?", parentID).
		Order("name ASC").
		Find(&out)
	return out, res.Error
}

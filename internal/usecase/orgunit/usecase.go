package orgunit

import (
	"context"
	"errors"

	domain "kpisuite-backend/internal/domain/orgunit"

	"gorm.io/gorm"
)

const maxDepth = 16

type Usecase struct{ repo domain.Repository }

func NewUsecase(r domain.Repository) *Usecase { return &Usecase{repo: r} }

type OrgUnitDTO struct {
	ID             uint64  `json:"id"`
	ParentID       *uint64 `json:"parent_id,omitempty"`
	Name           string  `json:"name"`
	HeadEmployeeID string  `json:"head_employee_id,omitempty"`
	Level          int     `json:"level"`
}

func (u *Usecase) Get(ctx context.Context, id uint64) (*OrgUnitDTO, error) {
	unit, err := u.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	dto := toDTO(unit)
	return &dto, nil
}

func (u *Usecase) Children(ctx context.Context, parentID uint64) ([]OrgUnitDTO, error) {
	rows, err := u.repo.ListChildren(ctx, parentID)
	if err != nil {
		return nil, err
	}
	out := make([]OrgUnitDTO, 0, len(rows))
	for i := range rows {
		out = append(out, toDTO(&rows[i]))
	}
	return out, nil
}

// AncestorChain returns the unit's ancestors, closest parent first. The walk
// is capped and cycle-guarded; a dangling parent id just ends the chain.
func (u *Usecase) AncestorChain(ctx context.Context, id uint64) ([]OrgUnitDTO, error) {
	unit, err := u.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	var chain []OrgUnitDTO
	seen := map[uint64]bool{unit.ID: true}
	for depth := 0; unit.ParentID != nil && depth < maxDepth; depth++ {
		if seen[*unit.ParentID] {
			break
		}
		parent, err := u.repo.GetByID(ctx, *unit.ParentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, domain.ErrNotFound) {
				break
			}
			return nil, err
		}
		chain = append(chain, toDTO(parent))
		seen[parent.ID] = true
		unit = parent
	}
	return chain, nil
}

func toDTO(o *domain.OrgUnit) OrgUnitDTO {
	return OrgUnitDTO{ID: o.ID, ParentID: o.ParentID, Name: o.Name, HeadEmployeeID: o.HeadEmployeeID, Level: o.Level}
}

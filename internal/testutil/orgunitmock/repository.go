package orgunitmock

import (
	"context"

	domain "kpisuite-backend/internal/domain/orgunit"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	GetByIDFn      func(ctx context.Context, id uint64) (*domain.OrgUnit, error)
	ListChildrenFn func(ctx context.Context, parentID uint64) ([]domain.OrgUnit, error)
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.OrgUnit, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) ListChildren(ctx context.Context, parentID uint64) ([]domain.OrgUnit, error) {
	if m.ListChildrenFn != nil {
		return m.ListChildrenFn(ctx, parentID)
	}
	return nil, nil
}

// Tree backs the repository with a fixed set of units, handy for
// approver-chain and hierarchy tests.
func Tree(units ...domain.OrgUnit) *Repo {
	byID := make(map[uint64]domain.OrgUnit, len(units))
	for _, u := range units {
		byID[u.ID] = u
	}
	return &Repo{
		GetByIDFn: func(ctx context.Context, id uint64) (*domain.OrgUnit, error) {
			if u, ok := byID[id]; ok {
				return &u, nil
			}
			return nil, domain.ErrNotFound
		},
		ListChildrenFn: func(ctx context.Context, parentID uint64) ([]domain.OrgUnit, error) {
			var out []domain.OrgUnit
			for _, u := range units {
				if u.ParentID != nil && *u.ParentID == parentID {
					out = append(out, u)
				}
			}
			return out, nil
		},
	}
}

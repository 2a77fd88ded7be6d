package orgunit

import "context"

type Repository interface {
	GetByID(ctx context.Context, id uint64) (*OrgUnit, error)
	ListChildren(ctx context.Context, parentID uint64) ([]OrgUnit, error)
}

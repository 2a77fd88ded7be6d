package period

import "context"

type Repository interface {
	GetByID(ctx context.Context, id uint64) (*Period, error)
	List(ctx context.Context) ([]Period, error)
}

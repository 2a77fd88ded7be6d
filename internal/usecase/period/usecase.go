package period

import (
	"context"
	"errors"

	domain "kpisuite-backend/internal/domain/period"

	"gorm.io/gorm"
)

type Usecase struct{ repo domain.Repository }

func NewUsecase(r domain.Repository) *Usecase { return &Usecase{repo: r} }

type PeriodDTO struct {
	ID     uint64        `json:"id"`
	Year   int           `json:"year"`
	Status domain.Status `json:"period_status"`
}

func (u *Usecase) Get(ctx context.Context, id uint64) (*PeriodDTO, error) {
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &PeriodDTO{ID: p.ID, Year: p.Year, Status: p.Status}, nil
}

func (u *Usecase) List(ctx context.Context) ([]PeriodDTO, error) {
	rows, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]PeriodDTO, 0, len(rows))
	for _, p := range rows {
		out = append(out, PeriodDTO{ID: p.ID, Year: p.Year, Status: p.Status})
	}
	return out, nil
}

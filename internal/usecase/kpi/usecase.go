package kpi

import (
	"context"
	"errors"
	"time"

	domainKPI "kpisuite-backend/internal/domain/kpi"
	domainSubmission "kpisuite-backend/internal/domain/submission"
	"kpisuite-backend/internal/domain/uow"
	"kpisuite-backend/internal/workflow"
	"kpisuite-backend/pkg/id"
	"kpisuite-backend/pkg/richtext"

	"gorm.io/gorm"
)

type Usecase struct {
	defRepo    domainKPI.DefinitionRepository
	targetRepo domainKPI.TargetRepository
	actualRepo domainKPI.ActualRepository
	subRepo    domainSubmission.Repository
	uow        uow.UnitOfWork
}

func NewUsecase(defs domainKPI.DefinitionRepository, targets domainKPI.TargetRepository, actuals domainKPI.ActualRepository, subs domainSubmission.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{defRepo: defs, targetRepo: targets, actualRepo: actuals, subRepo: subs, uow: tx}
}

type CreateDefinitionInput struct {
	Code              string
	Name              string
	Perspective       string
	Category          string
	Weight            float64
	UnitOfMeasure     string
	CalculationMethod domainKPI.CalculationMethod
	OrgUnitID         uint64
}

type DefinitionDTO struct {
	DefinitionID      string                      `json:"definition_id"`
	Code              string                      `json:"code"`
	Name              string                      `json:"name"`
	Perspective       string                      `json:"perspective"`
	Category          string                      `json:"category"`
	Weight            float64                     `json:"weight"`
	UnitOfMeasure     string                      `json:"unit_of_measure"`
	CalculationMethod domainKPI.CalculationMethod `json:"calculation_method"`
	OrgUnitID         uint64                      `json:"org_unit_id"`
	CreatedAt         time.Time                   `json:"created_at"`
}

func (u *Usecase) CreateDefinition(ctx context.Context, in CreateDefinitionInput) (*DefinitionDTO, error) {
	if in.Code == "" || in.Name == "" || in.OrgUnitID == 0 {
		return nil, errors.New("invalid input")
	}
	if in.CalculationMethod == "" {
		in.CalculationMethod = domainKPI.HigherBetter
	}
	d := &domainKPI.Definition{
		DefinitionID:      id.NewID32(),
		Code:              in.Code,
		Name:              in.Name,
		Perspective:       in.Perspective,
		Category:          in.Category,
		Weight:            in.Weight,
		UnitOfMeasure:     in.UnitOfMeasure,
		CalculationMethod: in.CalculationMethod,
		OrgUnitID:         in.OrgUnitID,
	}
	if err := u.defRepo.Create(ctx, d); err != nil {
		return nil, err
	}
	dto := defDTO(d)
	return &dto, nil
}

func (u *Usecase) GetDefinition(ctx context.Context, definitionID string) (*DefinitionDTO, error) {
	d, err := u.defRepo.GetByDefinitionID(ctx, definitionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainKPI.ErrDefinitionNotFound
		}
		return nil, err
	}
	dto := defDTO(d)
	return &dto, nil
}

func (u *Usecase) ListDefinitions(ctx context.Context, f domainKPI.DefinitionFilter) ([]DefinitionDTO, error) {
	rows, err := u.defRepo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]DefinitionDTO, 0, len(rows))
	for i := range rows {
		out = append(out, defDTO(&rows[i]))
	}
	return out, nil
}

type TargetItem struct {
	DefinitionID string  `json:"definition_id"`
	Month        int     `json:"month"`
	Value        float64 `json:"target_value"`
}

type BulkTargetsInput struct {
	SubmissionID string
	Items        []TargetItem
	Actor        workflow.Identity
}

// BulkUpsertTargets replaces/inserts the monthly target values for one draft
// target submission, all-or-nothing.
func (u *Usecase) BulkUpsertTargets(ctx context.Context, in BulkTargetsInput) (int, error) {
	if len(in.Items) == 0 {
		return 0, errors.New("invalid input")
	}
	var n int
	err := u.uow.WithinSubmissionTx(ctx, in.SubmissionID, func(r uow.Repos, s *domainSubmission.Submission) error {
		if s.OrgUnitID != in.Actor.OrgUnitID {
			return domainSubmission.ErrNotAllowed
		}
		if s.Status != workflow.StatusDraft {
			return workflow.ErrInvalidTransition
		}
		for _, item := range in.Items {
			if item.Month < 1 || item.Month > 12 {
				return errors.New("month out of range")
			}
			d, err := u.defRepo.GetByDefinitionID(ctx, item.DefinitionID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return domainKPI.ErrDefinitionNotFound
				}
				return err
			}
			t := &domainKPI.Target{
				DefinitionID: d.ID,
				SubmissionID: s.ID,
				Month:        item.Month,
				Value:        item.Value,
			}
			if err := r.Targets.Upsert(ctx, t); err != nil {
				return err
			}
			n++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return n, nil
}

type ActualInput struct {
	SubmissionID          string
	DefinitionID          string
	Month                 int
	Value                 float64
	ProblemIdentification string
	CorrectiveAction      string
	Actor                 workflow.Identity
}

type ActualDTO struct {
	DefinitionID          string  `json:"definition_id"`
	Month                 int     `json:"month"`
	Value                 float64 `json:"actual_value"`
	AchievementPercent    float64 `json:"achievement_percent"`
	ProblemIdentification string  `json:"problem_identification"`
	CorrectiveAction      string  `json:"corrective_action"`
}

// UpsertActual records a realized value for one KPI and month. Achievement is
// derived from the matching target; the narrative fields come from a rich
// text editor and get their legacy alignment styles normalized on write.
func (u *Usecase) UpsertActual(ctx context.Context, in ActualInput) (*ActualDTO, error) {
	if in.Month < 1 || in.Month > 12 {
		return nil, errors.New("month out of range")
	}
	var dto *ActualDTO
	err := u.uow.WithinSubmissionTx(ctx, in.SubmissionID, func(r uow.Repos, s *domainSubmission.Submission) error {
		if s.OrgUnitID != in.Actor.OrgUnitID {
			return domainSubmission.ErrNotAllowed
		}
		if s.Status != workflow.StatusDraft {
			return workflow.ErrInvalidTransition
		}
		d, err := u.defRepo.GetByDefinitionID(ctx, in.DefinitionID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainKPI.ErrDefinitionNotFound
			}
			return err
		}

		achievement := 0.0
		if tgt, err := r.Targets.GetByDefinitionPeriodMonth(ctx, d.ID, s.PeriodID, in.Month); err == nil {
			achievement = domainKPI.Achievement(d.CalculationMethod, tgt.Value, in.Value)
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		a := &domainKPI.Actual{
			DefinitionID:          d.ID,
			SubmissionID:          s.ID,
			Month:                 in.Month,
			Value:                 in.Value,
			AchievementPercent:    achievement,
			ProblemIdentification: richtext.NormalizeAlignment(in.ProblemIdentification),
			CorrectiveAction:      richtext.NormalizeAlignment(in.CorrectiveAction),
		}
		if err := r.Actuals.Upsert(ctx, a); err != nil {
			return err
		}
		dto = &ActualDTO{
			DefinitionID:          d.DefinitionID,
			Month:                 a.Month,
			Value:                 a.Value,
			AchievementPercent:    a.AchievementPercent,
			ProblemIdentification: a.ProblemIdentification,
			CorrectiveAction:      a.CorrectiveAction,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func defDTO(d *domainKPI.Definition) DefinitionDTO {
	return DefinitionDTO{
		DefinitionID:      d.DefinitionID,
		Code:              d.Code,
		Name:              d.Name,
		Perspective:       d.Perspective,
		Category:          d.Category,
		Weight:            d.Weight,
		UnitOfMeasure:     d.UnitOfMeasure,
		CalculationMethod: d.CalculationMethod,
		OrgUnitID:         d.OrgUnitID,
		CreatedAt:         d.CreatedAt,
	}
}

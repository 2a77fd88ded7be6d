package mysql

import (
	"context"

	"kpisuite-backend/internal/domain/submission"
	"kpisuite-backend/internal/domain/uow"

	"gorm.io/gorm"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func txRepos(tx *gorm.DB) uow.Repos {
	return uow.Repos{
		Submissions: &SubmissionRepository{db: tx},
		Approvals:   &ApprovalRepository{db: tx},
		Evidence:    &EvidenceRepository{db: tx},
		Targets:     &KPITargetRepository{db: tx},
		Actuals:     &KPIActualRepository{db: tx},
	}
}

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(txRepos(tx))
	})
}

func (u *GormUoW) WithinSubmissionTx(ctx context.Context, submissionID string, fn func(r uow.Repos, s *submission.Submission) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := txRepos(tx)
		// lock the submission row up-front to prevent concurrent transitions
		s, err := r.Submissions.GetBySubmissionIDForUpdate(ctx, submissionID)
		if err != nil {
			return submission.ErrNotFound
		}
		return fn(r, s)
	})
}

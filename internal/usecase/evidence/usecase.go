package evidence

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	domainEvidence "kpisuite-backend/internal/domain/evidence"
	domainSubmission "kpisuite-backend/internal/domain/submission"
	"kpisuite-backend/internal/workflow"
	"kpisuite-backend/pkg/id"

	"gorm.io/gorm"
)

// FileStore persists uploaded blobs; the row in the DB keeps the returned
// reference.
type FileStore interface {
	Save(name string, r io.Reader) (string, error)
}

// DiskStore writes evidence files under a base directory.
type DiskStore struct{ Dir string }

func (d DiskStore) Save(name string, r io.Reader) (string, error) {
	if err := os.MkdirAll(d.Dir, 0o755); err != nil {
		return "", err
	}
	// name is prefixed with a fresh hex id by the use case, so plain Base is
	// enough to keep uploads from escaping the dir.
	path := filepath.Join(d.Dir, filepath.Base(name))
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	if _, err := io.Copy(f, r); err != nil {
		return "", err
	}
	return path, nil
}

type UploadInput struct {
	SubmissionID string
	FileName     string
	Content      io.Reader
	Actor        workflow.Identity
}

type EvidenceDTO struct {
	EvidenceID   string    `json:"evidence_id"`
	SubmissionID string    `json:"submission_id"`
	FileName     string    `json:"file_name"`
	UploadedAt   time.Time `json:"uploaded_at"`
}

type Usecase struct {
	subRepo  domainSubmission.Repository
	evidRepo domainEvidence.Repository
	store    FileStore
}

func NewUsecase(subs domainSubmission.Repository, evid domainEvidence.Repository, store FileStore) *Usecase {
	return &Usecase{subRepo: subs, evidRepo: evid, store: store}
}

// Upload accepts a file for a draft submission owned by the actor's org unit.
func (u *Usecase) Upload(ctx context.Context, in UploadInput) (*EvidenceDTO, error) {
	if in.FileName == "" || in.Content == nil {
		return nil, errors.New("invalid input")
	}

	s, err := u.subRepo.GetBySubmissionID(ctx, in.SubmissionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainSubmission.ErrNotFound
		}
		return nil, err
	}
	if s.OrgUnitID != in.Actor.OrgUnitID {
		return nil, domainSubmission.ErrNotAllowed
	}
	if s.Status != workflow.StatusDraft {
		return nil, domainEvidence.ErrSubmissionNotDraft
	}

	publicID := id.NewID32()
	path, err := u.store.Save(fmt.Sprintf("%s_%s", publicID, in.FileName), in.Content)
	if err != nil {
		return nil, err
	}

	e := &domainEvidence.Evidence{
		EvidenceID:   publicID,
		SubmissionID: s.ID,
		FileName:     in.FileName,
		StoragePath:  path,
		CreatedBy:    in.Actor.EmployeeID,
	}
	if err := u.evidRepo.Create(ctx, e); err != nil {
		return nil, err
	}

	return &EvidenceDTO{
		EvidenceID:   e.EvidenceID,
		SubmissionID: s.SubmissionID,
		FileName:     e.FileName,
		UploadedAt:   e.CreatedAt,
	}, nil
}

// List returns the submission's evidence in upload order.
func (u *Usecase) List(ctx context.Context, submissionID string, actor workflow.Identity) ([]EvidenceDTO, error) {
	s, err := u.subRepo.GetBySubmissionID(ctx, submissionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainSubmission.ErrNotFound
		}
		return nil, err
	}

	rows, err := u.evidRepo.ListBySubmissionID(ctx, s.ID)
	if err != nil {
		return nil, err
	}
	out := make([]EvidenceDTO, 0, len(rows))
	for i := range rows {
		out = append(out, EvidenceDTO{
			EvidenceID:   rows[i].EvidenceID,
			SubmissionID: s.SubmissionID,
			FileName:     rows[i].FileName,
			UploadedAt:   rows[i].CreatedAt,
		})
	}
	return out, nil
}

package evidence

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNotFound = errors.New("evidence not found")
	// Uploads are only accepted while the submission is in Draft.
	ErrSubmissionNotDraft = errors.New("evidence can only be uploaded to a draft submission")
)

type Evidence struct {
	ID         uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	EvidenceID string `gorm:"column:evidence_id;type:char(32);not null;uniqueIndex:ux_evidence_evidence_id_active"`
	// FK to submissions.id (numeric)
	SubmissionID uint64 `gorm:"column:submission_id;not null;index:idx_evidence_submission"`
	FileName     string `gorm:"column:file_name;size:255;not null"`
	// Where the blob landed (path under the evidence dir).
	StoragePath string         `gorm:"column:storage_path;type:text;not null"`
	CreatedBy   string         `gorm:"column:created_by;size:32"`
	CreatedAt   time.Time      `gorm:"column:created_at;autoCreateTime"`
	DeletedAt   gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (Evidence) TableName() string { return "evidence_files" }

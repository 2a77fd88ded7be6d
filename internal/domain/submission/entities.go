package submission

import (
	"errors"
	"time"

	"kpisuite-backend/internal/workflow"

	"gorm.io/gorm"
)

var (
	ErrNotFound         = errors.New("submission not found")
	ErrNotAllowed       = errors.New("actor is not allowed to perform this action")
	ErrEvidenceRequired = errors.New("evidence must be uploaded before submitting actual values")
	ErrNoApprover       = errors.New("no approver configured for the org unit hierarchy")
)

type Submission struct {
	// Internal numeric PK
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Public identifier (32-char lowercase hex)
	SubmissionID string                  `gorm:"column:submission_id;type:char(32);not null;uniqueIndex:ux_submissions_submission_id_active"`
	Type         workflow.SubmissionType `gorm:"column:submission_type;type:enum('Target','Actual');not null"`
	// Owning org unit; immutable after creation.
	OrgUnitID uint64          `gorm:"column:org_unit_id;not null;index:idx_submissions_org_unit"`
	PeriodID  uint64          `gorm:"column:period_id;not null;index:idx_submissions_period"`
	Month     *int            `gorm:"column:month"` // 1..12, nil for yearly target submissions
	Status    workflow.Status `gorm:"column:submission_status;type:enum('Draft','Submitted','Approved','Validated','Rejected','Admin_Rejected');default:'Draft'"`
	Comments  string          `gorm:"column:submission_comments;type:text"`

	StatusUpdatedAt time.Time      `gorm:"column:status_updated_at;autoCreateTime"`
	CreatedBy       string         `gorm:"column:created_by;size:32"`
	UpdatedBy       string         `gorm:"column:updated_by;size:32"`
	CreatedAt       time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time      `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt       gorm.DeletedAt `gorm:"column:deleted_at;index"`
	DeletedBy       *string        `gorm:"column:deleted_by;type:char(32)"`
}

func (Submission) TableName() string { return "submissions" }

// View projects the submission for the capability resolver.
func (s *Submission) View() workflow.SubmissionView {
	return workflow.SubmissionView{Type: s.Type, OrgUnitID: s.OrgUnitID, Status: s.Status}
}

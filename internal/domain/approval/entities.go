package approval

import (
	"errors"
	"time"

	"kpisuite-backend/internal/workflow"

	"gorm.io/gorm"
)

var (
	ErrNotFound        = errors.New("approval not found")
	ErrAlreadyResolved = errors.New("approval already resolved")
)

type Approval struct {
	// Internal numeric PK
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Public identifier (32-char lowercase hex)
	ApprovalID string `gorm:"column:approval_id;type:char(32);not null;uniqueIndex:ux_approvals_approval_id_active"`
	// FK to submissions.id (numeric)
	SubmissionID       uint64                  `gorm:"column:submission_id;not null;index:idx_approvals_submission"`
	ApproverEmployeeID string                  `gorm:"column:approver_employee_id;type:char(32);not null;index:idx_approvals_approver"`
	Status             workflow.ApprovalStatus `gorm:"column:approval_status;type:enum('Pending','Approved','Rejected');default:'Pending'"`
	Notes              string                  `gorm:"column:approval_notes;type:text"`
	DecidedAt          *time.Time              `gorm:"column:decided_at"`
	CreatedAt          time.Time               `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt          time.Time               `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt          gorm.DeletedAt          `gorm:"column:deleted_at;index"`
	DeletedBy          *string                 `gorm:"column:deleted_by;type:char(32)"`
}

func (Approval) TableName() string { return "approvals" }

// View projects the approval for the capability resolver.
func (a *Approval) View() workflow.ApprovalView {
	return workflow.ApprovalView{ApproverEmployeeID: a.ApproverEmployeeID, Status: a.Status}
}

// Views maps a slice of approvals for the resolver.
func Views(rows []Approval) []workflow.ApprovalView {
	out := make([]workflow.ApprovalView, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].View())
	}
	return out
}

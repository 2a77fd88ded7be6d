package submission

import (
	"time"

	"kpisuite-backend/internal/workflow"

	domain "kpisuite-backend/internal/domain/submission"
)

type SubmissionDTO struct {
	SubmissionID string                  `json:"submission_id"`
	Type         workflow.SubmissionType `json:"submission_type"`
	OrgUnitID    uint64                  `json:"org_unit_id"`
	PeriodID     uint64                  `json:"period_id"`
	Month        *int                    `json:"month,omitempty"`
	Status       workflow.Status         `json:"submission_status"`
	Comments     string                  `json:"submission_comments"`
	CreatedAt    time.Time               `json:"created_at"`
	UpdatedAt    time.Time               `json:"updated_at"`
}

type ApprovalDTO struct {
	ApprovalID         string                  `json:"approval_id"`
	SubmissionID       string                  `json:"submission_id"`
	ApproverEmployeeID string                  `json:"approver_employee_id"`
	Status             workflow.ApprovalStatus `json:"approval_status"`
	Notes              string                  `json:"approval_notes"`
	DecidedAt          *time.Time              `json:"decided_at,omitempty"`
}

// DetailDTO is what a workflow page renders: the record, its approvals, the
// evidence count, and the caller's capability set.
type DetailDTO struct {
	Submission    SubmissionDTO         `json:"submission"`
	Approvals     []ApprovalDTO         `json:"approvals"`
	EvidenceCount int                   `json:"evidence_count"`
	Capabilities  workflow.Capabilities `json:"capabilities"`
}

type TransitionInput struct {
	SubmissionID string
	Comments     string
	Actor        workflow.Identity
}

type DecideInput struct {
	ApprovalID string
	Approve    bool
	Notes      string
	Actor      workflow.Identity
}

func toDTO(s *domain.Submission) SubmissionDTO {
	return SubmissionDTO{
		SubmissionID: s.SubmissionID,
		Type:         s.Type,
		OrgUnitID:    s.OrgUnitID,
		PeriodID:     s.PeriodID,
		Month:        s.Month,
		Status:       s.Status,
		Comments:     s.Comments,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

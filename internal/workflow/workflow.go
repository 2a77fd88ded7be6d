package workflow

import "errors"

// Submission status lattice. Draft → Submitted → Approved → Validated is the
// success path; Rejected and Admin_Rejected are off-path and only lead back
// to Draft via revert.
type Status string

const (
	StatusDraft         Status = "Draft"
	StatusSubmitted     Status = "Submitted"
	StatusApproved      Status = "Approved"
	StatusValidated     Status = "Validated"
	StatusRejected      Status = "Rejected"
	StatusAdminRejected Status = "Admin_Rejected"
)

type Action string

const (
	ActionSubmit        Action = "Submit"
	ActionApprove       Action = "Approve"
	ActionReject        Action = "Reject"
	ActionValidate      Action = "Validate"
	ActionAdminReject   Action = "Admin_Reject"
	ActionRevertToDraft Action = "Revert_To_Draft"
)

// SubmissionType distinguishes planned targets from realized actuals; only
// actuals carry the evidence requirement on submit.
type SubmissionType string

const (
	TypeTarget SubmissionType = "Target"
	TypeActual SubmissionType = "Actual"
)

// ApprovalStatus is the per-approver decision state. Once resolved it is
// immutable.
type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "Pending"
	ApprovalApproved ApprovalStatus = "Approved"
	ApprovalRejected ApprovalStatus = "Rejected"
)

var ErrInvalidTransition = errors.New("invalid submission status transition")

var transitions = map[Status]map[Action]Status{
	StatusDraft: {
		ActionSubmit: StatusSubmitted,
	},
	StatusSubmitted: {
		ActionApprove: StatusApproved,
		ActionReject:  StatusRejected,
	},
	StatusApproved: {
		ActionValidate:    StatusValidated,
		ActionAdminReject: StatusAdminRejected,
	},
	StatusRejected: {
		ActionRevertToDraft: StatusDraft,
	},
	StatusAdminRejected: {
		ActionRevertToDraft: StatusDraft,
	},
	// Validated is terminal.
}

// Transition returns the status an action leads to from the given status, or
// ErrInvalidTransition when the lattice does not allow it.
func Transition(from Status, a Action) (Status, error) {
	if next, ok := transitions[from][a]; ok {
		return next, nil
	}
	return from, ErrInvalidTransition
}

// Target returns the status an action leads to regardless of origin. Every
// action has exactly one target in the lattice.
func Target(a Action) Status {
	switch a {
	case ActionSubmit:
		return StatusSubmitted
	case ActionApprove:
		return StatusApproved
	case ActionReject:
		return StatusRejected
	case ActionValidate:
		return StatusValidated
	case ActionAdminReject:
		return StatusAdminRejected
	case ActionRevertToDraft:
		return StatusDraft
	}
	return ""
}

// ValidStatus reports whether s is one of the defined lattice states.
func ValidStatus(s Status) bool {
	switch s {
	case StatusDraft, StatusSubmitted, StatusApproved, StatusValidated, StatusRejected, StatusAdminRejected:
		return true
	}
	return false
}

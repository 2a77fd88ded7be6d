package workflow

// RoleValidator marks users allowed to validate/admin-reject approved
// submissions.
const RoleValidator = "validator"

// Identity is the slice of the authenticated user the resolver needs.
type Identity struct {
	EmployeeID  string
	OrgUnitID   uint64
	IsSuperuser bool
	Roles       []string
}

func (id Identity) HasRole(role string) bool {
	for _, r := range id.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Validator reports whether the identity holds the validator capability.
func (id Identity) Validator() bool {
	return id.IsSuperuser || id.HasRole(RoleValidator)
}

// SubmissionView is the projection of a submission the resolver reads.
type SubmissionView struct {
	Type      SubmissionType
	OrgUnitID uint64
	Status    Status
}

// ApprovalView is the projection of one approval row.
type ApprovalView struct {
	ApproverEmployeeID string
	Status             ApprovalStatus
}

// Capabilities is the set of actions the current user may take on a
// submission. It is a pure function of (identity, status, approvals,
// evidence) and must be recomputed after every transition, never cached.
type Capabilities struct {
	CanView           bool `json:"can_view"`
	CanEdit           bool `json:"can_edit"`
	CanSubmit         bool `json:"can_submit"`
	CanApprove        bool `json:"can_approve"`
	CanValidate       bool `json:"can_validate"`
	CanRevertToDraft  bool `json:"can_revert_to_draft"`
	CanSubmitEvidence bool `json:"can_submit_evidence"`
}

// Resolve computes the capability set for one user against one submission.
//
// CanSubmit folds in the evidence gate: an Actual submission needs at least
// one evidence file before submit is offered. This is a UX guard; the submit
// use case re-validates it server-side.
func Resolve(id Identity, sub SubmissionView, approvals []ApprovalView, evidenceCount int) Capabilities {
	owns := sub.OrgUnitID == id.OrgUnitID

	var c Capabilities
	c.CanEdit = owns && sub.Status == StatusDraft
	c.CanSubmitEvidence = c.CanEdit
	c.CanSubmit = c.CanEdit && (sub.Type != TypeActual || evidenceCount > 0)
	c.CanApprove = sub.Status == StatusSubmitted && hasPendingFor(approvals, id.EmployeeID)
	c.CanValidate = sub.Status == StatusApproved && id.Validator()
	c.CanRevertToDraft = owns && (sub.Status == StatusRejected || sub.Status == StatusAdminRejected)
	c.CanView = owns || id.IsSuperuser || id.Validator() || isAssigned(approvals, id.EmployeeID)
	return c
}

func hasPendingFor(approvals []ApprovalView, employeeID string) bool {
	for _, a := range approvals {
		if a.ApproverEmployeeID == employeeID && a.Status == ApprovalPending {
			return true
		}
	}
	return false
}

func isAssigned(approvals []ApprovalView, employeeID string) bool {
	for _, a := range approvals {
		if a.ApproverEmployeeID == employeeID {
			return true
		}
	}
	return false
}

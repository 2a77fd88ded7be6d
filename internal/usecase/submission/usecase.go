package submission

import (
	"context"
	"errors"
	"time"

	domainApproval "kpisuite-backend/internal/domain/approval"
	domainSubmission "kpisuite-backend/internal/domain/submission"
	"kpisuite-backend/internal/domain/evidence"
	"kpisuite-backend/internal/domain/orgunit"
	"kpisuite-backend/internal/domain/uow"
	"kpisuite-backend/internal/workflow"
	"kpisuite-backend/pkg/id"

	"gorm.io/gorm"
)

// maxOrgDepth caps the ancestor walk during approver fan-out; real
// hierarchies are 3-5 levels deep.
const maxOrgDepth = 16

type Usecase struct {
	subRepo  domainSubmission.Repository
	apprRepo domainApproval.Repository
	evidRepo evidence.Repository
	orgRepo  orgunit.Repository
	uow      uow.UnitOfWork
}

func NewUsecase(subs domainSubmission.Repository, apprs domainApproval.Repository, evid evidence.Repository, orgs orgunit.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{subRepo: subs, apprRepo: apprs, evidRepo: evid, orgRepo: orgs, uow: tx}
}

// Get returns the submission, its approvals, the evidence count and the
// caller's capability set, resolved fresh on every call.
func (u *Usecase) Get(ctx context.Context, submissionID string, actor workflow.Identity) (*DetailDTO, error) {
	s, err := u.subRepo.GetBySubmissionID(ctx, submissionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainSubmission.ErrNotFound
		}
		return nil, err
	}

	approvals, err := u.apprRepo.ListBySubmissionID(ctx, s.ID)
	if err != nil {
		return nil, err
	}
	count, err := u.evidRepo.CountBySubmissionID(ctx, s.ID)
	if err != nil {
		return nil, err
	}

	caps := workflow.Resolve(actor, s.View(), domainApproval.Views(approvals), int(count))
	if !caps.CanView {
		return nil, domainSubmission.ErrNotAllowed
	}

	out := &DetailDTO{
		Submission:    toDTO(s),
		Approvals:     make([]ApprovalDTO, 0, len(approvals)),
		EvidenceCount: int(count),
		Capabilities:  caps,
	}
	for i := range approvals {
		out.Approvals = append(out.Approvals, approvalDTO(&approvals[i], s.SubmissionID))
	}
	return out, nil
}

func (u *Usecase) List(ctx context.Context, f domainSubmission.Filter) ([]SubmissionDTO, error) {
	rows, err := u.subRepo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]SubmissionDTO, 0, len(rows))
	for i := range rows {
		out = append(out, toDTO(&rows[i]))
	}
	return out, nil
}

// Submit moves a draft to Submitted and fans out one pending approval per
// ancestor org-unit head. Actuals require at least one evidence file; the
// resolver disables the button client-side, this re-validates server-side.
func (u *Usecase) Submit(ctx context.Context, in TransitionInput) (*SubmissionDTO, error) {
	var dto *SubmissionDTO
	err := u.uow.WithinSubmissionTx(ctx, in.SubmissionID, func(r uow.Repos, s *domainSubmission.Submission) error {
		if s.OrgUnitID != in.Actor.OrgUnitID {
			return domainSubmission.ErrNotAllowed
		}
		next, err := workflow.Transition(s.Status, workflow.ActionSubmit)
		if err != nil {
			return err
		}
		if s.Type == workflow.TypeActual {
			n, err := r.Evidence.CountBySubmissionID(ctx, s.ID)
			if err != nil {
				return err
			}
			if n == 0 {
				return domainSubmission.ErrEvidenceRequired
			}
		}

		approvers, err := u.approverChain(ctx, s.OrgUnitID)
		if err != nil {
			return err
		}
		if len(approvers) == 0 {
			return domainSubmission.ErrNoApprover
		}
		for _, emp := range approvers {
			a := &domainApproval.Approval{
				ApprovalID:         id.NewID32(),
				SubmissionID:       s.ID,
				ApproverEmployeeID: emp,
				Status:             workflow.ApprovalPending,
			}
			if err := r.Approvals.Create(ctx, a); err != nil {
				return err
			}
		}

		applyStatus(s, next, in)
		if err := r.Submissions.Save(ctx, s); err != nil {
			return err
		}
		d := toDTO(s)
		dto = &d
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// Decide resolves one pending approval and moves the submission to Approved
// or Rejected. On approve, the remaining pending rows are resolved alongside
// so no stale approvals linger.
func (u *Usecase) Decide(ctx context.Context, in DecideInput) (*ApprovalDTO, error) {
	var dto *ApprovalDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		a, err := r.Approvals.GetByApprovalID(ctx, in.ApprovalID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainApproval.ErrNotFound
			}
			return err
		}
		if a.Status != workflow.ApprovalPending {
			return domainApproval.ErrAlreadyResolved
		}
		if a.ApproverEmployeeID != in.Actor.EmployeeID {
			return domainSubmission.ErrNotAllowed
		}

		s, err := r.Submissions.GetByIDForUpdate(ctx, a.SubmissionID)
		if err != nil {
			return domainSubmission.ErrNotFound
		}

		action := workflow.ActionReject
		decision := workflow.ApprovalRejected
		if in.Approve {
			action = workflow.ActionApprove
			decision = workflow.ApprovalApproved
		}
		next, err := workflow.Transition(s.Status, action)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		a.Status = decision
		a.Notes = in.Notes
		a.DecidedAt = &now
		if err := r.Approvals.Save(ctx, a); err != nil {
			return err
		}

		if in.Approve {
			rows, err := r.Approvals.ListBySubmissionID(ctx, s.ID)
			if err != nil {
				return err
			}
			for i := range rows {
				other := &rows[i]
				if other.ID == a.ID || other.Status != workflow.ApprovalPending {
					continue
				}
				other.Status = workflow.ApprovalApproved
				other.DecidedAt = &now
				if err := r.Approvals.Save(ctx, other); err != nil {
					return err
				}
			}
		}

		applyStatus(s, next, TransitionInput{Actor: in.Actor})
		if err := r.Submissions.Save(ctx, s); err != nil {
			return err
		}
		d := approvalDTO(a, s.SubmissionID)
		dto = &d
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// Validate marks an approved submission as final.
func (u *Usecase) Validate(ctx context.Context, in TransitionInput) (*SubmissionDTO, error) {
	return u.validatorTransition(ctx, in, workflow.ActionValidate)
}

// AdminReject sends an approved submission off-path.
func (u *Usecase) AdminReject(ctx context.Context, in TransitionInput) (*SubmissionDTO, error) {
	return u.validatorTransition(ctx, in, workflow.ActionAdminReject)
}

func (u *Usecase) validatorTransition(ctx context.Context, in TransitionInput, action workflow.Action) (*SubmissionDTO, error) {
	var dto *SubmissionDTO
	err := u.uow.WithinSubmissionTx(ctx, in.SubmissionID, func(r uow.Repos, s *domainSubmission.Submission) error {
		if !in.Actor.Validator() {
			return domainSubmission.ErrNotAllowed
		}
		next, err := workflow.Transition(s.Status, action)
		if err != nil {
			return err
		}
		applyStatus(s, next, in)
		if err := r.Submissions.Save(ctx, s); err != nil {
			return err
		}
		d := toDTO(s)
		dto = &d
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// RevertToDraft returns a rejected submission to its owner for rework. Open
// approvals are invalidated here, server-side.
func (u *Usecase) RevertToDraft(ctx context.Context, in TransitionInput) (*SubmissionDTO, error) {
	var dto *SubmissionDTO
	err := u.uow.WithinSubmissionTx(ctx, in.SubmissionID, func(r uow.Repos, s *domainSubmission.Submission) error {
		if s.OrgUnitID != in.Actor.OrgUnitID {
			return domainSubmission.ErrNotAllowed
		}
		next, err := workflow.Transition(s.Status, workflow.ActionRevertToDraft)
		if err != nil {
			return err
		}
		if err := r.Approvals.SoftDeletePending(ctx, s.ID, in.Actor.EmployeeID); err != nil {
			return err
		}
		applyStatus(s, next, in)
		if err := r.Submissions.Save(ctx, s); err != nil {
			return err
		}
		d := toDTO(s)
		dto = &d
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// approverChain walks the org hierarchy upward and collects the heads of the
// ancestor units, closest parent first.
func (u *Usecase) approverChain(ctx context.Context, orgUnitID uint64) ([]string, error) {
	unit, err := u.orgRepo.GetByID(ctx, orgUnitID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, orgunit.ErrNotFound) {
			return nil, orgunit.ErrNotFound
		}
		return nil, err
	}

	var heads []string
	seen := map[uint64]bool{unit.ID: true}
	for depth := 0; unit.ParentID != nil && depth < maxOrgDepth; depth++ {
		if seen[*unit.ParentID] {
			break // defensive against hierarchy cycles
		}
		parent, err := u.orgRepo.GetByID(ctx, *unit.ParentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, orgunit.ErrNotFound) {
				break
			}
			return nil, err
		}
		if parent.HeadEmployeeID != "" {
			heads = append(heads, parent.HeadEmployeeID)
		}
		seen[parent.ID] = true
		unit = parent
	}
	return heads, nil
}

func applyStatus(s *domainSubmission.Submission, next workflow.Status, in TransitionInput) {
	s.Status = next
	s.StatusUpdatedAt = time.Now().UTC()
	s.UpdatedBy = in.Actor.EmployeeID
	if in.Comments != "" {
		s.Comments = in.Comments
	}
}

func approvalDTO(a *domainApproval.Approval, submissionID string) ApprovalDTO {
	return ApprovalDTO{
		ApprovalID:         a.ApprovalID,
		SubmissionID:       submissionID,
		ApproverEmployeeID: a.ApproverEmployeeID,
		Status:             a.Status,
		Notes:              a.Notes,
		DecidedAt:          a.DecidedAt,
	}
}

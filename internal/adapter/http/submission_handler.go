package http

import (
	"net/http"
	"strconv"

	"kpisuite-backend/internal/adapter/middleware"
	domain "kpisuite-backend/internal/domain/submission"
	"kpisuite-backend/internal/usecase/submission"
	"kpisuite-backend/internal/workflow"

	"github.com/labstack/echo/v4"
)

type SubmissionHandler struct{ uc *submission.Usecase }

func NewSubmissionHandler(uc *submission.Usecase) *SubmissionHandler {
	return &SubmissionHandler{uc: uc}
}

func (h *SubmissionHandler) GetSubmission(c echo.Context) error {
	submissionID := c.Param("submission_id")
	if !reHex32.MatchString(submissionID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid submission_id path param"})
	}
	actor, ok := middleware.IdentityFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing identity"})
	}
	dto, err := h.uc.Get(c.Request().Context(), submissionID, actor)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *SubmissionHandler) ListSubmissions(c echo.Context) error {
	f := domain.Filter{}
	if v := c.QueryParam("org_unit_id"); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid org_unit_id"})
		}
		f.OrgUnitID = n
	}
	if v := c.QueryParam("period_id"); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid period_id"})
		}
		f.PeriodID = n
	}
	if v := c.QueryParam("submission_status"); v != "" {
		s := workflow.Status(v)
		if !workflow.ValidStatus(s) {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid submission_status"})
		}
		f.Status = s
	}
	if v := c.QueryParam("submission_type"); v != "" {
		if v != string(workflow.TypeTarget) && v != string(workflow.TypeActual) {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid submission_type"})
		}
		f.Type = workflow.SubmissionType(v)
	}
	rows, err := h.uc.List(c.Request().Context(), f)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}

type updateStatusReq struct {
	Action   string `json:"submission_action"    validate:"required,oneof=Submit Validate Admin_Reject Revert_To_Draft"`
	Comments string `json:"submission_comments"`
}

// UpdateSubmissionStatus runs the requested lattice transition. Approve and
// Reject are not accepted here; they go through the approval endpoint so the
// decision lands on a concrete approval row.
func (h *SubmissionHandler) UpdateSubmissionStatus(c echo.Context) error {
	submissionID := c.Param("submission_id")
	if !reHex32.MatchString(submissionID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid submission_id path param"})
	}
	actor, ok := middleware.IdentityFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing identity"})
	}

	var req updateStatusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	in := submission.TransitionInput{
		SubmissionID: submissionID,
		Comments:     req.Comments,
		Actor:        actor,
	}

	var (
		dto *submission.SubmissionDTO
		err error
	)
	switch workflow.Action(req.Action) {
	case workflow.ActionSubmit:
		dto, err = h.uc.Submit(c.Request().Context(), in)
	case workflow.ActionValidate:
		dto, err = h.uc.Validate(c.Request().Context(), in)
	case workflow.ActionAdminReject:
		dto, err = h.uc.AdminReject(c.Request().Context(), in)
	case workflow.ActionRevertToDraft:
		dto, err = h.uc.RevertToDraft(c.Request().Context(), in)
	}
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

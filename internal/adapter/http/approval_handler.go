package http

import (
	"net/http"

	"kpisuite-backend/internal/adapter/middleware"
	"kpisuite-backend/internal/usecase/submission"
	"kpisuite-backend/internal/workflow"

	"github.com/labstack/echo/v4"
)

type ApprovalHandler struct{ uc *submission.Usecase }

func NewApprovalHandler(uc *submission.Usecase) *ApprovalHandler {
	return &ApprovalHandler{uc: uc}
}

// ListApprovals returns the approval trail of one submission, gated by the
// caller's view capability.
func (h *ApprovalHandler) ListApprovals(c echo.Context) error {
	submissionID := c.Param("submission_id")
	if !reHex32.MatchString(submissionID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid submission_id path param"})
	}
	actor, ok := middleware.IdentityFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing identity"})
	}
	detail, err := h.uc.Get(c.Request().Context(), submissionID, actor)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, detail.Approvals)
}

type decideApprovalReq struct {
	Status string `json:"approval_status" validate:"required,oneof=Approved Rejected"`
	Notes  string `json:"approval_notes"`
}

// DecideApproval resolves one pending approval row and advances (or rejects)
// the submission.
func (h *ApprovalHandler) DecideApproval(c echo.Context) error {
	approvalID := c.Param("approval_id")
	if !reHex32.MatchString(approvalID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid approval_id path param"})
	}
	actor, ok := middleware.IdentityFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing identity"})
	}

	var req decideApprovalReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.uc.Decide(c.Request().Context(), submission.DecideInput{
		ApprovalID: approvalID,
		Approve:    workflow.ApprovalStatus(req.Status) == workflow.ApprovalApproved,
		Notes:      req.Notes,
		Actor:      actor,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

package http

import (
	"errors"
	"net/http"
	"strings"

	"kpisuite-backend/internal/auth"
	"kpisuite-backend/internal/domain/approval"
	"kpisuite-backend/internal/domain/evidence"
	"kpisuite-backend/internal/domain/kpi"
	"kpisuite-backend/internal/domain/orgunit"
	"kpisuite-backend/internal/domain/period"
	"kpisuite-backend/internal/domain/submission"
	"kpisuite-backend/internal/workflow"

	"github.com/labstack/echo/v4"
)

// ---- helpers ----

// writeDomainError maps domain sentinel errors onto HTTP status codes. Anything
// unrecognized is a 500 with a generic message so internals never leak.
func writeDomainError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, submission.ErrNotFound),
		errors.Is(err, approval.ErrNotFound),
		errors.Is(err, kpi.ErrDefinitionNotFound),
		errors.Is(err, orgunit.ErrNotFound),
		errors.Is(err, period.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, submission.ErrNotAllowed):
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	case errors.Is(err, workflow.ErrInvalidTransition),
		errors.Is(err, approval.ErrAlreadyResolved),
		errors.Is(err, evidence.ErrSubmissionNotDraft):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, submission.ErrEvidenceRequired),
		errors.Is(err, submission.ErrNoApprover):
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	case errors.Is(err, auth.ErrTokenInvalid), errors.Is(err, auth.ErrRefreshUnknown):
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}

package http

import (
	"net/http"

	"kpisuite-backend/internal/adapter/middleware"
	"kpisuite-backend/internal/usecase/evidence"

	"github.com/labstack/echo/v4"
)

type EvidenceHandler struct{ uc *evidence.Usecase }

func NewEvidenceHandler(uc *evidence.Usecase) *EvidenceHandler {
	return &EvidenceHandler{uc: uc}
}

// UploadEvidence accepts one multipart file under the "file" field.
func (h *EvidenceHandler) UploadEvidence(c echo.Context) error {
	submissionID := c.Param("submission_id")
	if !reHex32.MatchString(submissionID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid submission_id path param"})
	}
	actor, ok := middleware.IdentityFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing identity"})
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing multipart field \"file\""})
	}
	src, err := fh.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unreadable upload"})
	}
	defer src.Close()

	dto, err := h.uc.Upload(c.Request().Context(), evidence.UploadInput{
		SubmissionID: submissionID,
		FileName:     fh.Filename,
		Content:      src,
		Actor:        actor,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *EvidenceHandler) ListEvidence(c echo.Context) error {
	submissionID := c.Param("submission_id")
	if !reHex32.MatchString(submissionID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid submission_id path param"})
	}
	actor, ok := middleware.IdentityFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing identity"})
	}
	rows, err := h.uc.List(c.Request().Context(), submissionID, actor)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}

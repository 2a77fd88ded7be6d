package http

import (
	"net/http"
	"strconv"

	"kpisuite-backend/internal/usecase/period"

	"github.com/labstack/echo/v4"
)

type PeriodHandler struct{ uc *period.Usecase }

func NewPeriodHandler(uc *period.Usecase) *PeriodHandler { return &PeriodHandler{uc: uc} }

func (h *PeriodHandler) ListPeriods(c echo.Context) error {
	rows, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *PeriodHandler) GetPeriod(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("period_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid period_id path param"})
	}
	dto, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

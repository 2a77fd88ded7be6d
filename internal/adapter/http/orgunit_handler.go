package http

import (
	"net/http"
	"strconv"

	"kpisuite-backend/internal/usecase/orgunit"

	"github.com/labstack/echo/v4"
)

type OrgUnitHandler struct{ uc *orgunit.Usecase }

func NewOrgUnitHandler(uc *orgunit.Usecase) *OrgUnitHandler { return &OrgUnitHandler{uc: uc} }

func orgUnitIDParam(c echo.Context) (uint64, error) {
	return strconv.ParseUint(c.Param("org_unit_id"), 10, 64)
}

func (h *OrgUnitHandler) GetOrgUnit(c echo.Context) error {
	id, err := orgUnitIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid org_unit_id path param"})
	}
	dto, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *OrgUnitHandler) ListChildren(c echo.Context) error {
	id, err := orgUnitIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid org_unit_id path param"})
	}
	rows, err := h.uc.Children(c.Request().Context(), id)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *OrgUnitHandler) GetAncestors(c echo.Context) error {
	id, err := orgUnitIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid org_unit_id path param"})
	}
	rows, err := h.uc.AncestorChain(c.Request().Context(), id)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}

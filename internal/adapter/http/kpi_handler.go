package http

import (
	"net/http"
	"strconv"

	"kpisuite-backend/internal/adapter/middleware"
	domainKPI "kpisuite-backend/internal/domain/kpi"
	"kpisuite-backend/internal/usecase/kpi"

	"github.com/labstack/echo/v4"
)

type KPIHandler struct{ uc *kpi.Usecase }

func NewKPIHandler(uc *kpi.Usecase) *KPIHandler { return &KPIHandler{uc: uc} }

type createDefinitionReq struct {
	Code              string  `json:"code"               validate:"required"`
	Name              string  `json:"name"               validate:"required"`
	Perspective       string  `json:"perspective"`
	Category          string  `json:"category"`
	Weight            float64 `json:"weight"             validate:"gte=0,lte=100,dec2"`
	UnitOfMeasure     string  `json:"unit_of_measure"`
	CalculationMethod string  `json:"calculation_method" validate:"omitempty,oneof=higher_better lower_better stabilize"`
	OrgUnitID         uint64  `json:"org_unit_id"        validate:"required"`
}

func (h *KPIHandler) CreateDefinition(c echo.Context) error {
	var req createDefinitionReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.CreateDefinition(c.Request().Context(), kpi.CreateDefinitionInput{
		Code:              req.Code,
		Name:              req.Name,
		Perspective:       req.Perspective,
		Category:          req.Category,
		Weight:            req.Weight,
		UnitOfMeasure:     req.UnitOfMeasure,
		CalculationMethod: domainKPI.CalculationMethod(req.CalculationMethod),
		OrgUnitID:         req.OrgUnitID,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *KPIHandler) GetDefinition(c echo.Context) error {
	definitionID := c.Param("definition_id")
	if !reHex32.MatchString(definitionID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid definition_id path param"})
	}
	dto, err := h.uc.GetDefinition(c.Request().Context(), definitionID)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *KPIHandler) ListDefinitions(c echo.Context) error {
	f := domainKPI.DefinitionFilter{
		Perspective: c.QueryParam("perspective"),
		Category:    c.QueryParam("category"),
	}
	if v := c.QueryParam("org_unit_id"); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid org_unit_id"})
		}
		f.OrgUnitID = n
	}
	rows, err := h.uc.ListDefinitions(c.Request().Context(), f)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}

type bulkTargetsReq struct {
	Items []targetItemReq `json:"targets" validate:"required,min=1,dive"`
}

type targetItemReq struct {
	DefinitionID string  `json:"definition_id" validate:"required,hex32"`
	Month        int     `json:"month"         validate:"required,gte=1,lte=12"`
	Value        float64 `json:"target_value"  validate:"dec2"`
}

// BulkUpsertTargets replaces the monthly target values of one draft target
// submission, all-or-nothing.
func (h *KPIHandler) BulkUpsertTargets(c echo.Context) error {
	submissionID := c.Param("submission_id")
	if !reHex32.MatchString(submissionID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid submission_id path param"})
	}
	actor, ok := middleware.IdentityFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing identity"})
	}

	var req bulkTargetsReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	items := make([]kpi.TargetItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, kpi.TargetItem{DefinitionID: it.DefinitionID, Month: it.Month, Value: it.Value})
	}
	n, err := h.uc.BulkUpsertTargets(c.Request().Context(), kpi.BulkTargetsInput{
		SubmissionID: submissionID,
		Items:        items,
		Actor:        actor,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]int{"updated": n})
}

type upsertActualReq struct {
	Month                 int     `json:"month"                  validate:"required,gte=1,lte=12"`
	Value                 float64 `json:"actual_value"           validate:"dec2"`
	ProblemIdentification string  `json:"problem_identification"`
	CorrectiveAction      string  `json:"corrective_action"`
}

func (h *KPIHandler) UpsertActual(c echo.Context) error {
	submissionID := c.Param("submission_id")
	definitionID := c.Param("definition_id")
	if !reHex32.MatchString(submissionID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid submission_id path param"})
	}
	if !reHex32.MatchString(definitionID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid definition_id path param"})
	}
	actor, ok := middleware.IdentityFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing identity"})
	}

	var req upsertActualReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.uc.UpsertActual(c.Request().Context(), kpi.ActualInput{
		SubmissionID:          submissionID,
		DefinitionID:          definitionID,
		Month:                 req.Month,
		Value:                 req.Value,
		ProblemIdentification: req.ProblemIdentification,
		CorrectiveAction:      req.CorrectiveAction,
		Actor:                 actor,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

package http

import (
	"crypto/subtle"
	"net/http"

	"kpisuite-backend/internal/auth"

	"github.com/labstack/echo/v4"
)

// AuthHandler issues and refreshes session token pairs. Token issuance is a
// trusted endpoint for the SSO callback service, guarded by a shared key; end
// users never call it directly.
type AuthHandler struct {
	tm       *auth.TokenManager
	issueKey string
}

func NewAuthHandler(tm *auth.TokenManager, issueKey string) *AuthHandler {
	return &AuthHandler{tm: tm, issueKey: issueKey}
}

type issueTokenReq struct {
	UserID      string   `json:"user_id"      validate:"required"`
	Email       string   `json:"email"        validate:"required,email"`
	EmployeeID  string   `json:"employee_id"  validate:"required"`
	OrgUnitID   uint64   `json:"org_unit_id"  validate:"required"`
	IsSuperuser bool     `json:"is_superuser"`
	Roles       []string `json:"roles"`
	AllowedApps []string `json:"allowed_apps"`
}

func (h *AuthHandler) IssueToken(c echo.Context) error {
	key := c.Request().Header.Get("X-Issuer-Key")
	if subtle.ConstantTimeCompare([]byte(key), []byte(h.issueKey)) != 1 {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid issuer key"})
	}

	var req issueTokenReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	pair, err := h.tm.Issue(c.Request().Context(), auth.User{
		ID:          req.UserID,
		Email:       req.Email,
		EmployeeID:  req.EmployeeID,
		OrgUnitID:   req.OrgUnitID,
		IsSuperuser: req.IsSuperuser,
		Roles:       req.Roles,
		AllowedApps: req.AllowedApps,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, pair)
}

type refreshReq struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

func (h *AuthHandler) RefreshToken(c echo.Context) error {
	var req refreshReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	pair, err := h.tm.Refresh(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, pair)
}

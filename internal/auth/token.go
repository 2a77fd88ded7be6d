package auth

import (
	"context"
	"errors"
	"time"

	"kpisuite-backend/internal/workflow"
	"kpisuite-backend/pkg/id"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenInvalid   = errors.New("token is invalid or expired")
	ErrRefreshUnknown = errors.New("refresh token is unknown or already used")
)

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

// Claims extends the registered JWT claims with the session fields the
// dashboard apps read: identity, org unit, role flags, and the app list.
type Claims struct {
	jwt.RegisteredClaims
	TokenType   string   `json:"token_type"`
	Email       string   `json:"email"`
	EmployeeID  string   `json:"employee_id"`
	OrgUnitID   uint64   `json:"org_unit_id"`
	IsSuperuser bool     `json:"is_superuser"`
	Roles       []string `json:"roles,omitempty"`
	AllowedApps []string `json:"allowed_apps,omitempty"`
}

// Identity projects the claims for the capability resolver.
func (c *Claims) Identity() workflow.Identity {
	return workflow.Identity{
		EmployeeID:  c.EmployeeID,
		OrgUnitID:   c.OrgUnitID,
		IsSuperuser: c.IsSuperuser,
		Roles:       c.Roles,
	}
}

// User is the profile the SSO callback hands over when asking for tokens.
type User struct {
	ID          string
	Email       string
	EmployeeID  string
	OrgUnitID   uint64
	IsSuperuser bool
	Roles       []string
	AllowedApps []string
}

type TokenPair struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// RefreshStore remembers which refresh-token ids are still good. Take is
// destructive so each refresh token can be redeemed exactly once.
type RefreshStore interface {
	Put(ctx context.Context, jti, subject string, ttl time.Duration) error
	Take(ctx context.Context, jti string) (string, error)
}

// TokenManager signs and validates HS256 session tokens.
type TokenManager struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	store      RefreshStore
}

func NewTokenManager(secret []byte, accessTTL, refreshTTL time.Duration, store RefreshStore) *TokenManager {
	return &TokenManager{secret: secret, accessTTL: accessTTL, refreshTTL: refreshTTL, store: store}
}

// Issue returns a fresh access/refresh pair and registers the refresh jti.
func (tm *TokenManager) Issue(ctx context.Context, u User) (*TokenPair, error) {
	now := time.Now().UTC()

	access, accessExp, err := tm.sign(u, tokenTypeAccess, id.NewID32(), now, tm.accessTTL)
	if err != nil {
		return nil, err
	}

	refreshJTI := id.NewID32()
	refresh, _, err := tm.sign(u, tokenTypeRefresh, refreshJTI, now, tm.refreshTTL)
	if err != nil {
		return nil, err
	}
	if err := tm.store.Put(ctx, refreshJTI, u.ID, tm.refreshTTL); err != nil {
		return nil, err
	}

	return &TokenPair{AccessToken: access, RefreshToken: refresh, ExpiresAt: accessExp}, nil
}

// Refresh redeems a refresh token for a new pair. The jti is consumed first,
// so a reused token fails even when its signature still verifies.
func (tm *TokenManager) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := tm.parse(refreshToken)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != tokenTypeRefresh {
		return nil, ErrTokenInvalid
	}

	subject, err := tm.store.Take(ctx, claims.ID)
	if err != nil {
		return nil, ErrRefreshUnknown
	}
	if subject != claims.Subject {
		return nil, ErrRefreshUnknown
	}

	return tm.Issue(ctx, User{
		ID:          claims.Subject,
		Email:       claims.Email,
		EmployeeID:  claims.EmployeeID,
		OrgUnitID:   claims.OrgUnitID,
		IsSuperuser: claims.IsSuperuser,
		Roles:       claims.Roles,
		AllowedApps: claims.AllowedApps,
	})
}

// Parse validates an access token and returns its claims.
func (tm *TokenManager) Parse(tokenString string) (*Claims, error) {
	claims, err := tm.parse(tokenString)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != tokenTypeAccess {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}

func (tm *TokenManager) parse(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return tm.secret, nil
	})
	if err != nil {
		return nil, ErrTokenInvalid
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}

func (tm *TokenManager) sign(u User, typ, jti string, now time.Time, ttl time.Duration) (string, time.Time, error) {
	exp := now.Add(ttl)
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			Subject:   u.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
			Issuer:    "kpisuite",
		},
		TokenType:   typ,
		Email:       u.Email,
		EmployeeID:  u.EmployeeID,
		OrgUnitID:   u.OrgUnitID,
		IsSuperuser: u.IsSuperuser,
		Roles:       u.Roles,
		AllowedApps: u.AllowedApps,
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(tm.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}

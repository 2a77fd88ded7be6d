package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

var secret = []byte("test-secret-not-for-production!!")

func testUser() User {
	return User{
		ID:          "usr00000000000000000000000000001",
		Email:       "head@example.com",
		EmployeeID:  "emp00000000000000000000000000001",
		OrgUnitID:   5,
		Roles:       []string{"validator"},
		AllowedApps: []string{"performance", "dashboard"},
	}
}

func newManager(t *testing.T, accessTTL time.Duration) (*TokenManager, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewTokenManager(secret, accessTTL, 24*time.Hour, NewRedisRefreshStore(rdb)), mr
}

func TestIssueAndParse(t *testing.T) {
	tm, _ := newManager(t, 15*time.Minute)

	pair, err := tm.Issue(context.Background(), testUser())
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatalf("empty pair: %+v", pair)
	}

	claims, err := tm.Parse(pair.AccessToken)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if claims.Email != "head@example.com" || claims.OrgUnitID != 5 || !claims.Identity().Validator() {
		t.Fatalf("claims = %+v", claims)
	}
	if len(claims.AllowedApps) != 2 {
		t.Fatalf("allowed_apps = %v", claims.AllowedApps)
	}

	// a refresh token must not pass as an access token
	if _, err := tm.Parse(pair.RefreshToken); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("refresh accepted as access: %v", err)
	}
}

func TestParse_GarbageAndWrongKey(t *testing.T) {
	tm, _ := newManager(t, 15*time.Minute)
	if _, err := tm.Parse("not-a-jwt"); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("err = %v", err)
	}

	other := NewTokenManager([]byte("a-different-secret-entirely-1234"), 15*time.Minute, time.Hour, tm.store)
	pair, err := other.Issue(context.Background(), testUser())
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	if _, err := tm.Parse(pair.AccessToken); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("foreign signature accepted: %v", err)
	}
}

func TestParse_Expired(t *testing.T) {
	tm, _ := newManager(t, -time.Minute) // already expired on issue
	pair, err := tm.Issue(context.Background(), testUser())
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	if _, err := tm.Parse(pair.AccessToken); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expired token accepted: %v", err)
	}
}

func TestRefresh_RotatesAndBlocksReuse(t *testing.T) {
	tm, _ := newManager(t, 15*time.Minute)
	ctx := context.Background()

	pair, err := tm.Issue(ctx, testUser())
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	next, err := tm.Refresh(ctx, pair.RefreshToken)
	if err != nil {
		t.Fatalf("Refresh error: %v", err)
	}
	if next.RefreshToken == pair.RefreshToken {
		t.Fatal("refresh token was not rotated")
	}
	if _, err := tm.Parse(next.AccessToken); err != nil {
		t.Fatalf("rotated access token invalid: %v", err)
	}

	// old refresh token is spent
	if _, err := tm.Refresh(ctx, pair.RefreshToken); !errors.Is(err, ErrRefreshUnknown) {
		t.Fatalf("reused refresh token accepted: %v", err)
	}

	// the rotated one still works
	if _, err := tm.Refresh(ctx, next.RefreshToken); err != nil {
		t.Fatalf("rotated refresh failed: %v", err)
	}
}

func TestRefresh_AccessTokenRejected(t *testing.T) {
	tm, _ := newManager(t, 15*time.Minute)
	pair, err := tm.Issue(context.Background(), testUser())
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	if _, err := tm.Refresh(context.Background(), pair.AccessToken); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("access token accepted for refresh: %v", err)
	}
}

func TestRefresh_StoreExpiry(t *testing.T) {
	tm, mr := newManager(t, 15*time.Minute)
	pair, err := tm.Issue(context.Background(), testUser())
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	mr.FastForward(25 * time.Hour) // jti evicted from the store

	if _, err := tm.Refresh(context.Background(), pair.RefreshToken); !errors.Is(err, ErrRefreshUnknown) {
		t.Fatalf("err = %v, want ErrRefreshUnknown", err)
	}
}

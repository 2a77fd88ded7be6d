package orgunit

import (
	"context"
	"errors"
	"testing"

	domain "kpisuite-backend/internal/domain/orgunit"
	"kpisuite-backend/internal/testutil/orgunitmock"
)

func uintPtr(v uint64) *uint64 { return &v }

func tree() *orgunitmock.Repo {
	return orgunitmock.Tree(
		domain.OrgUnit{ID: 1, Name: "Corporate"},
		domain.OrgUnit{ID: 3, ParentID: uintPtr(1), Name: "Division", HeadEmployeeID: "emp-head-3"},
		domain.OrgUnit{ID: 5, ParentID: uintPtr(3), Name: "Department"},
		domain.OrgUnit{ID: 6, ParentID: uintPtr(3), Name: "Sister Department"},
	)
}

func TestGet(t *testing.T) {
	u := NewUsecase(tree())

	dto, err := u.Get(context.Background(), 3)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if dto.Name != "Division" || dto.HeadEmployeeID != "emp-head-3" {
		t.Fatalf("dto = %+v", dto)
	}

	if _, err := u.Get(context.Background(), 99); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestChildren(t *testing.T) {
	u := NewUsecase(tree())

	rows, err := u.Children(context.Background(), 3)
	if err != nil {
		t.Fatalf("Children: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("children = %+v", rows)
	}
}

func TestAncestorChain(t *testing.T) {
	u := NewUsecase(tree())

	chain, err := u.AncestorChain(context.Background(), 5)
	if err != nil {
		t.Fatalf("AncestorChain: %v", err)
	}
	if len(chain) != 2 || chain[0].ID != 3 || chain[1].ID != 1 {
		t.Fatalf("chain = %+v", chain)
	}
}

func TestAncestorChain_CycleGuard(t *testing.T) {
	// 7 and 8 point at each other; the walk must terminate
	u := NewUsecase(orgunitmock.Tree(
		domain.OrgUnit{ID: 7, ParentID: uintPtr(8)},
		domain.OrgUnit{ID: 8, ParentID: uintPtr(7)},
	))

	chain, err := u.AncestorChain(context.Background(), 7)
	if err != nil {
		t.Fatalf("AncestorChain: %v", err)
	}
	if len(chain) != 1 || chain[0].ID != 8 {
		t.Fatalf("chain = %+v", chain)
	}
}

func TestAncestorChain_DanglingParent(t *testing.T) {
	u := NewUsecase(orgunitmock.Tree(
		domain.OrgUnit{ID: 9, ParentID: uintPtr(1000)},
	))

	chain, err := u.AncestorChain(context.Background(), 9)
	if err != nil {
		t.Fatalf("AncestorChain: %v", err)
	}
	if len(chain) != 0 {
		t.Fatalf("chain = %+v", chain)
	}
}

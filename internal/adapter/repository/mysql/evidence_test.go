package mysql

import (
	"context"
	"testing"

	domain "kpisuite-backend/internal/domain/evidence"
	"kpisuite-backend/pkg/id"
)

func TestEvidenceRepository_UploadOrderAndCount(t *testing.T) {
	db := openTestDB(t)
	repo := NewEvidenceRepository(db)
	ctx := context.Background()

	names := []string{"alpha.pdf", "bravo.xlsx", "charlie.png"}
	for _, n := range names {
		e := &domain.Evidence{
			EvidenceID:   id.NewID32(),
			SubmissionID: 777,
			FileName:     n,
			StoragePath:  "/tmp/" + n,
		}
		if err := repo.Create(ctx, e); err != nil {
			t.Fatalf("Create %s: %v", n, err)
		}
	}

	n, err := repo.CountBySubmissionID(ctx, 777)
	if err != nil || n != 3 {
		t.Fatalf("count = %d, err %v", n, err)
	}

	rows, err := repo.ListBySubmissionID(ctx, 777)
	if err != nil {
		t.Fatalf("ListBySubmissionID: %v", err)
	}
	for i, want := range names {
		if rows[i].FileName != want {
			t.Fatalf("order broken at %d: got %q want %q", i, rows[i].FileName, want)
		}
	}

	n, err = repo.CountBySubmissionID(ctx, 888)
	if err != nil || n != 0 {
		t.Fatalf("foreign count = %d, err %v", n, err)
	}
}

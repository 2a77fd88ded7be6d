package mysql

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"
)

func TestPeriodRepository_GetByIDAndList(t *testing.T) {
	db := openTestDB(t)
	repo := NewPeriodRepository(db)
	ctx := context.Background()

	rows := []periodSQLite{
		{ID: 1, Year: 2024, Status: "Closed"},
		{ID: 2, Year: 2026, Status: "Open"},
		{ID: 3, Year: 2025, Status: "Open"},
	}
	for i := range rows {
		if err := db.Create(&rows[i]).Error; err != nil {
			t.Fatalf("seed period %d: %v", rows[i].Year, err)
		}
	}

	got, err := repo.GetByID(ctx, 3)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Year != 2025 {
		t.Fatalf("period = %+v", got)
	}
	if _, err := repo.GetByID(ctx, 99); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("unknown period err = %v", err)
	}

	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 3 || list[0].Year != 2026 || list[1].Year != 2025 || list[2].Year != 2024 {
		t.Fatalf("listing = %+v, want newest year first", list)
	}
}

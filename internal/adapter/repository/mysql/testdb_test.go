package mysql

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// --- SQLite-friendly schemas only for tests (no ENUM columns) ---

type submissionSQLite struct {
	ID              uint64         `gorm:"primaryKey;column:id"`
	SubmissionID    string         `gorm:"column:submission_id;size:32"`
	Type            string         `gorm:"column:submission_type;type:text"`
	OrgUnitID       uint64         `gorm:"column:org_unit_id"`
	PeriodID        uint64         `gorm:"column:period_id"`
	Month           *int           `gorm:"column:month"`
	Status          string         `gorm:"column:submission_status;type:text"`
	Comments        string         `gorm:"column:submission_comments"`
	StatusUpdatedAt time.Time      `gorm:"column:status_updated_at"`
	CreatedBy       string         `gorm:"column:created_by"`
	UpdatedBy       string         `gorm:"column:updated_by"`
	CreatedAt       time.Time      `gorm:"column:created_at"`
	UpdatedAt       time.Time      `gorm:"column:updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"column:deleted_at"`
	DeletedBy       *string        `gorm:"column:deleted_by"`
}

func (submissionSQLite) TableName() string { return "submissions" }

type approvalSQLite struct {
	ID                 uint64         `gorm:"primaryKey;column:id"`
	ApprovalID         string         `gorm:"column:approval_id;size:32"`
	SubmissionID       uint64         `gorm:"column:submission_id"`
	ApproverEmployeeID string         `gorm:"column:approver_employee_id"`
	Status             string         `gorm:"column:approval_status;type:text"`
	Notes              string         `gorm:"column:approval_notes"`
	DecidedAt          *time.Time     `gorm:"column:decided_at"`
	CreatedAt          time.Time      `gorm:"column:created_at"`
	UpdatedAt          time.Time      `gorm:"column:updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"column:deleted_at"`
	DeletedBy          *string        `gorm:"column:deleted_by"`
}

func (approvalSQLite) TableName() string { return "approvals" }

type evidenceSQLite struct {
	ID           uint64         `gorm:"primaryKey;column:id"`
	EvidenceID   string         `gorm:"column:evidence_id;size:32"`
	SubmissionID uint64         `gorm:"column:submission_id"`
	FileName     string         `gorm:"column:file_name"`
	StoragePath  string         `gorm:"column:storage_path"`
	CreatedBy    string         `gorm:"column:created_by"`
	CreatedAt    time.Time      `gorm:"column:created_at"`
	DeletedAt    gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (evidenceSQLite) TableName() string { return "evidence_files" }

type kpiDefinitionSQLite struct {
	ID                uint64         `gorm:"primaryKey;column:id"`
	DefinitionID      string         `gorm:"column:definition_id;size:32"`
	Code              string         `gorm:"column:code"`
	Name              string         `gorm:"column:name"`
	Perspective       string         `gorm:"column:perspective"`
	Category          string         `gorm:"column:category"`
	Weight            float64        `gorm:"column:weight"`
	UnitOfMeasure     string         `gorm:"column:unit_of_measure"`
	CalculationMethod string         `gorm:"column:calculation_method;type:text"`
	OrgUnitID         uint64         `gorm:"column:org_unit_id"`
	CreatedAt         time.Time      `gorm:"column:created_at"`
	UpdatedAt         time.Time      `gorm:"column:updated_at"`
	DeletedAt         gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (kpiDefinitionSQLite) TableName() string { return "kpi_definitions" }

type kpiTargetSQLite struct {
	ID           uint64         `gorm:"primaryKey;column:id"`
	DefinitionID uint64         `gorm:"column:definition_id;uniqueIndex:ux_kpi_targets_entry"`
	SubmissionID uint64         `gorm:"column:submission_id;uniqueIndex:ux_kpi_targets_entry"`
	Month        int            `gorm:"column:month;uniqueIndex:ux_kpi_targets_entry"`
	Value        float64        `gorm:"column:target_value"`
	CreatedAt    time.Time      `gorm:"column:created_at"`
	UpdatedAt    time.Time      `gorm:"column:updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (kpiTargetSQLite) TableName() string { return "kpi_targets" }

type kpiActualSQLite struct {
	ID                    uint64         `gorm:"primaryKey;column:id"`
	DefinitionID          uint64         `gorm:"column:definition_id;uniqueIndex:ux_kpi_actuals_entry"`
	SubmissionID          uint64         `gorm:"column:submission_id;uniqueIndex:ux_kpi_actuals_entry"`
	Month                 int            `gorm:"column:month"`
	Value                 float64        `gorm:"column:actual_value"`
	AchievementPercent    float64        `gorm:"column:achievement_percent"`
	ProblemIdentification string         `gorm:"column:problem_identification"`
	CorrectiveAction      string         `gorm:"column:corrective_action"`
	CreatedAt             time.Time      `gorm:"column:created_at"`
	UpdatedAt             time.Time      `gorm:"column:updated_at"`
	DeletedAt             gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (kpiActualSQLite) TableName() string { return "kpi_actuals" }

type orgUnitSQLite struct {
	ID             uint64         `gorm:"primaryKey;column:id"`
	ParentID       *uint64        `gorm:"column:parent_id"`
	Name           string         `gorm:"column:name"`
	HeadEmployeeID string         `gorm:"column:head_employee_id;size:32"`
	Level          int            `gorm:"column:level"`
	CreatedAt      time.Time      `gorm:"column:created_at"`
	UpdatedAt      time.Time      `gorm:"column:updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (orgUnitSQLite) TableName() string { return "org_units" }

type periodSQLite struct {
	ID        uint64         `gorm:"primaryKey;column:id"`
	Year      int            `gorm:"column:year"`
	Status    string         `gorm:"column:period_status;type:text"`
	CreatedAt time.Time      `gorm:"column:created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (periodSQLite) TableName() string { return "periods" }

// openTestDB creates an in-memory sqlite DB and migrates ONLY the sqlite-safe
// schemas, not the MySQL domain models.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&submissionSQLite{}, &approvalSQLite{}, &evidenceSQLite{},
		&kpiDefinitionSQLite{}, &kpiTargetSQLite{}, &kpiActualSQLite{},
		&orgUnitSQLite{}, &periodSQLite{},
	); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

package kpi

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrDefinitionNotFound = errors.New("kpi definition not found")
	ErrActualNotFound     = errors.New("kpi actual not found")
)

// CalculationMethod decides how achievement is derived from target vs actual.
type CalculationMethod string

const (
	HigherBetter CalculationMethod = "higher_better"
	LowerBetter  CalculationMethod = "lower_better"
	Stabilize    CalculationMethod = "stabilize"
)

// Definition is one entry of the KPI catalog.
type Definition struct {
	ID           uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	DefinitionID string `gorm:"column:definition_id;type:char(32);not null;uniqueIndex:ux_kpi_definitions_definition_id_active"`
	Code         string `gorm:"column:code;size:64;not null;index:idx_kpi_definitions_code"`
	Name         string `gorm:"column:name;size:255;not null"`
	Perspective  string `gorm:"column:perspective;size:64;index:idx_kpi_definitions_perspective"`
	Category     string `gorm:"column:category;size:64;index:idx_kpi_definitions_category"`
	// Weight is the KPI's share of the scorecard, in percent.
	Weight            float64           `gorm:"column:weight;type:decimal(6,2)"`
	UnitOfMeasure     string            `gorm:"column:unit_of_measure;size:32"`
	CalculationMethod CalculationMethod `gorm:"column:calculation_method;type:enum('higher_better','lower_better','stabilize');default:'higher_better'"`
	OrgUnitID         uint64            `gorm:"column:org_unit_id;not null;index:idx_kpi_definitions_org_unit"`
	CreatedAt         time.Time         `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt         time.Time         `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt         gorm.DeletedAt    `gorm:"column:deleted_at;index"`
}

func (Definition) TableName() string { return "kpi_definitions" }

// Target is the planned value for one KPI in one month of a target
// submission. Uniqueness includes the owning submission so the same
// definition/month pair can exist once per period's submission.
type Target struct {
	ID           uint64         `gorm:"column:id;primaryKey;autoIncrement"`
	DefinitionID uint64         `gorm:"column:definition_id;not null;uniqueIndex:ux_kpi_targets_entry"`
	SubmissionID uint64         `gorm:"column:submission_id;not null;uniqueIndex:ux_kpi_targets_entry;index:idx_kpi_targets_submission"`
	Month        int            `gorm:"column:month;not null;uniqueIndex:ux_kpi_targets_entry"`
	Value        float64        `gorm:"column:target_value;type:decimal(18,4)"`
	CreatedAt    time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time      `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt    gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (Target) TableName() string { return "kpi_targets" }

// Actual is the realized value plus the narrative fields carried by actuals.
type Actual struct {
	ID           uint64  `gorm:"column:id;primaryKey;autoIncrement"`
	DefinitionID uint64  `gorm:"column:definition_id;not null;uniqueIndex:ux_kpi_actuals_entry"`
	SubmissionID uint64  `gorm:"column:submission_id;not null;index:idx_kpi_actuals_submission;uniqueIndex:ux_kpi_actuals_entry"`
	Month        int     `gorm:"column:month;not null"`
	Value        float64 `gorm:"column:actual_value;type:decimal(18,4)"`
	// Derived server-side from the matching target and calculation method.
	AchievementPercent    float64        `gorm:"column:achievement_percent;type:decimal(8,2)"`
	ProblemIdentification string         `gorm:"column:problem_identification;type:text"`
	CorrectiveAction      string         `gorm:"column:corrective_action;type:text"`
	CreatedAt             time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt             time.Time      `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt             gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (Actual) TableName() string { return "kpi_actuals" }

// Achievement computes the achievement percentage for an actual against its
// target. A zero target yields 0 rather than a division blow-up; the backend
// treats unplanned KPIs as unachieved.
func Achievement(method CalculationMethod, target, actual float64) float64 {
	if target == 0 {
		return 0
	}
	switch method {
	case LowerBetter:
		if actual == 0 {
			return 0
		}
		return target / actual * 100
	case Stabilize:
		dev := actual - target
		if dev < 0 {
			dev = -dev
		}
		pct := 100 - dev/target*100
		if pct < 0 {
			return 0
		}
		return pct
	default: // HigherBetter
		return actual / target * 100
	}
}

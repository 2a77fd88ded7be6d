package orgunit

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("organization unit not found")

type OrgUnit struct {
	ID       uint64  `gorm:"column:id;primaryKey;autoIncrement"`
	ParentID *uint64 `gorm:"column:parent_id;index:idx_org_units_parent"`
	Name     string  `gorm:"column:name;size:255;not null"`
	// Head approves the child units' submissions.
	HeadEmployeeID string         `gorm:"column:head_employee_id;type:char(32)"`
	Level          int            `gorm:"column:level;not null;default:0"`
	CreatedAt      time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time      `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt      gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (OrgUnit) TableName() string { return "org_units" }

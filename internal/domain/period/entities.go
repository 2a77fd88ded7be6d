package period

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("period not found")

type Status string

const (
	StatusOpen   Status = "Open"
	StatusClosed Status = "Closed"
)

// Period is one reporting year; submissions hang off it per org unit and
// month.
type Period struct {
	ID        uint64         `gorm:"column:id;primaryKey;autoIncrement"`
	Year      int            `gorm:"column:year;not null;uniqueIndex:ux_periods_year_active"`
	Status    Status         `gorm:"column:period_status;type:enum('Open','Closed');default:'Open'"`
	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (Period) TableName() string { return "periods" }

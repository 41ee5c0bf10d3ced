package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// holidays — праздники, которые пользователь завёл сам.
type Holiday struct {
	ID     uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserID uuid.UUID      `gorm:"type:uuid;not null;index"`
	Name   string         `gorm:"type:varchar(255);not null"`
	Date   datatypes.Date `gorm:"column:holiday_date;not null;index"`

	CreatedAt time.Time `gorm:"not null"`
}

func (h *Holiday) BeforeCreate(*gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	return nil
}

func (h *Holiday) Day() time.Time { return DayOf(h.Date) }

package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// import_histories — одна запись на вызов импорта, удаляется откатом.
type ImportHistory struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID   uuid.UUID `gorm:"type:uuid;not null;index"`
	FileName string    `gorm:"type:varchar(255);not null"`
	Strategy string    `gorm:"type:varchar(32);not null"`

	Added   int `gorm:"not null"`
	Updated int `gorm:"not null"`
	Skipped int `gorm:"not null"`
	Removed int `gorm:"not null"`

	Errors datatypes.JSONSlice[string]

	CreatedAt time.Time `gorm:"not null;index"`
}

func (h *ImportHistory) BeforeCreate(*gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	return nil
}

package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// blocked_dates — день полностью недоступен независимо от событий.
type BlockedDate struct {
	ID     uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserID uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:uq_blocked_user_date"`
	Date   datatypes.Date `gorm:"column:blocked_date;not null;uniqueIndex:uq_blocked_user_date"`
	Reason string         `gorm:"type:varchar(255)"`
	// Source — например "Feriado: Natal" для дат, заблокированных джобой праздников.
	Source string `gorm:"type:varchar(255)"`

	CreatedAt time.Time `gorm:"not null"`
}

func (b *BlockedDate) BeforeCreate(*gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

func (b *BlockedDate) Day() time.Time { return DayOf(b.Date) }

// blocked_periods — границы включительно. Пересечения с BlockedDate допустимы.
type BlockedPeriod struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index"`
	Reason    string         `gorm:"type:varchar(255)"`
	StartDate datatypes.Date `gorm:"not null;index"`
	EndDate   datatypes.Date `gorm:"not null;index"`

	CreatedAt time.Time `gorm:"not null"`
}

func (p *BlockedPeriod) BeforeCreate(*gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

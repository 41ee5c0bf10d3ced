package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Статус события в агенде.
type EventStatus string

const (
	EventStatusPending   EventStatus = "pendente"
	EventStatusConfirmed EventStatus = "confirmado"
	EventStatusDone      EventStatus = "concluido"
	EventStatusCancelled EventStatus = "cancelado"
)

// Active: отменённые события не занимают день.
func (s EventStatus) Active() bool {
	return s != EventStatusCancelled
}

func (s EventStatus) Valid() bool {
	switch s {
	case EventStatusPending, EventStatusConfirmed, EventStatusDone, EventStatusCancelled:
		return true
	}
	return false
}

// Откуда пришло событие. Всё, что не manual, считается импортированным.
type EventOrigin string

const (
	EventOriginManual EventOrigin = "manual"
	EventOriginCSV    EventOrigin = "csv_import"
	EventOriginICS    EventOrigin = "ics_import"
)

func (o EventOrigin) Imported() bool {
	return o != EventOriginManual && o != ""
}

// agenda_events
type Event struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index:idx_events_user_date"`

	Date datatypes.Date `gorm:"column:event_date;not null;index:idx_events_user_date"`

	Type       string      `gorm:"type:varchar(128);not null"`
	ClientName string      `gorm:"type:varchar(255);not null"`
	City       string      `gorm:"type:varchar(255)"`
	Status     EventStatus `gorm:"type:varchar(32);not null;index"`
	Notes      string      `gorm:"type:text"`
	Origin     EventOrigin `gorm:"type:varchar(32);not null;index"`

	// Импорт, создавший или последним обновивший событие.
	ImportID *uuid.UUID `gorm:"type:uuid;index"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (Event) TableName() string { return "agenda_events" }

func (e *Event) BeforeCreate(*gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.Type == "" {
		e.Type = DefaultEventType
	}
	if e.Status == "" {
		e.Status = EventStatusConfirmed
	}
	if e.Origin == "" {
		e.Origin = EventOriginManual
	}
	return nil
}

func (e *Event) Day() time.Time { return DayOf(e.Date) }

const DefaultEventType = "evento"

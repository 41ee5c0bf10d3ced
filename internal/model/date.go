package model

import (
	"time"

	"gorm.io/datatypes"

	"github.com/Leganyst/agenda-platform/internal/agenda"
)

// NewDate хранит календарную дату как полночь UTC, чтобы сравнения
// в postgres и sqlite давали одинаковый результат.
func NewDate(t time.Time) datatypes.Date {
	return datatypes.Date(agenda.DateOf(t))
}

func DayOf(d datatypes.Date) time.Time {
	return agenda.DateOf(time.Time(d))
}

func NewDatePtr(t *time.Time) *datatypes.Date {
	if t == nil {
		return nil
	}
	d := NewDate(*t)
	return &d
}

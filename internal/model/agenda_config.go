package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/Leganyst/agenda-platform/internal/agenda"
)

// agenda_configs — одна запись на пользователя.
type AgendaConfig struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`

	MaxPerDay   int    `gorm:"not null"`
	WarningMode string `gorm:"type:varchar(32);not null"`
	Active      bool   `gorm:"not null"`

	// Дни недели 0=воскресенье..6=суббота.
	BlockedWeekdays datatypes.JSONSlice[int]
	MassRulesActive bool `gorm:"not null"`
	BlockHolidays   bool `gorm:"not null;index"`

	ParityRule    string          `gorm:"type:varchar(32);not null"`
	WeekRule      string          `gorm:"type:varchar(32);not null"`
	WeekRuleStart *datatypes.Date `gorm:"type:date"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// DefaultAgendaConfig — настройки, с которыми агенда создаётся при первом чтении.
func DefaultAgendaConfig(userID uuid.UUID) AgendaConfig {
	return AgendaConfig{
		UserID:          userID,
		MaxPerDay:       1,
		WarningMode:     string(agenda.ModeSuggestive),
		Active:          true,
		BlockedWeekdays: datatypes.JSONSlice[int]{},
		ParityRule:      string(agenda.ParityNone),
		WeekRule:        string(agenda.WeekNone),
	}
}

func (c *AgendaConfig) BeforeCreate(*gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// Rules собирает массовые правила. Пока тумблер выключен, правил нет.
func (c *AgendaConfig) Rules() (agenda.Rules, error) {
	if !c.MassRulesActive {
		return agenda.Rules{}, nil
	}

	weekdays, err := agenda.ParseWeekdays(c.BlockedWeekdays)
	if err != nil {
		return agenda.Rules{}, err
	}
	parity, err := agenda.ParseParityRule(c.ParityRule)
	if err != nil {
		return agenda.Rules{}, err
	}
	week, err := agenda.ParseWeekRule(c.WeekRule)
	if err != nil {
		return agenda.Rules{}, err
	}

	r := agenda.Rules{BlockedWeekdays: weekdays, Parity: parity, Week: week}
	if c.WeekRuleStart != nil {
		start := DayOf(*c.WeekRuleStart)
		r.WeekStart = &start
	}
	return r, nil
}

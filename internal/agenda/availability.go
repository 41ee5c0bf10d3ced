package agenda

import (
	"fmt"
	"strings"
	"time"
)

// WarningMode — как сильно предупреждать клиента о занятой дате.
type WarningMode string

const (
	ModeInformative WarningMode = "informativo"
	ModeSuggestive  WarningMode = "sugestivo"
	ModeRestrictive WarningMode = "restritivo"
)

func ParseWarningMode(s string) (WarningMode, error) {
	switch m := WarningMode(strings.TrimSpace(s)); m {
	case ModeInformative, ModeSuggestive, ModeRestrictive:
		return m, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidWarningMode, s)
	}
}

// Availability отвечает на вопрос "можно ли бронировать эту дату".
type Availability struct {
	Date      time.Time
	Available bool
	Status    DayStatus
	Current   int
	Max       int
	Mode      WarningMode
	Blocked   bool
	// Allowed равен false только в режиме restritivo для недоступной даты.
	Allowed bool
	Message string
	Holiday *Holiday
}

// Evaluate строит ответ для одного дня. Неактивная агенда всегда свободна.
func Evaluate(day DayResult, maxPerDay int, mode WarningMode, active bool, activeEvents int) Availability {
	if maxPerDay < 1 {
		maxPerDay = 1
	}
	a := Availability{
		Date:    day.Date,
		Status:  day.Status,
		Current: activeEvents,
		Max:     maxPerDay,
		Mode:    mode,
		Blocked: day.Status == DayBlocked,
		Holiday: day.Holiday,
	}

	if !active {
		a.Status = DayAvailable
		a.Blocked = false
		a.Available = true
		a.Allowed = true
		a.Message = "Agenda inativa: disponibilidade não verificada"
		return a
	}

	a.Available = day.Status == DayAvailable || day.Status == DayPartial
	a.Allowed = a.Available || mode != ModeRestrictive
	a.Message = availabilityMessage(a)
	return a
}

func availabilityMessage(a Availability) string {
	switch a.Status {
	case DayBlocked:
		if a.Mode == ModeRestrictive {
			return "Esta data não está disponível. Por favor, escolha outra data."
		}
		return "Data bloqueada na agenda do fotógrafo"
	case DayBusy:
		if a.Mode == ModeRestrictive {
			return "Esta data não está disponível. Por favor, escolha outra data."
		}
		return fmt.Sprintf("Data com agenda cheia (%d/%d eventos)", a.Current, a.Max)
	case DayPartial:
		return fmt.Sprintf("Data parcialmente ocupada (%d/%d eventos)", a.Current, a.Max)
	default:
		return "Data disponível!"
	}
}

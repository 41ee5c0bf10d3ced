package service

import (
	"time"

	"github.com/Leganyst/agenda-platform/internal/agenda"
	agendav1 "github.com/Leganyst/agenda-platform/internal/api/agenda/v1"
	"github.com/Leganyst/agenda-platform/internal/model"
)

func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func toEventPB(ev *model.Event) *agendav1.Event {
	out := &agendav1.Event{
		ID:         ev.ID.String(),
		UserID:     ev.UserID.String(),
		Date:       agenda.FormatDate(ev.Day()),
		Type:       ev.Type,
		ClientName: ev.ClientName,
		City:       ev.City,
		Status:     string(ev.Status),
		Notes:      ev.Notes,
		Origin:     string(ev.Origin),
		CreatedAt:  formatTimestamp(ev.CreatedAt),
		UpdatedAt:  formatTimestamp(ev.UpdatedAt),
	}
	if ev.ImportID != nil {
		out.ImportID = ev.ImportID.String()
	}
	return out
}

func toEventsPB(events []model.Event) []*agendav1.Event {
	out := make([]*agendav1.Event, 0, len(events))
	for i := range events {
		out = append(out, toEventPB(&events[i]))
	}
	return out
}

func toBlockedDatePB(b *model.BlockedDate) *agendav1.BlockedDate {
	return &agendav1.BlockedDate{
		ID:     b.ID.String(),
		Date:   agenda.FormatDate(b.Day()),
		Reason: b.Reason,
		Source: b.Source,
	}
}

func toBlockedPeriodPB(p *model.BlockedPeriod) *agendav1.BlockedPeriod {
	return &agendav1.BlockedPeriod{
		ID:        p.ID.String(),
		StartDate: agenda.FormatDate(model.DayOf(p.StartDate)),
		EndDate:   agenda.FormatDate(model.DayOf(p.EndDate)),
		Reason:    p.Reason,
	}
}

func toPersonalHolidayPB(h *model.Holiday) *agendav1.Holiday {
	return &agendav1.Holiday{
		ID:   h.ID.String(),
		Date: agenda.FormatDate(h.Day()),
		Name: h.Name,
		Kind: string(agenda.HolidayPersonal),
	}
}

func toHolidayPB(h *agenda.Holiday) *agendav1.Holiday {
	if h == nil {
		return nil
	}
	return &agendav1.Holiday{
		Date: agenda.FormatDate(h.Date),
		Name: h.Name,
		Kind: string(h.Kind),
	}
}

func personalHolidays(items []model.Holiday) []agenda.Holiday {
	out := make([]agenda.Holiday, 0, len(items))
	for i := range items {
		out = append(out, agenda.Holiday{Date: items[i].Day(), Name: items[i].Name, Kind: agenda.HolidayPersonal})
	}
	return out
}

func toConfigPB(c *model.AgendaConfig) *agendav1.AgendaConfig {
	out := &agendav1.AgendaConfig{
		MaxPerDay:       c.MaxPerDay,
		WarningMode:     c.WarningMode,
		Active:          c.Active,
		BlockedWeekdays: append([]int{}, c.BlockedWeekdays...),
		MassRulesActive: c.MassRulesActive,
		BlockHolidays:   c.BlockHolidays,
		ParityRule:      c.ParityRule,
		WeekRule:        c.WeekRule,
	}
	if c.WeekRuleStart != nil {
		out.WeekRuleStart = agenda.FormatDate(model.DayOf(*c.WeekRuleStart))
	}
	return out
}

func toImportHistoryPB(h *model.ImportHistory) *agendav1.ImportHistory {
	return &agendav1.ImportHistory{
		ID:        h.ID.String(),
		FileName:  h.FileName,
		Strategy:  h.Strategy,
		Added:     h.Added,
		Updated:   h.Updated,
		Skipped:   h.Skipped,
		Removed:   h.Removed,
		Errors:    append([]string{}, h.Errors...),
		CreatedAt: formatTimestamp(h.CreatedAt),
	}
}

package service

import (
	"context"
	"fmt"

	ics "github.com/arran4/golang-ical"

	agendav1 "github.com/Leganyst/agenda-platform/internal/api/agenda/v1"
	"github.com/Leganyst/agenda-platform/internal/model"
)

const (
	feedProductID = "-//agenda-platform//agenda v1//PT"
	feedFileName  = "agenda.ics"
)

// ExportFeed отдаёт неотменённые события начиная с прошлого месяца как
// ICS-календарь с событиями на весь день.
func (s *AgendaService) ExportFeed(ctx context.Context, req *agendav1.UserRequest) (*agendav1.ExportFeedResponse, error) {
	userID, err := parseUserID(req.UserID)
	if err != nil {
		return nil, err
	}

	today := s.today()
	from := today.AddDate(0, -1, -today.Day()+1)
	events, err := s.repos.Events.ListActiveFrom(ctx, userID, from)
	if err != nil {
		return nil, storageError("list events", err)
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(feedProductID)
	cal.SetXWRCalName("Agenda")
	for i := range events {
		addFeedEvent(cal, &events[i])
	}

	return &agendav1.ExportFeedResponse{
		FileName:    feedFileName,
		ContentType: "text/calendar; charset=utf-8",
		Content:     cal.Serialize(),
	}, nil
}

func addFeedEvent(cal *ics.Calendar, ev *model.Event) {
	day := ev.Day()
	v := cal.AddEvent(ev.ID.String() + "@agenda-platform")
	v.SetDtStampTime(ev.UpdatedAt.UTC())
	v.SetAllDayStartAt(day)
	v.SetAllDayEndAt(day.AddDate(0, 0, 1))
	v.SetSummary(fmt.Sprintf("%s: %s", ev.Type, ev.ClientName))
	if ev.City != "" {
		v.SetLocation(ev.City)
	}
	if ev.Notes != "" {
		v.SetDescription(ev.Notes)
	}
	if ev.Status == model.EventStatusPending {
		v.SetStatus(ics.ObjectStatusTentative)
	} else {
		v.SetStatus(ics.ObjectStatusConfirmed)
	}
}

package service

import (
	"context"
	"strings"
	"testing"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"
	"google.golang.org/grpc/codes"

	agendav1 "github.com/Leganyst/agenda-platform/internal/api/agenda/v1"
)

func freeUser() string { return uuid.NewString() }

func TestCreateEvent_Validation(t *testing.T) {
	env := newTestEnv(t, Limits{}, nil)
	ctx := context.Background()

	_, err := env.svc.CreateEvent(ctx, &agendav1.CreateEventRequest{UserID: "x", Date: "2026-03-10", ClientName: "Ana"})
	mustCode(t, err, codes.InvalidArgument)

	_, err = env.svc.CreateEvent(ctx, &agendav1.CreateEventRequest{UserID: freeUser(), Date: "2026-03-10"})
	mustCode(t, err, codes.InvalidArgument)
	if !strings.Contains(err.Error(), "cliente_nome") {
		t.Fatalf("validation error must name the json field: %v", err)
	}

	_, err = env.svc.CreateEvent(ctx, &agendav1.CreateEventRequest{UserID: freeUser(), Date: "2026-03-10", ClientName: "Ana", Status: "adiado"})
	mustCode(t, err, codes.InvalidArgument)

	blankUser := freeUser()
	_, err = env.svc.CreateEvent(ctx, &agendav1.CreateEventRequest{UserID: blankUser, Date: "2026-03-10", ClientName: "   "})
	mustCode(t, err, codes.InvalidArgument)
	stored, err := env.svc.ListEvents(ctx, &agendav1.ListEventsRequest{UserID: blankUser})
	if err != nil || stored.Total != 0 {
		t.Fatalf("blank name must not be stored: %v, %+v", err, stored)
	}

	ev, err := env.svc.CreateEvent(ctx, &agendav1.CreateEventRequest{UserID: freeUser(), Date: "2026-03-10", ClientName: " Ana "})
	if err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}
	if ev.ClientName != "Ana" || ev.Type != "evento" || ev.Status != "confirmado" || ev.Origin != "manual" {
		t.Fatalf("unexpected event: %+v", ev)
	}
}

func TestCreateEvent_FreePlanLimit(t *testing.T) {
	env := newTestEnv(t, Limits{FreeEventsLimit: 2}, nil)
	ctx := context.Background()
	user := freeUser()

	create := func(date, st string) error {
		_, err := env.svc.CreateEvent(ctx, &agendav1.CreateEventRequest{UserID: user, Date: date, ClientName: "Cliente " + date, Status: st})
		return err
	}

	for _, d := range []string{"2026-03-05", "2026-03-06"} {
		if err := create(d, ""); err != nil {
			t.Fatalf("create %s: %v", d, err)
		}
	}
	mustCode(t, create("2026-03-07", ""), codes.ResourceExhausted)

	// прошлые и отменённые события в лимит не входят
	if err := create("2026-02-10", ""); err != nil {
		t.Fatalf("past event: %v", err)
	}
	if err := create("2026-03-08", "cancelado"); err != nil {
		t.Fatalf("cancelled event: %v", err)
	}

	limits, err := env.svc.GetPlanLimits(ctx, &agendav1.UserRequest{UserID: user})
	if err != nil {
		t.Fatalf("GetPlanLimits: %v", err)
	}
	if limits.Premium || limits.ActiveEvents != 2 || limits.ActiveEventLimit != 2 || limits.CanCreateEvent || limits.CanImport {
		t.Fatalf("unexpected limits: %+v", limits)
	}

	premium := env.premiumUser(t)
	for _, d := range []string{"2026-03-05", "2026-03-06", "2026-03-07"} {
		if _, err := env.svc.CreateEvent(ctx, &agendav1.CreateEventRequest{UserID: premium, Date: d, ClientName: "Ana"}); err != nil {
			t.Fatalf("premium create %s: %v", d, err)
		}
	}
	limits, err = env.svc.GetPlanLimits(ctx, &agendav1.UserRequest{UserID: premium})
	if err != nil {
		t.Fatalf("GetPlanLimits: %v", err)
	}
	if !limits.Premium || limits.ActiveEventLimit != 0 || !limits.CanCreateEvent || !limits.CanImport {
		t.Fatalf("unexpected premium limits: %+v", limits)
	}
}

func TestUpdateEvent_ReactivationChecksQuota(t *testing.T) {
	env := newTestEnv(t, Limits{FreeEventsLimit: 1}, nil)
	ctx := context.Background()
	user := freeUser()

	if _, err := env.svc.CreateEvent(ctx, &agendav1.CreateEventRequest{UserID: user, Date: "2026-03-05", ClientName: "Ana"}); err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}
	cancelled, err := env.svc.CreateEvent(ctx, &agendav1.CreateEventRequest{UserID: user, Date: "2026-03-06", ClientName: "Bruno", Status: "cancelado"})
	if err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}

	_, err = env.svc.UpdateEvent(ctx, &agendav1.UpdateEventRequest{UserID: user, ID: cancelled.ID, Status: ptr("pendente")})
	mustCode(t, err, codes.ResourceExhausted)

	updated, err := env.svc.UpdateEvent(ctx, &agendav1.UpdateEventRequest{
		UserID: user, ID: cancelled.ID, City: ptr("Recife"), Date: ptr("2026-03-09"), Type: ptr(""),
	})
	if err != nil {
		t.Fatalf("UpdateEvent: %v", err)
	}
	if updated.City != "Recife" || updated.Date != "2026-03-09" || updated.Type != "evento" || updated.Status != "cancelado" {
		t.Fatalf("unexpected update: %+v", updated)
	}

	_, err = env.svc.UpdateEvent(ctx, &agendav1.UpdateEventRequest{UserID: freeUser(), ID: cancelled.ID, City: ptr("X")})
	mustCode(t, err, codes.NotFound)
}

func TestUpdateEvent_BlankClientNameAndTimestamps(t *testing.T) {
	env := newTestEnv(t, Limits{}, nil)
	ctx := context.Background()
	user := freeUser()

	ev, err := env.svc.CreateEvent(ctx, &agendav1.CreateEventRequest{UserID: user, Date: "2026-03-10", ClientName: "Ana"})
	if err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}

	_, err = env.svc.UpdateEvent(ctx, &agendav1.UpdateEventRequest{UserID: user, ID: ev.ID, ClientName: ptr("  ")})
	mustCode(t, err, codes.InvalidArgument)
	_, err = env.svc.UpdateEvent(ctx, &agendav1.UpdateEventRequest{UserID: user, ID: ev.ID, ClientName: ptr("")})
	mustCode(t, err, codes.InvalidArgument)

	byDate, err := env.svc.ListEventsByDate(ctx, &agendav1.ListEventsByDateRequest{UserID: user, Date: "2026-03-10"})
	if err != nil || len(byDate.Events) != 1 || byDate.Events[0].ClientName != "Ana" {
		t.Fatalf("rejected update changed the event: %v, %+v", err, byDate)
	}

	updated, err := env.svc.UpdateEvent(ctx, &agendav1.UpdateEventRequest{UserID: user, ID: ev.ID, ClientName: ptr(" Bia ")})
	if err != nil {
		t.Fatalf("UpdateEvent: %v", err)
	}
	if updated.ClientName != "Bia" {
		t.Fatalf("client name = %q, want trimmed", updated.ClientName)
	}

	created, err := time.Parse(time.RFC3339, updated.CreatedAt)
	if err != nil {
		t.Fatalf("created_at %q: %v", updated.CreatedAt, err)
	}
	modified, err := time.Parse(time.RFC3339, updated.UpdatedAt)
	if err != nil {
		t.Fatalf("updated_at %q: %v", updated.UpdatedAt, err)
	}
	if modified.Before(created) {
		t.Fatalf("updated_at %s before created_at %s", modified, created)
	}
}

func TestEventListsAndDelete(t *testing.T) {
	env := newTestEnv(t, Limits{}, nil)
	ctx := context.Background()
	user := env.premiumUser(t)

	var ids []string
	for _, d := range []string{"2026-03-05", "2026-03-05", "2026-04-01"} {
		ev, err := env.svc.CreateEvent(ctx, &agendav1.CreateEventRequest{UserID: user, Date: d, ClientName: "Cliente"})
		if err != nil {
			t.Fatalf("CreateEvent: %v", err)
		}
		ids = append(ids, ev.ID)
	}

	byDate, err := env.svc.ListEventsByDate(ctx, &agendav1.ListEventsByDateRequest{UserID: user, Date: "2026-03-05"})
	if err != nil || len(byDate.Events) != 2 {
		t.Fatalf("ListEventsByDate: %v, %+v", err, byDate)
	}

	month, err := env.svc.ListEvents(ctx, &agendav1.ListEventsRequest{UserID: user, Year: 2026, Month: 4})
	if err != nil || month.Total != 1 {
		t.Fatalf("ListEvents month: %v, %+v", err, month)
	}

	page, err := env.svc.ListEvents(ctx, &agendav1.ListEventsRequest{UserID: user, Page: 1, PageSize: 2})
	if err != nil {
		t.Fatalf("ListEvents page: %v", err)
	}
	if page.Total != 3 || len(page.Events) != 2 || !page.HasNext {
		t.Fatalf("unexpected page: %+v", page)
	}

	if _, err := env.svc.DeleteEvent(ctx, &agendav1.DeleteRequest{UserID: user, ID: ids[0]}); err != nil {
		t.Fatalf("DeleteEvent: %v", err)
	}
	_, err = env.svc.DeleteEvent(ctx, &agendav1.DeleteRequest{UserID: user, ID: ids[0]})
	mustCode(t, err, codes.NotFound)
}

func TestClearEvents(t *testing.T) {
	env := newTestEnv(t, Limits{}, nil)
	ctx := context.Background()
	user := env.premiumUser(t)

	if _, err := env.svc.CreateEvent(ctx, &agendav1.CreateEventRequest{UserID: user, Date: "2026-04-01", ClientName: "Manual"}); err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}
	env.importCSV(t, user, "a.csv", twoRowsCSV, "adicionar_novos")

	out, err := env.svc.ClearEvents(ctx, &agendav1.ClearEventsRequest{UserID: user})
	if err != nil || out.Deleted != 2 {
		t.Fatalf("ClearEvents: %v, %+v", err, out)
	}
	out, err = env.svc.ClearEvents(ctx, &agendav1.ClearEventsRequest{UserID: user, IncludeManual: true})
	if err != nil || out.Deleted != 1 {
		t.Fatalf("ClearEvents include manual: %v, %+v", err, out)
	}
}

func TestExportFeed(t *testing.T) {
	env := newTestEnv(t, Limits{}, nil)
	ctx := context.Background()
	user := env.premiumUser(t)

	seed := []agendav1.CreateEventRequest{
		{Date: "2026-03-14", ClientName: "Ana", Type: "Casamento", City: "Recife"},
		{Date: "2026-03-15", ClientName: "Bruno", Status: "pendente"},
		{Date: "2026-03-16", ClientName: "Caio", Status: "cancelado"},
		{Date: "2025-06-01", ClientName: "Antigo"},
	}
	for i := range seed {
		seed[i].UserID = user
		if _, err := env.svc.CreateEvent(ctx, &seed[i]); err != nil {
			t.Fatalf("CreateEvent: %v", err)
		}
	}

	feed, err := env.svc.ExportFeed(ctx, &agendav1.UserRequest{UserID: user})
	if err != nil {
		t.Fatalf("ExportFeed: %v", err)
	}
	if !strings.HasPrefix(feed.ContentType, "text/calendar") || feed.FileName != "agenda.ics" {
		t.Fatalf("unexpected feed meta: %+v", feed)
	}

	cal, err := ics.ParseCalendar(strings.NewReader(feed.Content))
	if err != nil {
		t.Fatalf("ParseCalendar: %v", err)
	}
	events := cal.Events()
	if len(events) != 2 {
		t.Fatalf("expected 2 events in feed, got %d", len(events))
	}
	summary := events[0].GetProperty(ics.ComponentPropertySummary)
	if summary == nil || summary.Value != "Casamento: Ana" {
		t.Fatalf("summary = %+v", summary)
	}
	start, err := events[0].GetAllDayStartAt()
	if err != nil || start.Format("2006-01-02") != "2026-03-14" {
		t.Fatalf("start = %v, %v", start, err)
	}
	if st := events[1].GetProperty(ics.ComponentPropertyStatus); st == nil || st.Value != string(ics.ObjectStatusTentative) {
		t.Fatalf("pending event must be tentative: %+v", st)
	}
}

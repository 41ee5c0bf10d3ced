package service

import (
	"context"
	"strings"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/Leganyst/agenda-platform/internal/agenda"
	agendav1 "github.com/Leganyst/agenda-platform/internal/api/agenda/v1"
	"github.com/Leganyst/agenda-platform/internal/log"
	"github.com/Leganyst/agenda-platform/internal/model"
)

func (s *AgendaService) CreateEvent(ctx context.Context, req *agendav1.CreateEventRequest) (*agendav1.Event, error) {
	userID, err := parseUserID(req.UserID)
	if err != nil {
		return nil, err
	}
	// пробелы вместо имени считаются пустым полем
	req.ClientName = strings.TrimSpace(req.ClientName)
	if err := s.validate.Struct(req); err != nil {
		return nil, validationError(err)
	}
	date, err := parseDateField("data_evento", req.Date)
	if err != nil {
		return nil, err
	}

	ev := &model.Event{
		UserID:     userID,
		Date:       model.NewDate(date),
		Type:       strings.TrimSpace(req.Type),
		ClientName: req.ClientName,
		City:       strings.TrimSpace(req.City),
		Status:     model.EventStatus(req.Status),
		Notes:      req.Notes,
		Origin:     model.EventOriginManual,
	}
	if ev.Status == "" {
		ev.Status = model.EventStatusConfirmed
	}

	if s.countsTowardQuota(ev.Status, date) {
		if err := s.checkEventQuota(ctx, userID); err != nil {
			return nil, err
		}
	}

	if err := s.repos.Events.Create(ctx, ev); err != nil {
		return nil, storageError("create event", err)
	}
	log.Info("event created", "user_id", userID, "event_id", ev.ID, "date", req.Date)
	return toEventPB(ev), nil
}

func (s *AgendaService) UpdateEvent(ctx context.Context, req *agendav1.UpdateEventRequest) (*agendav1.Event, error) {
	userID, err := parseUserID(req.UserID)
	if err != nil {
		return nil, err
	}
	id, err := parseID("id", req.ID)
	if err != nil {
		return nil, err
	}
	if err := s.validate.Struct(req); err != nil {
		return nil, validationError(err)
	}
	var clientName string
	if req.ClientName != nil {
		clientName = strings.TrimSpace(*req.ClientName)
		if clientName == "" {
			return nil, status.Error(codes.InvalidArgument, "cliente_nome: required")
		}
	}

	ev, err := s.repos.Events.GetByID(ctx, userID, id)
	if err != nil {
		return nil, storageError("get event", err)
	}
	countedBefore := s.countsTowardQuota(ev.Status, ev.Day())

	if req.Date != nil {
		date, err := parseDateField("data_evento", *req.Date)
		if err != nil {
			return nil, err
		}
		ev.Date = model.NewDate(date)
	}
	if req.Type != nil {
		ev.Type = strings.TrimSpace(*req.Type)
		if ev.Type == "" {
			ev.Type = model.DefaultEventType
		}
	}
	if req.ClientName != nil {
		ev.ClientName = clientName
	}
	if req.City != nil {
		ev.City = strings.TrimSpace(*req.City)
	}
	if req.Status != nil {
		ev.Status = model.EventStatus(*req.Status)
	}
	if req.Notes != nil {
		ev.Notes = *req.Notes
	}

	// Квота проверяется, только если событие начинает занимать место.
	if !countedBefore && s.countsTowardQuota(ev.Status, ev.Day()) {
		if err := s.checkEventQuota(ctx, userID); err != nil {
			return nil, err
		}
	}

	if err := s.repos.Events.Update(ctx, ev); err != nil {
		return nil, storageError("update event", err)
	}
	// updated_at выставляет gorm, отдаём строку как она сохранена
	saved, err := s.repos.Events.GetByID(ctx, userID, id)
	if err != nil {
		return nil, storageError("get event", err)
	}
	return toEventPB(saved), nil
}

func (s *AgendaService) DeleteEvent(ctx context.Context, req *agendav1.DeleteRequest) (*agendav1.DeleteResponse, error) {
	userID, err := parseUserID(req.UserID)
	if err != nil {
		return nil, err
	}
	id, err := parseID("id", req.ID)
	if err != nil {
		return nil, err
	}

	n, err := s.repos.Events.Delete(ctx, userID, id)
	if err != nil {
		return nil, storageError("delete event", err)
	}
	if n == 0 {
		return nil, status.Error(codes.NotFound, "event not found")
	}
	return &agendav1.DeleteResponse{Deleted: n}, nil
}

func (s *AgendaService) ListEventsByDate(ctx context.Context, req *agendav1.ListEventsByDateRequest) (*agendav1.ListEventsResponse, error) {
	userID, err := parseUserID(req.UserID)
	if err != nil {
		return nil, err
	}
	date, err := parseDateField("data", req.Date)
	if err != nil {
		return nil, err
	}

	events, err := s.repos.Events.ListByRange(ctx, userID, date, date)
	if err != nil {
		return nil, storageError("list events", err)
	}
	return &agendav1.ListEventsResponse{
		Events: toEventsPB(events),
		Total:  int64(len(events)),
	}, nil
}

func (s *AgendaService) ListEvents(ctx context.Context, req *agendav1.ListEventsRequest) (*agendav1.ListEventsResponse, error) {
	userID, err := parseUserID(req.UserID)
	if err != nil {
		return nil, err
	}

	if req.Year != 0 || req.Month != 0 {
		month, err := agenda.MonthRange(req.Year, time.Month(req.Month))
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, "invalid ano/mes")
		}
		events, err := s.repos.Events.ListByRange(ctx, userID, month.Start, month.End)
		if err != nil {
			return nil, storageError("list events", err)
		}
		return &agendav1.ListEventsResponse{
			Events: toEventsPB(events),
			Total:  int64(len(events)),
		}, nil
	}

	page, size, offset := agenda.NormalizePage(req.Page, req.PageSize)
	events, total, err := s.repos.Events.List(ctx, userID, size, offset)
	if err != nil {
		return nil, storageError("list events", err)
	}
	p := agenda.NewPage(toEventsPB(events), page, size, total)
	return &agendav1.ListEventsResponse{
		Events:   p.Items,
		Total:    total,
		Page:     p.Page,
		PageSize: p.PageSize,
		HasNext:  p.HasNext,
	}, nil
}

// ClearEvents удаляет импортированные события; ручные удаляются только по флагу.
func (s *AgendaService) ClearEvents(ctx context.Context, req *agendav1.ClearEventsRequest) (*agendav1.DeleteResponse, error) {
	userID, err := parseUserID(req.UserID)
	if err != nil {
		return nil, err
	}

	n, err := s.repos.Events.DeleteAll(ctx, userID, req.IncludeManual)
	if err != nil {
		return nil, storageError("clear events", err)
	}
	log.Info("events cleared", "user_id", userID, "deleted", n, "include_manual", req.IncludeManual)
	return &agendav1.DeleteResponse{Deleted: n}, nil
}

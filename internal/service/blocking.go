package service

import (
	"context"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/Leganyst/agenda-platform/internal/agenda"
	agendav1 "github.com/Leganyst/agenda-platform/internal/api/agenda/v1"
	"github.com/Leganyst/agenda-platform/internal/model"
)

func (s *AgendaService) BlockDate(ctx context.Context, req *agendav1.BlockDateRequest) (*agendav1.BlockedDate, error) {
	userID, err := parseUserID(req.UserID)
	if err != nil {
		return nil, err
	}
	if err := s.validate.Struct(req); err != nil {
		return nil, validationError(err)
	}
	date, err := parseDateField("data", req.Date)
	if err != nil {
		return nil, err
	}

	b := &model.BlockedDate{
		UserID: userID,
		Date:   model.NewDate(date),
		Reason: strings.TrimSpace(req.Reason),
	}
	if err := s.repos.BlockedDates.Create(ctx, b); err != nil {
		if isDuplicate(err) {
			return nil, status.Errorf(codes.AlreadyExists, "data %s já está bloqueada", req.Date)
		}
		return nil, storageError("block date", err)
	}
	return toBlockedDatePB(b), nil
}

func (s *AgendaService) UnblockDate(ctx context.Context, req *agendav1.UnblockDateRequest) (*agendav1.DeleteResponse, error) {
	userID, err := parseUserID(req.UserID)
	if err != nil {
		return nil, err
	}

	var n int64
	switch {
	case req.ID != "":
		id, err := parseID("id", req.ID)
		if err != nil {
			return nil, err
		}
		n, err = s.repos.BlockedDates.Delete(ctx, userID, id)
		if err != nil {
			return nil, storageError("unblock date", err)
		}
	case req.Date != "":
		date, err := parseDateField("data", req.Date)
		if err != nil {
			return nil, err
		}
		n, err = s.repos.BlockedDates.DeleteByDate(ctx, userID, date)
		if err != nil {
			return nil, storageError("unblock date", err)
		}
	default:
		return nil, status.Error(codes.InvalidArgument, "id or data is required")
	}

	if n == 0 {
		return nil, status.Error(codes.NotFound, "blocked date not found")
	}
	return &agendav1.DeleteResponse{Deleted: n}, nil
}

func (s *AgendaService) ListBlockedDates(ctx context.Context, req *agendav1.UserRequest) (*agendav1.ListBlockedDatesResponse, error) {
	userID, err := parseUserID(req.UserID)
	if err != nil {
		return nil, err
	}
	items, err := s.repos.BlockedDates.List(ctx, userID)
	if err != nil {
		return nil, storageError("list blocked dates", err)
	}

	resp := &agendav1.ListBlockedDatesResponse{Dates: make([]*agendav1.BlockedDate, 0, len(items))}
	for i := range items {
		resp.Dates = append(resp.Dates, toBlockedDatePB(&items[i]))
	}
	return resp, nil
}

func (s *AgendaService) AddBlockedPeriod(ctx context.Context, req *agendav1.AddBlockedPeriodRequest) (*agendav1.BlockedPeriod, error) {
	userID, err := parseUserID(req.UserID)
	if err != nil {
		return nil, err
	}
	if err := s.validate.Struct(req); err != nil {
		return nil, validationError(err)
	}
	start, err := parseDateField("data_inicio", req.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := parseDateField("data_fim", req.EndDate)
	if err != nil {
		return nil, err
	}
	r, err := agenda.NewDateRange(start, end)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "data_fim must not be before data_inicio")
	}

	p := &model.BlockedPeriod{
		UserID:    userID,
		StartDate: model.NewDate(r.Start),
		EndDate:   model.NewDate(r.End),
		Reason:    strings.TrimSpace(req.Reason),
	}
	if err := s.repos.Periods.Create(ctx, p); err != nil {
		return nil, storageError("add blocked period", err)
	}
	return toBlockedPeriodPB(p), nil
}

func (s *AgendaService) DeleteBlockedPeriod(ctx context.Context, req *agendav1.DeleteRequest) (*agendav1.DeleteResponse, error) {
	userID, err := parseUserID(req.UserID)
	if err != nil {
		return nil, err
	}
	id, err := parseID("id", req.ID)
	if err != nil {
		return nil, err
	}

	n, err := s.repos.Periods.Delete(ctx, userID, id)
	if err != nil {
		return nil, storageError("delete blocked period", err)
	}
	if n == 0 {
		return nil, status.Error(codes.NotFound, "blocked period not found")
	}
	return &agendav1.DeleteResponse{Deleted: n}, nil
}

func (s *AgendaService) ListBlockedPeriods(ctx context.Context, req *agendav1.UserRequest) (*agendav1.ListBlockedPeriodsResponse, error) {
	userID, err := parseUserID(req.UserID)
	if err != nil {
		return nil, err
	}
	items, err := s.repos.Periods.List(ctx, userID)
	if err != nil {
		return nil, storageError("list blocked periods", err)
	}

	resp := &agendav1.ListBlockedPeriodsResponse{Periods: make([]*agendav1.BlockedPeriod, 0, len(items))}
	for i := range items {
		resp.Periods = append(resp.Periods, toBlockedPeriodPB(&items[i]))
	}
	return resp, nil
}

package service

import (
	"context"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	agendav1 "github.com/Leganyst/agenda-platform/internal/api/agenda/v1"
	"github.com/Leganyst/agenda-platform/internal/model"
)

func (s *AgendaService) AddHoliday(ctx context.Context, req *agendav1.AddHolidayRequest) (*agendav1.Holiday, error) {
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

	h := &model.Holiday{
		UserID: userID,
		Date:   model.NewDate(date),
		Name:   strings.TrimSpace(req.Name),
	}
	if err := s.repos.Holidays.Create(ctx, h); err != nil {
		return nil, storageError("add holiday", err)
	}
	return toPersonalHolidayPB(h), nil
}

func (s *AgendaService) DeleteHoliday(ctx context.Context, req *agendav1.DeleteRequest) (*agendav1.DeleteResponse, error) {
	userID, err := parseUserID(req.UserID)
	if err != nil {
		return nil, err
	}
	id, err := parseID("id", req.ID)
	if err != nil {
		return nil, err
	}

	n, err := s.repos.Holidays.Delete(ctx, userID, id)
	if err != nil {
		return nil, storageError("delete holiday", err)
	}
	if n == 0 {
		return nil, status.Error(codes.NotFound, "holiday not found")
	}
	return &agendav1.DeleteResponse{Deleted: n}, nil
}

// ListHolidays: личные праздники целиком и национальные за год.
func (s *AgendaService) ListHolidays(ctx context.Context, req *agendav1.ListHolidaysRequest) (*agendav1.ListHolidaysResponse, error) {
	userID, err := parseUserID(req.UserID)
	if err != nil {
		return nil, err
	}
	year := req.Year
	if year == 0 {
		year = s.today().Year()
	}
	if year < 1 || year > 9999 {
		return nil, status.Error(codes.InvalidArgument, "invalid ano")
	}

	personal, err := s.repos.Holidays.List(ctx, userID)
	if err != nil {
		return nil, storageError("list holidays", err)
	}
	national := s.nationalHolidays(ctx, year)

	resp := &agendav1.ListHolidaysResponse{
		Personal: make([]*agendav1.Holiday, 0, len(personal)),
		National: make([]*agendav1.Holiday, 0, len(national)),
	}
	for i := range personal {
		resp.Personal = append(resp.Personal, toPersonalHolidayPB(&personal[i]))
	}
	for i := range national {
		resp.National = append(resp.National, toHolidayPB(&national[i]))
	}
	return resp, nil
}

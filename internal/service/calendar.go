package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/Leganyst/agenda-platform/internal/agenda"
	agendav1 "github.com/Leganyst/agenda-platform/internal/api/agenda/v1"
	"github.com/Leganyst/agenda-platform/internal/model"
)

// dayWindow собирает всё, что нужно для классификации дней окна.
type dayWindow struct {
	cfg    *model.AgendaConfig
	counts map[time.Time]int
	blocks *agenda.BlockIndex
	hols   agenda.HolidayIndex
}

// loadWindow читает настройки, события, блокировки и праздники окна
// параллельно.
func (s *AgendaService) loadWindow(ctx context.Context, userID uuid.UUID, window agenda.DateRange) (*dayWindow, error) {
	var (
		cfg      *model.AgendaConfig
		events   []model.Event
		blocked  []model.BlockedDate
		periods  []model.BlockedPeriod
		personal []model.Holiday
		national []agenda.Holiday
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		cfg, err = s.repos.Configs.Ensure(gctx, userID)
		return err
	})
	g.Go(func() (err error) {
		events, err = s.repos.Events.ListByRange(gctx, userID, window.Start, window.End)
		return err
	})
	g.Go(func() (err error) {
		blocked, err = s.repos.BlockedDates.ListByRange(gctx, userID, window.Start, window.End)
		return err
	})
	g.Go(func() (err error) {
		periods, err = s.repos.Periods.ListOverlapping(gctx, userID, window.Start, window.End)
		return err
	})
	g.Go(func() (err error) {
		personal, err = s.repos.Holidays.ListByRange(gctx, userID, window.Start, window.End)
		return err
	})
	g.Go(func() error {
		for y := window.Start.Year(); y <= window.End.Year(); y++ {
			national = append(national, s.nationalHolidays(gctx, y)...)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, storageError("load agenda", err)
	}

	rules, err := cfg.Rules()
	if err != nil {
		return nil, domainError(err)
	}
	ruleDays, err := rules.Expand(window)
	if err != nil {
		return nil, domainError(err)
	}

	blockedDays := make([]time.Time, 0, len(blocked))
	for i := range blocked {
		blockedDays = append(blockedDays, blocked[i].Day())
	}
	ranges := make([]agenda.DateRange, 0, len(periods))
	for i := range periods {
		r, err := agenda.NewDateRange(model.DayOf(periods[i].StartDate), model.DayOf(periods[i].EndDate))
		if err != nil {
			continue
		}
		if clipped, ok := r.Clip(window); ok {
			ranges = append(ranges, clipped)
		}
	}

	counts := make(map[time.Time]int)
	for i := range events {
		if events[i].Status.Active() {
			counts[events[i].Day()]++
		}
	}

	return &dayWindow{
		cfg:    cfg,
		counts: counts,
		blocks: agenda.NewBlockIndex(blockedDays, ranges, ruleDays),
		hols:   agenda.NewHolidayIndex(national, personalHolidays(personal)),
	}, nil
}

func (w *dayWindow) classify(day time.Time) agenda.DayResult {
	return agenda.Classify(agenda.DayInput{
		Date:         day,
		ActiveEvents: w.counts[day],
		BlockedBy:    w.blocks.Lookup(day),
		MaxPerDay:    w.cfg.MaxPerDay,
		Holiday:      w.hols.On(day),
	})
}

func (s *AgendaService) GetMonth(ctx context.Context, req *agendav1.GetMonthRequest) (*agendav1.MonthView, error) {
	userID, err := parseUserID(req.UserID)
	if err != nil {
		return nil, err
	}
	month, err := agenda.MonthRange(req.Year, time.Month(req.Month))
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid ano/mes")
	}

	w, err := s.loadWindow(ctx, userID, month)
	if err != nil {
		return nil, err
	}

	view := &agendav1.MonthView{
		Year:      req.Year,
		Month:     req.Month,
		MaxPerDay: w.cfg.MaxPerDay,
	}
	for _, d := range month.Days() {
		res := w.classify(d)
		view.Days = append(view.Days, &agendav1.Day{
			Date:      agenda.FormatDate(d),
			Status:    string(res.Status),
			Count:     res.Count,
			BlockedBy: string(res.BlockedBy),
			Holiday:   toHolidayPB(res.Holiday),
		})
	}
	return view, nil
}

func (s *AgendaService) CheckAvailability(ctx context.Context, req *agendav1.CheckAvailabilityRequest) (*agendav1.Availability, error) {
	userID, err := parseUserID(req.UserID)
	if err != nil {
		return nil, err
	}
	date, err := parseDateField("data", req.Date)
	if err != nil {
		return nil, err
	}

	w, err := s.loadWindow(ctx, userID, agenda.DateRange{Start: date, End: date})
	if err != nil {
		return nil, err
	}
	mode, err := agenda.ParseWarningMode(w.cfg.WarningMode)
	if err != nil {
		mode = agenda.ModeSuggestive
	}

	a := agenda.Evaluate(w.classify(date), w.cfg.MaxPerDay, mode, w.cfg.Active, w.counts[date])
	return &agendav1.Availability{
		Date:      agenda.FormatDate(a.Date),
		Available: a.Available,
		Status:    string(a.Status),
		Current:   a.Current,
		Max:       a.Max,
		Mode:      string(a.Mode),
		Blocked:   a.Blocked,
		Allowed:   a.Allowed,
		Message:   a.Message,
		Holiday:   toHolidayPB(a.Holiday),
		DateLabel: agenda.FormatDateForUser(a.Date),
	}, nil
}

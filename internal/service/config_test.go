package service

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"

	"github.com/Leganyst/agenda-platform/internal/agenda"
	agendav1 "github.com/Leganyst/agenda-platform/internal/api/agenda/v1"
)

func TestGetAgendaConfig_Defaults(t *testing.T) {
	env := newTestEnv(t, Limits{}, nil)
	cfg, err := env.svc.GetAgendaConfig(context.Background(), &agendav1.UserRequest{UserID: uuid.NewString()})
	if err != nil {
		t.Fatalf("GetAgendaConfig: %v", err)
	}
	if cfg.MaxPerDay != 1 || cfg.WarningMode != "sugestivo" || !cfg.Active || cfg.MassRulesActive {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.ParityRule != "nenhum" || cfg.WeekRule != "nenhum" || len(cfg.BlockedWeekdays) != 0 {
		t.Fatalf("unexpected rule defaults: %+v", cfg)
	}
}

func TestUpdateAgendaConfig_InvalidLeavesConfigUnchanged(t *testing.T) {
	env := newTestEnv(t, Limits{}, nil)
	ctx := context.Background()
	user := uuid.NewString()

	_, err := env.svc.UpdateAgendaConfig(ctx, &agendav1.UpdateAgendaConfigRequest{
		UserID:      user,
		WarningMode: ptr("restritivo"),
		MaxPerDay:   ptr(9),
	})
	mustCode(t, err, codes.InvalidArgument)

	_, err = env.svc.UpdateAgendaConfig(ctx, &agendav1.UpdateAgendaConfigRequest{
		UserID:          user,
		WarningMode:     ptr("restritivo"),
		BlockedWeekdays: ptr([]int{1, 7}),
	})
	mustCode(t, err, codes.InvalidArgument)

	_, err = env.svc.UpdateAgendaConfig(ctx, &agendav1.UpdateAgendaConfigRequest{
		UserID:        user,
		WarningMode:   ptr("restritivo"),
		WeekRuleStart: ptr("2026-13-01"),
	})
	mustCode(t, err, codes.InvalidArgument)

	cfg, err := env.svc.GetAgendaConfig(ctx, &agendav1.UserRequest{UserID: user})
	if err != nil {
		t.Fatalf("GetAgendaConfig: %v", err)
	}
	if cfg.WarningMode != "sugestivo" {
		t.Fatalf("config changed by invalid update: %+v", cfg)
	}
}

func TestUpdateAgendaConfig_WeekRuleStart(t *testing.T) {
	env := newTestEnv(t, Limits{}, nil)
	ctx := context.Background()
	user := uuid.NewString()

	cfg, err := env.svc.UpdateAgendaConfig(ctx, &agendav1.UpdateAgendaConfigRequest{
		UserID:          user,
		MassRulesActive: ptr(true),
		WeekRule:        ptr("trabalha_pares"),
		WeekRuleStart:   ptr("2026-03-02"),
	})
	if err != nil {
		t.Fatalf("UpdateAgendaConfig: %v", err)
	}
	if cfg.WeekRuleStart != "2026-03-02" {
		t.Fatalf("week start = %q", cfg.WeekRuleStart)
	}

	view, err := env.svc.GetMonth(ctx, &agendav1.GetMonthRequest{UserID: user, Year: 2026, Month: 3})
	if err != nil {
		t.Fatalf("GetMonth: %v", err)
	}
	// 02..08 — рабочая неделя отсчёта, 09..15 — заблокирована
	if view.Days[2].Status != string(agenda.DayAvailable) || view.Days[9].BlockedBy != string(agenda.BlockRule) {
		t.Fatalf("week rule not applied: %+v / %+v", view.Days[2], view.Days[9])
	}

	cfg, err = env.svc.UpdateAgendaConfig(ctx, &agendav1.UpdateAgendaConfigRequest{UserID: user, WeekRuleStart: ptr("")})
	if err != nil {
		t.Fatalf("UpdateAgendaConfig: %v", err)
	}
	if cfg.WeekRuleStart != "" || cfg.WeekRule != "trabalha_pares" {
		t.Fatalf("reset failed: %+v", cfg)
	}
}

func TestToggleAgendaRule(t *testing.T) {
	env := newTestEnv(t, Limits{}, nil)
	ctx := context.Background()
	user := uuid.NewString()

	toggle := func(field, value string, weekday *int) *agendav1.AgendaConfig {
		t.Helper()
		cfg, err := env.svc.ToggleAgendaRule(ctx, &agendav1.ToggleAgendaRuleRequest{UserID: user, Field: field, Value: value, Weekday: weekday})
		if err != nil {
			t.Fatalf("ToggleAgendaRule(%s, %s): %v", field, value, err)
		}
		return cfg
	}

	if cfg := toggle("regra_par_impar", "pares", nil); cfg.ParityRule != "pares" {
		t.Fatalf("parity = %q", cfg.ParityRule)
	}
	if cfg := toggle("regra_par_impar", "impares", nil); cfg.ParityRule != "impares" {
		t.Fatalf("parity = %q", cfg.ParityRule)
	}
	if cfg := toggle("regra_par_impar", "impares", nil); cfg.ParityRule != "nenhum" {
		t.Fatalf("parity = %q", cfg.ParityRule)
	}
	if cfg := toggle("regra_semanal", "trabalha_impares", nil); cfg.WeekRule != "trabalha_impares" {
		t.Fatalf("week = %q", cfg.WeekRule)
	}

	toggle("dia_semana", "", ptr(6))
	if cfg := toggle("dia_semana", "", ptr(0)); !reflect.DeepEqual(cfg.BlockedWeekdays, []int{0, 6}) {
		t.Fatalf("weekdays = %v", cfg.BlockedWeekdays)
	}
	if cfg := toggle("dia_semana", "", ptr(6)); !reflect.DeepEqual(cfg.BlockedWeekdays, []int{0}) {
		t.Fatalf("weekdays = %v", cfg.BlockedWeekdays)
	}

	_, err := env.svc.ToggleAgendaRule(ctx, &agendav1.ToggleAgendaRuleRequest{UserID: user, Field: "dia_semana"})
	mustCode(t, err, codes.InvalidArgument)
	_, err = env.svc.ToggleAgendaRule(ctx, &agendav1.ToggleAgendaRuleRequest{UserID: user, Field: "regra_par_impar", Value: "todos"})
	mustCode(t, err, codes.InvalidArgument)
	_, err = env.svc.ToggleAgendaRule(ctx, &agendav1.ToggleAgendaRuleRequest{UserID: user, Field: "modo"})
	mustCode(t, err, codes.InvalidArgument)
}

func TestBlockHolidaysToggleSyncsBlockedDates(t *testing.T) {
	national := fakeHolidays{
		2026: {{Date: time.Date(2026, 4, 21, 0, 0, 0, 0, time.UTC), Name: "Tiradentes", Kind: agenda.HolidayNational}},
		2027: {{Date: time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC), Name: "Confraternização Universal", Kind: agenda.HolidayNational}},
	}
	env := newTestEnv(t, Limits{}, national)
	ctx := context.Background()
	user := uuid.NewString()

	if _, err := env.svc.BlockDate(ctx, &agendav1.BlockDateRequest{UserID: user, Date: "2026-04-21", Reason: "manual"}); err != nil {
		t.Fatalf("BlockDate: %v", err)
	}
	if _, err := env.svc.AddHoliday(ctx, &agendav1.AddHolidayRequest{UserID: user, Date: "2026-08-10", Name: "Folga"}); err != nil {
		t.Fatalf("AddHoliday: %v", err)
	}

	if _, err := env.svc.UpdateAgendaConfig(ctx, &agendav1.UpdateAgendaConfigRequest{UserID: user, BlockHolidays: ptr(true)}); err != nil {
		t.Fatalf("UpdateAgendaConfig: %v", err)
	}

	list, err := env.svc.ListBlockedDates(ctx, &agendav1.UserRequest{UserID: user})
	if err != nil {
		t.Fatalf("ListBlockedDates: %v", err)
	}
	got := map[string]string{}
	for _, b := range list.Dates {
		got[b.Date] = b.Source
	}
	want := map[string]string{
		"2026-04-21": "",
		"2026-08-10": "Feriado: Folga",
		"2027-01-01": "Feriado: Confraternização Universal",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("blocked dates = %v, want %v", got, want)
	}

	// повторный запуск ничего не дублирует
	n, err := env.svc.SyncHolidayBlocks(ctx, uuid.MustParse(user), 2026, 2027)
	if err != nil || n != 0 {
		t.Fatalf("SyncHolidayBlocks = %d, %v", n, err)
	}
	if err := env.svc.SyncAllHolidayBlocks(ctx); err != nil {
		t.Fatalf("SyncAllHolidayBlocks: %v", err)
	}
}

func TestBlockingCRUD(t *testing.T) {
	env := newTestEnv(t, Limits{}, nil)
	ctx := context.Background()
	user := uuid.NewString()

	b, err := env.svc.BlockDate(ctx, &agendav1.BlockDateRequest{UserID: user, Date: "2026-05-01"})
	if err != nil {
		t.Fatalf("BlockDate: %v", err)
	}
	_, err = env.svc.BlockDate(ctx, &agendav1.BlockDateRequest{UserID: user, Date: "2026-05-01"})
	mustCode(t, err, codes.AlreadyExists)

	if _, err := env.svc.UnblockDate(ctx, &agendav1.UnblockDateRequest{UserID: user, ID: b.ID}); err != nil {
		t.Fatalf("UnblockDate by id: %v", err)
	}
	if _, err := env.svc.BlockDate(ctx, &agendav1.BlockDateRequest{UserID: user, Date: "2026-05-01"}); err != nil {
		t.Fatalf("BlockDate again: %v", err)
	}
	if _, err := env.svc.UnblockDate(ctx, &agendav1.UnblockDateRequest{UserID: user, Date: "2026-05-01"}); err != nil {
		t.Fatalf("UnblockDate by date: %v", err)
	}
	_, err = env.svc.UnblockDate(ctx, &agendav1.UnblockDateRequest{UserID: user, Date: "2026-05-01"})
	mustCode(t, err, codes.NotFound)
	_, err = env.svc.UnblockDate(ctx, &agendav1.UnblockDateRequest{UserID: user})
	mustCode(t, err, codes.InvalidArgument)

	_, err = env.svc.AddBlockedPeriod(ctx, &agendav1.AddBlockedPeriodRequest{UserID: user, StartDate: "2026-05-10", EndDate: "2026-05-01"})
	mustCode(t, err, codes.InvalidArgument)
	p, err := env.svc.AddBlockedPeriod(ctx, &agendav1.AddBlockedPeriodRequest{UserID: user, StartDate: "2026-05-01", EndDate: "2026-05-10", Reason: "férias"})
	if err != nil {
		t.Fatalf("AddBlockedPeriod: %v", err)
	}
	periods, err := env.svc.ListBlockedPeriods(ctx, &agendav1.UserRequest{UserID: user})
	if err != nil || len(periods.Periods) != 1 || periods.Periods[0].EndDate != "2026-05-10" {
		t.Fatalf("ListBlockedPeriods: %v, %+v", err, periods)
	}
	if _, err := env.svc.DeleteBlockedPeriod(ctx, &agendav1.DeleteRequest{UserID: user, ID: p.ID}); err != nil {
		t.Fatalf("DeleteBlockedPeriod: %v", err)
	}
	_, err = env.svc.DeleteBlockedPeriod(ctx, &agendav1.DeleteRequest{UserID: user, ID: p.ID})
	mustCode(t, err, codes.NotFound)
}

func TestHolidaysCRUD(t *testing.T) {
	national := fakeHolidays{2026: {{Date: time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC), Name: "Independência", Kind: agenda.HolidayNational}}}
	env := newTestEnv(t, Limits{}, national)
	ctx := context.Background()
	user := uuid.NewString()

	h, err := env.svc.AddHoliday(ctx, &agendav1.AddHolidayRequest{UserID: user, Date: "2026-06-24", Name: "São João"})
	if err != nil {
		t.Fatalf("AddHoliday: %v", err)
	}
	_, err = env.svc.AddHoliday(ctx, &agendav1.AddHolidayRequest{UserID: user, Date: "2026-06-24"})
	mustCode(t, err, codes.InvalidArgument)

	list, err := env.svc.ListHolidays(ctx, &agendav1.ListHolidaysRequest{UserID: user})
	if err != nil {
		t.Fatalf("ListHolidays: %v", err)
	}
	if len(list.Personal) != 1 || len(list.National) != 1 || list.National[0].Name != "Independência" {
		t.Fatalf("unexpected holidays: %+v", list)
	}

	if _, err := env.svc.DeleteHoliday(ctx, &agendav1.DeleteRequest{UserID: user, ID: h.ID}); err != nil {
		t.Fatalf("DeleteHoliday: %v", err)
	}
	_, err = env.svc.DeleteHoliday(ctx, &agendav1.DeleteRequest{UserID: user, ID: h.ID})
	mustCode(t, err, codes.NotFound)
}

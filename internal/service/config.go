package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/Leganyst/agenda-platform/internal/agenda"
	agendav1 "github.com/Leganyst/agenda-platform/internal/api/agenda/v1"
	"github.com/Leganyst/agenda-platform/internal/log"
	"github.com/Leganyst/agenda-platform/internal/model"
)

const (
	toggleParity  = "regra_par_impar"
	toggleWeek    = "regra_semanal"
	toggleWeekday = "dia_semana"
)

func (s *AgendaService) GetAgendaConfig(ctx context.Context, req *agendav1.UserRequest) (*agendav1.AgendaConfig, error) {
	userID, err := parseUserID(req.UserID)
	if err != nil {
		return nil, err
	}
	cfg, err := s.repos.Configs.Ensure(ctx, userID)
	if err != nil {
		return nil, storageError("get agenda config", err)
	}
	return toConfigPB(cfg), nil
}

// UpdateAgendaConfig применяет все переданные поля и пишет настройки
// одной записью; при ошибке валидации ничего не меняется.
func (s *AgendaService) UpdateAgendaConfig(ctx context.Context, req *agendav1.UpdateAgendaConfigRequest) (*agendav1.AgendaConfig, error) {
	userID, err := parseUserID(req.UserID)
	if err != nil {
		return nil, err
	}
	if err := s.validate.Struct(req); err != nil {
		return nil, validationError(err)
	}

	cfg, err := s.repos.Configs.Ensure(ctx, userID)
	if err != nil {
		return nil, storageError("get agenda config", err)
	}
	wasBlockingHolidays := cfg.BlockHolidays && cfg.Active

	if req.MaxPerDay != nil {
		cfg.MaxPerDay = *req.MaxPerDay
	}
	if req.WarningMode != nil {
		mode, err := agenda.ParseWarningMode(*req.WarningMode)
		if err != nil {
			return nil, domainError(err)
		}
		cfg.WarningMode = string(mode)
	}
	if req.Active != nil {
		cfg.Active = *req.Active
	}
	if req.BlockedWeekdays != nil {
		days, err := agenda.ParseWeekdays(*req.BlockedWeekdays)
		if err != nil {
			return nil, domainError(err)
		}
		cfg.BlockedWeekdays = weekdayInts(days)
	}
	if req.MassRulesActive != nil {
		cfg.MassRulesActive = *req.MassRulesActive
	}
	if req.BlockHolidays != nil {
		cfg.BlockHolidays = *req.BlockHolidays
	}
	if req.ParityRule != nil {
		r, err := agenda.ParseParityRule(*req.ParityRule)
		if err != nil {
			return nil, domainError(err)
		}
		cfg.ParityRule = string(r)
	}
	if req.WeekRule != nil {
		r, err := agenda.ParseWeekRule(*req.WeekRule)
		if err != nil {
			return nil, domainError(err)
		}
		cfg.WeekRule = string(r)
	}
	if req.WeekRuleStart != nil {
		if strings.TrimSpace(*req.WeekRuleStart) == "" {
			cfg.WeekRuleStart = nil
		} else {
			d, err := parseDateField("regra_semanal_inicio", *req.WeekRuleStart)
			if err != nil {
				return nil, err
			}
			cfg.WeekRuleStart = model.NewDatePtr(&d)
		}
	}

	if err := s.repos.Configs.Save(ctx, cfg); err != nil {
		return nil, storageError("save agenda config", err)
	}

	if !wasBlockingHolidays && cfg.BlockHolidays && cfg.Active {
		s.syncAfterToggle(ctx, userID)
	}
	return toConfigPB(cfg), nil
}

// ToggleAgendaRule применяет клик по кнопке правила в настройках.
func (s *AgendaService) ToggleAgendaRule(ctx context.Context, req *agendav1.ToggleAgendaRuleRequest) (*agendav1.AgendaConfig, error) {
	userID, err := parseUserID(req.UserID)
	if err != nil {
		return nil, err
	}
	if err := s.validate.Struct(req); err != nil {
		return nil, validationError(err)
	}

	cfg, err := s.repos.Configs.Ensure(ctx, userID)
	if err != nil {
		return nil, storageError("get agenda config", err)
	}

	switch req.Field {
	case toggleParity:
		clicked, err := agenda.ParseParityRule(req.Value)
		if err != nil {
			return nil, domainError(err)
		}
		cfg.ParityRule = string(agenda.ToggleParity(agenda.ParityRule(cfg.ParityRule), clicked))
	case toggleWeek:
		clicked, err := agenda.ParseWeekRule(req.Value)
		if err != nil {
			return nil, domainError(err)
		}
		cfg.WeekRule = string(agenda.ToggleWeek(agenda.WeekRule(cfg.WeekRule), clicked))
	case toggleWeekday:
		if req.Weekday == nil {
			return nil, status.Error(codes.InvalidArgument, "dia_semana is required")
		}
		cfg.BlockedWeekdays = agenda.ToggleWeekday(cfg.BlockedWeekdays, *req.Weekday)
	}

	if err := s.repos.Configs.Save(ctx, cfg); err != nil {
		return nil, storageError("save agenda config", err)
	}
	return toConfigPB(cfg), nil
}

func (s *AgendaService) syncAfterToggle(ctx context.Context, userID uuid.UUID) {
	year := s.today().Year()
	n, err := s.SyncHolidayBlocks(ctx, userID, year, year+1)
	if err != nil {
		log.Error("holiday sync after toggle failed", err, "user_id", userID)
		return
	}
	log.Info("holidays blocked", "user_id", userID, "created", n)
}

func weekdayInts(days []time.Weekday) []int {
	out := make([]int, 0, len(days))
	for _, d := range days {
		out = append(out, int(d))
	}
	return out
}

package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	agendav1 "github.com/Leganyst/agenda-platform/internal/api/agenda/v1"
	"github.com/Leganyst/agenda-platform/internal/model"
)

// countsTowardQuota: в лимит бесплатного плана идут предстоящие
// confirmado/pendente.
func (s *AgendaService) countsTowardQuota(st model.EventStatus, date time.Time) bool {
	if st != model.EventStatusConfirmed && st != model.EventStatusPending {
		return false
	}
	return !date.Before(s.today())
}

func (s *AgendaService) isPremium(ctx context.Context, userID uuid.UUID) (bool, error) {
	sub, err := s.repos.Subscriptions.GetByUserID(ctx, userID)
	if err != nil {
		return false, storageError("get subscription", err)
	}
	return sub.Premium(), nil
}

func (s *AgendaService) checkEventQuota(ctx context.Context, userID uuid.UUID) error {
	if s.limits.FreeEventsLimit <= 0 {
		return nil
	}
	premium, err := s.isPremium(ctx, userID)
	if err != nil || premium {
		return err
	}
	n, err := s.repos.Events.CountUpcomingActive(ctx, userID, s.today())
	if err != nil {
		return storageError("count events", err)
	}
	if n >= int64(s.limits.FreeEventsLimit) {
		return status.Errorf(codes.ResourceExhausted,
			"Limite de %d eventos ativos do plano gratuito atingido", s.limits.FreeEventsLimit)
	}
	return nil
}

func (s *AgendaService) GetPlanLimits(ctx context.Context, req *agendav1.UserRequest) (*agendav1.PlanLimits, error) {
	userID, err := parseUserID(req.UserID)
	if err != nil {
		return nil, err
	}
	premium, err := s.isPremium(ctx, userID)
	if err != nil {
		return nil, err
	}
	n, err := s.repos.Events.CountUpcomingActive(ctx, userID, s.today())
	if err != nil {
		return nil, storageError("count events", err)
	}

	out := &agendav1.PlanLimits{
		Premium:        premium,
		ActiveEvents:   n,
		CanCreateEvent: true,
		CanImport:      premium,
	}
	if !premium && s.limits.FreeEventsLimit > 0 {
		out.ActiveEventLimit = s.limits.FreeEventsLimit
		out.CanCreateEvent = n < int64(s.limits.FreeEventsLimit)
	}
	return out, nil
}

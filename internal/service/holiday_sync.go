package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Leganyst/agenda-platform/internal/agenda"
	"github.com/Leganyst/agenda-platform/internal/log"
	"github.com/Leganyst/agenda-platform/internal/model"
)

const holidaySourcePrefix = "Feriado: "

// SyncHolidayBlocks блокирует национальные и личные праздники указанных
// лет. Уже заблокированные даты не трогаются; возвращает число новых блокировок.
func (s *AgendaService) SyncHolidayBlocks(ctx context.Context, userID uuid.UUID, years ...int) (int64, error) {
	personal, err := s.repos.Holidays.List(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("list holidays: %w", err)
	}

	var lists [][]agenda.Holiday
	for _, y := range years {
		lists = append(lists, s.nationalHolidays(ctx, y))
	}
	lists = append(lists, personalHolidays(personal))
	idx := agenda.NewHolidayIndex(lists...)

	inYears := make(map[int]struct{}, len(years))
	for _, y := range years {
		inYears[y] = struct{}{}
	}

	items := make([]model.BlockedDate, 0, len(idx))
	for day, h := range idx {
		if _, ok := inYears[day.Year()]; !ok {
			continue
		}
		items = append(items, model.BlockedDate{
			UserID: userID,
			Date:   model.NewDate(day),
			Reason: h.Name,
			Source: holidaySourcePrefix + h.Name,
		})
	}
	if len(items) == 0 {
		return 0, nil
	}

	n, err := s.repos.BlockedDates.CreateMissing(ctx, items)
	if err != nil {
		return 0, fmt.Errorf("block holidays: %w", err)
	}
	return n, nil
}

// SyncAllHolidayBlocks обходит активные агенды с включённым
// bloquear_feriados. Ошибка одного пользователя не останавливает обход.
func (s *AgendaService) SyncAllHolidayBlocks(ctx context.Context) error {
	configs, err := s.repos.Configs.ListHolidayBlocking(ctx)
	if err != nil {
		return fmt.Errorf("list configs: %w", err)
	}

	year := s.today().Year()
	var total int64
	for i := range configs {
		if err := ctx.Err(); err != nil {
			return err
		}
		n, err := s.SyncHolidayBlocks(ctx, configs[i].UserID, year, year+1)
		if err != nil {
			log.Error("holiday sync failed", err, "user_id", configs[i].UserID)
			continue
		}
		total += n
	}
	log.Info("holiday sync done", "users", len(configs), "created", total)
	return nil
}

package service

import (
	"context"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	"github.com/Leganyst/agenda-platform/internal/agenda"
	agendav1 "github.com/Leganyst/agenda-platform/internal/api/agenda/v1"
	"github.com/Leganyst/agenda-platform/internal/repository"
)

// HolidaySource — национальные праздники года. Ошибки источник
// проглатывает сам и возвращает пустой список.
type HolidaySource interface {
	National(ctx context.Context, year int) []agenda.Holiday
}

type Repositories struct {
	Events        repository.EventRepository
	BlockedDates  repository.BlockedDateRepository
	Periods       repository.BlockedPeriodRepository
	Holidays      repository.HolidayRepository
	Configs       repository.AgendaConfigRepository
	Imports       repository.ImportHistoryRepository
	Subscriptions repository.SubscriptionRepository
}

func NewGormRepositories(db *gorm.DB) Repositories {
	return Repositories{
		Events:        repository.NewGormEventRepository(db),
		BlockedDates:  repository.NewGormBlockedDateRepository(db),
		Periods:       repository.NewGormBlockedPeriodRepository(db),
		Holidays:      repository.NewGormHolidayRepository(db),
		Configs:       repository.NewGormAgendaConfigRepository(db),
		Imports:       repository.NewGormImportHistoryRepository(db),
		Subscriptions: repository.NewGormSubscriptionRepository(db),
	}
}

type Limits struct {
	// Активные будущие события на бесплатном плане; 0 — без лимита.
	FreeEventsLimit int
}

type AgendaService struct {
	agendav1.UnimplementedAgendaServiceServer

	db       *gorm.DB
	repos    Repositories
	national HolidaySource
	limits   Limits
	validate *validator.Validate
	now      func() time.Time
}

func NewAgendaService(db *gorm.DB, repos Repositories, national HolidaySource, limits Limits) *AgendaService {
	return &AgendaService{
		db:       db,
		repos:    repos,
		national: national,
		limits:   limits,
		validate: newValidator(),
		now:      time.Now,
	}
}

func (s *AgendaService) today() time.Time {
	return agenda.DateOf(s.now().UTC())
}

func (s *AgendaService) nationalHolidays(ctx context.Context, year int) []agenda.Holiday {
	if s.national == nil {
		return nil
	}
	return s.national.National(ctx, year)
}

// newValidator: в сообщениях об ошибках поля называются так же, как в JSON.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	return v
}

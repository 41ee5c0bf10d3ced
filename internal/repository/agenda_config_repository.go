package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Leganyst/agenda-platform/internal/model"
)

type AgendaConfigRepository interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*model.AgendaConfig, error)
	// Вернуть настройки пользователя, создав их с дефолтами при первом обращении.
	Ensure(ctx context.Context, userID uuid.UUID) (*model.AgendaConfig, error)
	// Сохранить все поля одной записью.
	Save(ctx context.Context, cfg *model.AgendaConfig) error
	// Пользователи с включённой блокировкой праздников.
	ListHolidayBlocking(ctx context.Context) ([]model.AgendaConfig, error)
}

type GormAgendaConfigRepository struct {
	db *gorm.DB
}

func NewGormAgendaConfigRepository(db *gorm.DB) *GormAgendaConfigRepository {
	return &GormAgendaConfigRepository{db: db}
}

func (r *GormAgendaConfigRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*model.AgendaConfig, error) {
	var c model.AgendaConfig
	if err := r.db.WithContext(ctx).First(&c, "user_id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *GormAgendaConfigRepository) Ensure(ctx context.Context, userID uuid.UUID) (*model.AgendaConfig, error) {
	if userID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	c, err := r.GetByUserID(ctx, userID)
	if err == nil {
		return c, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	def := model.DefaultAgendaConfig(userID)
	// Параллельный первый запрос мог успеть создать строку.
	err = r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "user_id"}}, DoNothing: true}).
		Create(&def).
		Error
	if err != nil {
		return nil, err
	}
	return r.GetByUserID(ctx, userID)
}

func (r *GormAgendaConfigRepository) Save(ctx context.Context, cfg *model.AgendaConfig) error {
	return r.db.WithContext(ctx).Save(cfg).Error
}

func (r *GormAgendaConfigRepository) ListHolidayBlocking(ctx context.Context) ([]model.AgendaConfig, error) {
	var items []model.AgendaConfig
	err := r.db.WithContext(ctx).
		Where("block_holidays = ?", true).
		Where("active = ?", true).
		Find(&items).
		Error
	return items, err
}

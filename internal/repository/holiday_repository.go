package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Leganyst/agenda-platform/internal/model"
)

type HolidayRepository interface {
	Create(ctx context.Context, h *model.Holiday) error
	Delete(ctx context.Context, userID, id uuid.UUID) (int64, error)
	List(ctx context.Context, userID uuid.UUID) ([]model.Holiday, error)
	ListByRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]model.Holiday, error)
}

type GormHolidayRepository struct {
	db *gorm.DB
}

func NewGormHolidayRepository(db *gorm.DB) *GormHolidayRepository {
	return &GormHolidayRepository{db: db}
}

func (r *GormHolidayRepository) Create(ctx context.Context, h *model.Holiday) error {
	return r.db.WithContext(ctx).Create(h).Error
}

func (r *GormHolidayRepository) Delete(ctx context.Context, userID, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&model.Holiday{}, "id = ? AND user_id = ?", id, userID)
	return res.RowsAffected, res.Error
}

func (r *GormHolidayRepository) List(ctx context.Context, userID uuid.UUID) ([]model.Holiday, error) {
	var items []model.Holiday
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("holiday_date ASC").
		Find(&items).
		Error
	return items, err
}

func (r *GormHolidayRepository) ListByRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]model.Holiday, error) {
	var items []model.Holiday
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("holiday_date >= ? AND holiday_date <= ?", model.NewDate(from), model.NewDate(to)).
		Order("holiday_date ASC").
		Find(&items).
		Error
	return items, err
}

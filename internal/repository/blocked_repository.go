package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Leganyst/agenda-platform/internal/model"
)

type BlockedDateRepository interface {
	Create(ctx context.Context, b *model.BlockedDate) error
	// Вставить даты, пропуская уже заблокированные; возвращает число новых строк.
	CreateMissing(ctx context.Context, items []model.BlockedDate) (int64, error)
	Delete(ctx context.Context, userID, id uuid.UUID) (int64, error)
	// Снять блокировку по дате.
	DeleteByDate(ctx context.Context, userID uuid.UUID, date time.Time) (int64, error)
	List(ctx context.Context, userID uuid.UUID) ([]model.BlockedDate, error)
	ListByRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]model.BlockedDate, error)
	Exists(ctx context.Context, userID uuid.UUID, date time.Time) (bool, error)
}

type GormBlockedDateRepository struct {
	db *gorm.DB
}

func NewGormBlockedDateRepository(db *gorm.DB) *GormBlockedDateRepository {
	return &GormBlockedDateRepository{db: db}
}

func (r *GormBlockedDateRepository) Create(ctx context.Context, b *model.BlockedDate) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *GormBlockedDateRepository) CreateMissing(ctx context.Context, items []model.BlockedDate) (int64, error) {
	if len(items) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "blocked_date"}},
			DoNothing: true,
		}).
		Create(&items)
	return res.RowsAffected, res.Error
}

func (r *GormBlockedDateRepository) Delete(ctx context.Context, userID, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&model.BlockedDate{}, "id = ? AND user_id = ?", id, userID)
	return res.RowsAffected, res.Error
}

func (r *GormBlockedDateRepository) DeleteByDate(ctx context.Context, userID uuid.UUID, date time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND blocked_date = ?", userID, model.NewDate(date)).
		Delete(&model.BlockedDate{})
	return res.RowsAffected, res.Error
}

func (r *GormBlockedDateRepository) List(ctx context.Context, userID uuid.UUID) ([]model.BlockedDate, error) {
	var items []model.BlockedDate
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("blocked_date ASC").
		Find(&items).
		Error
	return items, err
}

func (r *GormBlockedDateRepository) ListByRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]model.BlockedDate, error) {
	var items []model.BlockedDate
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("blocked_date >= ? AND blocked_date <= ?", model.NewDate(from), model.NewDate(to)).
		Order("blocked_date ASC").
		Find(&items).
		Error
	return items, err
}

func (r *GormBlockedDateRepository) Exists(ctx context.Context, userID uuid.UUID, date time.Time) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&model.BlockedDate{}).
		Where("user_id = ? AND blocked_date = ?", userID, model.NewDate(date)).
		Count(&n).
		Error
	return n > 0, err
}

type BlockedPeriodRepository interface {
	Create(ctx context.Context, p *model.BlockedPeriod) error
	Delete(ctx context.Context, userID, id uuid.UUID) (int64, error)
	List(ctx context.Context, userID uuid.UUID) ([]model.BlockedPeriod, error)
	// Периоды, пересекающие [from, to].
	ListOverlapping(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]model.BlockedPeriod, error)
}

type GormBlockedPeriodRepository struct {
	db *gorm.DB
}

func NewGormBlockedPeriodRepository(db *gorm.DB) *GormBlockedPeriodRepository {
	return &GormBlockedPeriodRepository{db: db}
}

func (r *GormBlockedPeriodRepository) Create(ctx context.Context, p *model.BlockedPeriod) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *GormBlockedPeriodRepository) Delete(ctx context.Context, userID, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&model.BlockedPeriod{}, "id = ? AND user_id = ?", id, userID)
	return res.RowsAffected, res.Error
}

func (r *GormBlockedPeriodRepository) List(ctx context.Context, userID uuid.UUID) ([]model.BlockedPeriod, error) {
	var items []model.BlockedPeriod
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("start_date ASC").
		Find(&items).
		Error
	return items, err
}

func (r *GormBlockedPeriodRepository) ListOverlapping(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]model.BlockedPeriod, error) {
	var items []model.BlockedPeriod
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("start_date <= ? AND end_date >= ?", model.NewDate(to), model.NewDate(from)).
		Order("start_date ASC").
		Find(&items).
		Error
	return items, err
}

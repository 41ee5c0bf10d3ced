package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Leganyst/agenda-platform/internal/model"
)

type ImportHistoryRepository interface {
	WithTx(tx *gorm.DB) ImportHistoryRepository

	Create(ctx context.Context, h *model.ImportHistory) error
	GetByID(ctx context.Context, userID, id uuid.UUID) (*model.ImportHistory, error)
	// Записать итоговые счётчики и ошибки.
	UpdateResult(ctx context.Context, h *model.ImportHistory) error
	Delete(ctx context.Context, userID, id uuid.UUID) (int64, error)
	// История пользователя, новые сверху.
	List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]model.ImportHistory, int64, error)
}

type GormImportHistoryRepository struct {
	db *gorm.DB
}

func NewGormImportHistoryRepository(db *gorm.DB) *GormImportHistoryRepository {
	return &GormImportHistoryRepository{db: db}
}

func (r *GormImportHistoryRepository) WithTx(tx *gorm.DB) ImportHistoryRepository {
	return &GormImportHistoryRepository{db: tx}
}

func (r *GormImportHistoryRepository) Create(ctx context.Context, h *model.ImportHistory) error {
	return r.db.WithContext(ctx).Create(h).Error
}

func (r *GormImportHistoryRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*model.ImportHistory, error) {
	var h model.ImportHistory
	if err := r.db.WithContext(ctx).First(&h, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		return nil, err
	}
	return &h, nil
}

func (r *GormImportHistoryRepository) UpdateResult(ctx context.Context, h *model.ImportHistory) error {
	return r.db.WithContext(ctx).
		Model(&model.ImportHistory{}).
		Where("id = ?", h.ID).
		Updates(map[string]any{
			"added":   h.Added,
			"updated": h.Updated,
			"skipped": h.Skipped,
			"removed": h.Removed,
			"errors":  h.Errors,
		}).
		Error
}

func (r *GormImportHistoryRepository) Delete(ctx context.Context, userID, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&model.ImportHistory{}, "id = ? AND user_id = ?", id, userID)
	return res.RowsAffected, res.Error
}

func (r *GormImportHistoryRepository) List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]model.ImportHistory, int64, error) {
	var (
		items []model.ImportHistory
		total int64
	)

	q := r.db.WithContext(ctx).
		Model(&model.ImportHistory{}).
		Where("user_id = ?", userID)

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}

	if err := q.Order("created_at DESC").Find(&items).Error; err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

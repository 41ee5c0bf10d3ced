package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Leganyst/agenda-platform/internal/model"
)

type EventRepository interface {
	// Репозиторий, работающий внутри транзакции tx.
	WithTx(tx *gorm.DB) EventRepository

	Create(ctx context.Context, ev *model.Event) error
	// Обновить изменяемые поля события.
	Update(ctx context.Context, ev *model.Event) error
	// Удалить событие пользователя; 0 строк значит, что события нет.
	Delete(ctx context.Context, userID, id uuid.UUID) (int64, error)
	GetByID(ctx context.Context, userID, id uuid.UUID) (*model.Event, error)

	// События за интервал дат включительно, по возрастанию даты.
	ListByRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]model.Event, error)
	// Постраничный список всех событий пользователя.
	List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]model.Event, int64, error)
	// Не отменённые события начиная с даты from (для экспорта).
	ListActiveFrom(ctx context.Context, userID uuid.UUID, from time.Time) ([]model.Event, error)

	// Событие с той же датой и тем же клиентом; nil, если нет.
	FindByKey(ctx context.Context, userID uuid.UUID, date time.Time, clientName string) (*model.Event, error)
	// Активные (confirmado/pendente) события, начиная с from.
	CountUpcomingActive(ctx context.Context, userID uuid.UUID, from time.Time) (int64, error)
	// Не отменённые события в конкретный день.
	CountActiveOn(ctx context.Context, userID uuid.UUID, date time.Time) (int64, error)

	// Удалить импортированные события (или все, если includeManual).
	DeleteAll(ctx context.Context, userID uuid.UUID, includeManual bool) (int64, error)
	// Удалить события конкретного импорта.
	DeleteByImport(ctx context.Context, userID, importID uuid.UUID) (int64, error)
}

type GormEventRepository struct {
	db *gorm.DB
}

func NewGormEventRepository(db *gorm.DB) *GormEventRepository {
	return &GormEventRepository{db: db}
}

func (r *GormEventRepository) WithTx(tx *gorm.DB) EventRepository {
	return &GormEventRepository{db: tx}
}

func (r *GormEventRepository) Create(ctx context.Context, ev *model.Event) error {
	return r.db.WithContext(ctx).Create(ev).Error
}

func (r *GormEventRepository) Update(ctx context.Context, ev *model.Event) error {
	return r.db.WithContext(ctx).
		Model(&model.Event{}).
		Where("id = ? AND user_id = ?", ev.ID, ev.UserID).
		Updates(map[string]any{
			"event_date":  ev.Date,
			"type":        ev.Type,
			"client_name": ev.ClientName,
			"city":        ev.City,
			"status":      ev.Status,
			"notes":       ev.Notes,
			"import_id":   ev.ImportID,
		}).
		Error
}

func (r *GormEventRepository) Delete(ctx context.Context, userID, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&model.Event{}, "id = ? AND user_id = ?", id, userID)
	return res.RowsAffected, res.Error
}

func (r *GormEventRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*model.Event, error) {
	var ev model.Event
	if err := r.db.WithContext(ctx).First(&ev, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		return nil, err
	}
	return &ev, nil
}

func (r *GormEventRepository) ListByRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]model.Event, error) {
	var events []model.Event
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("event_date >= ? AND event_date <= ?", model.NewDate(from), model.NewDate(to)).
		Order("event_date ASC, created_at ASC").
		Find(&events).
		Error
	return events, err
}

func (r *GormEventRepository) List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]model.Event, int64, error) {
	var events []model.Event
	q := r.db.WithContext(ctx).
		Model(&model.Event{}).
		Where("user_id = ?", userID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}

	if err := q.Order("event_date ASC, created_at ASC").Find(&events).Error; err != nil {
		return nil, 0, err
	}

	return events, total, nil
}

func (r *GormEventRepository) ListActiveFrom(ctx context.Context, userID uuid.UUID, from time.Time) ([]model.Event, error) {
	var events []model.Event
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("event_date >= ?", model.NewDate(from)).
		Where("status <> ?", model.EventStatusCancelled).
		Order("event_date ASC").
		Find(&events).
		Error
	return events, err
}

func (r *GormEventRepository) FindByKey(ctx context.Context, userID uuid.UUID, date time.Time, clientName string) (*model.Event, error) {
	var events []model.Event
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND event_date = ? AND client_name = ?", userID, model.NewDate(date), clientName).
		Order("created_at ASC").
		Limit(1).
		Find(&events).
		Error
	if err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return nil, nil
	}
	return &events[0], nil
}

func (r *GormEventRepository) CountUpcomingActive(ctx context.Context, userID uuid.UUID, from time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&model.Event{}).
		Where("user_id = ?", userID).
		Where("status IN ?", []model.EventStatus{model.EventStatusConfirmed, model.EventStatusPending}).
		Where("event_date >= ?", model.NewDate(from)).
		Count(&n).
		Error
	return n, err
}

func (r *GormEventRepository) CountActiveOn(ctx context.Context, userID uuid.UUID, date time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&model.Event{}).
		Where("user_id = ? AND event_date = ?", userID, model.NewDate(date)).
		Where("status <> ?", model.EventStatusCancelled).
		Count(&n).
		Error
	return n, err
}

func (r *GormEventRepository) DeleteAll(ctx context.Context, userID uuid.UUID, includeManual bool) (int64, error) {
	q := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if !includeManual {
		q = q.Where("origin <> ?", model.EventOriginManual)
	}
	res := q.Delete(&model.Event{})
	return res.RowsAffected, res.Error
}

func (r *GormEventRepository) DeleteByImport(ctx context.Context, userID, importID uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND import_id = ?", userID, importID).
		Delete(&model.Event{})
	return res.RowsAffected, res.Error
}

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Leganyst/agenda-platform/internal/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql DB: %v", err)
	}
	// :memory: живёт в рамках одного соединения
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := model.AutoMigrate(db); err != nil {
		t.Fatalf("auto migrate: %v", err)
	}
	return db
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestEventRepository_KeyAndCounts(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewGormEventRepository(db)
	userID := uuid.New()
	otherUser := uuid.New()

	seed := []model.Event{
		{UserID: userID, Date: model.NewDate(date(2026, 3, 10)), ClientName: "Ana", Status: model.EventStatusConfirmed},
		{UserID: userID, Date: model.NewDate(date(2026, 3, 10)), ClientName: "Bruno", Status: model.EventStatusCancelled},
		{UserID: userID, Date: model.NewDate(date(2026, 3, 12)), ClientName: "Caio", Status: model.EventStatusPending, Origin: model.EventOriginCSV},
		{UserID: userID, Date: model.NewDate(date(2026, 2, 1)), ClientName: "Davi", Status: model.EventStatusDone},
		{UserID: otherUser, Date: model.NewDate(date(2026, 3, 10)), ClientName: "Ana"},
	}
	for i := range seed {
		if err := repo.Create(ctx, &seed[i]); err != nil {
			t.Fatalf("seed event: %v", err)
		}
	}

	ev, err := repo.FindByKey(ctx, userID, time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC), "Ana")
	if err != nil {
		t.Fatalf("FindByKey: %v", err)
	}
	if ev == nil || ev.ID != seed[0].ID {
		t.Fatalf("FindByKey returned %+v", ev)
	}
	if ev.Type != model.DefaultEventType || ev.Origin != model.EventOriginManual {
		t.Fatalf("defaults not applied: %+v", ev)
	}

	if ev, err := repo.FindByKey(ctx, userID, date(2026, 3, 10), "ana"); err != nil || ev != nil {
		t.Fatalf("key must be case sensitive: %+v, %v", ev, err)
	}

	n, err := repo.CountActiveOn(ctx, userID, date(2026, 3, 10))
	if err != nil || n != 1 {
		t.Fatalf("CountActiveOn = %d, %v; want 1", n, err)
	}

	n, err = repo.CountUpcomingActive(ctx, userID, date(2026, 3, 1))
	if err != nil || n != 2 {
		t.Fatalf("CountUpcomingActive = %d, %v; want 2", n, err)
	}

	events, err := repo.ListByRange(ctx, userID, date(2026, 3, 1), date(2026, 3, 31))
	if err != nil || len(events) != 3 {
		t.Fatalf("ListByRange = %d, %v; want 3", len(events), err)
	}

	page, total, err := repo.List(ctx, userID, 2, 0)
	if err != nil || total != 4 || len(page) != 2 {
		t.Fatalf("List = %d/%d, %v", len(page), total, err)
	}
	if !page[0].Day().Equal(date(2026, 2, 1)) {
		t.Fatalf("List must be ordered by date, first = %s", page[0].Day())
	}

	removed, err := repo.DeleteAll(ctx, userID, false)
	if err != nil || removed != 1 {
		t.Fatalf("DeleteAll imported = %d, %v; want 1", removed, err)
	}
	removed, err = repo.DeleteAll(ctx, userID, true)
	if err != nil || removed != 3 {
		t.Fatalf("DeleteAll all = %d, %v; want 3", removed, err)
	}

	var left int64
	db.Model(&model.Event{}).Where("user_id = ?", otherUser).Count(&left)
	if left != 1 {
		t.Fatalf("other user's events touched: %d left", left)
	}
}

func TestBlockedDateRepository_CreateMissing(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewGormBlockedDateRepository(db)
	userID := uuid.New()

	if err := repo.Create(ctx, &model.BlockedDate{UserID: userID, Date: model.NewDate(date(2026, 4, 21)), Reason: "viagem"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	n, err := repo.CreateMissing(ctx, []model.BlockedDate{
		{UserID: userID, Date: model.NewDate(date(2026, 4, 21)), Reason: "Feriado", Source: "Feriado: Tiradentes"},
		{UserID: userID, Date: model.NewDate(date(2026, 5, 1)), Reason: "Feriado", Source: "Feriado: Dia do Trabalho"},
	})
	if err != nil {
		t.Fatalf("CreateMissing: %v", err)
	}
	if n != 1 {
		t.Fatalf("CreateMissing inserted %d, want 1", n)
	}

	items, err := repo.ListByRange(ctx, userID, date(2026, 4, 1), date(2026, 5, 31))
	if err != nil || len(items) != 2 {
		t.Fatalf("ListByRange = %d, %v", len(items), err)
	}
	if items[0].Reason != "viagem" {
		t.Fatalf("existing block overwritten: %+v", items[0])
	}

	ok, err := repo.Exists(ctx, userID, date(2026, 5, 1))
	if err != nil || !ok {
		t.Fatalf("Exists = %v, %v", ok, err)
	}

	if n, err := repo.DeleteByDate(ctx, userID, date(2026, 5, 1)); err != nil || n != 1 {
		t.Fatalf("DeleteByDate = %d, %v", n, err)
	}
}

func TestBlockedPeriodRepository_ListOverlapping(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewGormBlockedPeriodRepository(db)
	userID := uuid.New()

	periods := []model.BlockedPeriod{
		{UserID: userID, Reason: "férias", StartDate: model.NewDate(date(2026, 1, 25)), EndDate: model.NewDate(date(2026, 2, 3))},
		{UserID: userID, Reason: "curso", StartDate: model.NewDate(date(2026, 3, 1)), EndDate: model.NewDate(date(2026, 3, 2))},
	}
	for i := range periods {
		if err := repo.Create(ctx, &periods[i]); err != nil {
			t.Fatalf("create period: %v", err)
		}
	}

	items, err := repo.ListOverlapping(ctx, userID, date(2026, 2, 1), date(2026, 2, 28))
	if err != nil {
		t.Fatalf("ListOverlapping: %v", err)
	}
	if len(items) != 1 || items[0].Reason != "férias" {
		t.Fatalf("ListOverlapping = %+v", items)
	}
}

func TestAgendaConfigRepository_Ensure(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewGormAgendaConfigRepository(db)
	userID := uuid.New()

	cfg, err := repo.Ensure(ctx, userID)
	if err != nil {
		t.Fatalf("Ensure: %v", err)
	}
	if cfg.MaxPerDay != 1 || cfg.WarningMode != "sugestivo" || !cfg.Active {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}

	cfg.BlockHolidays = true
	cfg.BlockedWeekdays = []int{0, 6}
	if err := repo.Save(ctx, cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}

	again, err := repo.Ensure(ctx, userID)
	if err != nil {
		t.Fatalf("Ensure again: %v", err)
	}
	if again.ID != cfg.ID || len(again.BlockedWeekdays) != 2 {
		t.Fatalf("Ensure must return the stored config: %+v", again)
	}

	blocking, err := repo.ListHolidayBlocking(ctx)
	if err != nil || len(blocking) != 1 {
		t.Fatalf("ListHolidayBlocking = %d, %v", len(blocking), err)
	}
}

func TestImportHistoryRepository_ListNewestFirst(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewGormImportHistoryRepository(db)
	userID := uuid.New()

	base := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	for i, name := range []string{"a.csv", "b.ics", "c.csv"} {
		h := &model.ImportHistory{UserID: userID, FileName: name, Strategy: "adicionar_novos", CreatedAt: base.Add(time.Duration(i) * time.Hour)}
		if err := repo.Create(ctx, h); err != nil {
			t.Fatalf("create history: %v", err)
		}
	}

	items, total, err := repo.List(ctx, userID, 2, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 3 || len(items) != 2 || items[0].FileName != "c.csv" {
		t.Fatalf("List = %+v (total %d)", items, total)
	}

	if _, err := repo.GetByID(ctx, uuid.New(), items[0].ID); err == nil {
		t.Fatalf("foreign user must not see the record")
	}
}

func TestSubscriptionRepository(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewGormSubscriptionRepository(db)
	userID := uuid.New()

	sub, err := repo.GetByUserID(ctx, userID)
	if err != nil || sub != nil || sub.Premium() {
		t.Fatalf("missing subscription: %+v, %v", sub, err)
	}

	if err := db.Create(&model.Subscription{UserID: userID, Status: "trialing"}).Error; err != nil {
		t.Fatalf("seed subscription: %v", err)
	}
	sub, err = repo.GetByUserID(ctx, userID)
	if err != nil || !sub.Premium() {
		t.Fatalf("trialing must be premium: %+v, %v", sub, err)
	}
}

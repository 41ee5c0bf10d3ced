package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Leganyst/agenda-platform/internal/agenda"
	agendav1 "github.com/Leganyst/agenda-platform/internal/api/agenda/v1"
	"github.com/Leganyst/agenda-platform/internal/model"
)

type fakeHolidays map[int][]agenda.Holiday

func (f fakeHolidays) National(_ context.Context, year int) []agenda.Holiday {
	return f[year]
}

type testEnv struct {
	svc *AgendaService
	db  *gorm.DB
}

func newTestEnv(t *testing.T, limits Limits, national fakeHolidays) *testEnv {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := model.AutoMigrate(db); err != nil {
		t.Fatalf("auto migrate: %v", err)
	}

	svc := NewAgendaService(db, NewGormRepositories(db), national, limits)
	svc.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }
	return &testEnv{svc: svc, db: db}
}

func (e *testEnv) premiumUser(t *testing.T) string {
	t.Helper()
	id := uuid.New()
	if err := e.db.Create(&model.Subscription{UserID: id, Status: "active"}).Error; err != nil {
		t.Fatalf("create subscription: %v", err)
	}
	return id.String()
}

func (e *testEnv) events(t *testing.T, userID string) []model.Event {
	t.Helper()
	var out []model.Event
	if err := e.db.Where("user_id = ?", uuid.MustParse(userID)).Order("event_date, client_name").Find(&out).Error; err != nil {
		t.Fatalf("load events: %v", err)
	}
	return out
}

func (e *testEnv) importCSV(t *testing.T, userID, file, content string, strategy agenda.Strategy) *agendav1.ImportResult {
	t.Helper()
	res, err := e.svc.ImportEvents(context.Background(), &agendav1.ImportEventsRequest{
		UserID:   userID,
		FileName: file,
		Content:  []byte(content),
		Strategy: string(strategy),
	})
	if err != nil {
		t.Fatalf("ImportEvents: %v", err)
	}
	return res
}

func mustCode(t *testing.T, err error, want codes.Code) {
	t.Helper()
	if got := status.Code(err); got != want {
		t.Fatalf("code = %s, want %s (err: %v)", got, want, err)
	}
}

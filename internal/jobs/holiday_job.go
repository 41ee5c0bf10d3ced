// Package jobs — фоновые задачи по расписанию.
package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/Leganyst/agenda-platform/internal/log"
)

// HolidaySyncer блокирует праздники во всех агендах с bloquear_feriados.
type HolidaySyncer interface {
	SyncAllHolidayBlocks(ctx context.Context) error
}

// HolidayJob периодически вызывает синхронизацию праздников.
// Запуски не перекрываются: если прошлый ещё идёт, очередной пропускается.
type HolidayJob struct {
	cron    *cron.Cron
	syncer  HolidaySyncer
	timeout time.Duration
}

func NewHolidayJob(schedule string, syncer HolidaySyncer, timeout time.Duration) (*HolidayJob, error) {
	logger := cronLogger{}
	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithLogger(logger),
		cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
	)

	j := &HolidayJob{cron: c, syncer: syncer, timeout: timeout}
	if _, err := c.AddFunc(schedule, func() { j.Run(context.Background()) }); err != nil {
		return nil, fmt.Errorf("holiday job schedule %q: %w", schedule, err)
	}
	return j, nil
}

// Run выполняет один проход синхронизации.
func (j *HolidayJob) Run(ctx context.Context) {
	if j.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, j.timeout)
		defer cancel()
	}

	start := time.Now()
	if err := j.syncer.SyncAllHolidayBlocks(ctx); err != nil {
		log.Error("holiday job failed", err)
		return
	}
	log.Info("holiday job finished", "took", time.Since(start))
}

func (j *HolidayJob) Start() {
	j.cron.Start()
	log.Info("holiday job started", "entries", len(j.cron.Entries()))
}

// Stop останавливает планировщик и ждёт текущий запуск.
func (j *HolidayJob) Stop(ctx context.Context) {
	select {
	case <-j.cron.Stop().Done():
	case <-ctx.Done():
		log.Warn("holiday job stop timed out")
	}
}

// cronLogger пишет события планировщика в наш логгер.
type cronLogger struct{}

func (cronLogger) Info(msg string, kv ...interface{}) {
	log.Debug("cron: "+msg, kv...)
}

func (cronLogger) Error(err error, msg string, kv ...interface{}) {
	log.Error("cron: "+msg, err, kv...)
}

package main

import (
	"context"
	"errors"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"google.golang.org/grpc"

	agendav1 "github.com/Leganyst/agenda-platform/internal/api/agenda/v1"
	"github.com/Leganyst/agenda-platform/internal/config"
	"github.com/Leganyst/agenda-platform/internal/db"
	"github.com/Leganyst/agenda-platform/internal/gateway"
	"github.com/Leganyst/agenda-platform/internal/holidays"
	"github.com/Leganyst/agenda-platform/internal/jobs"
	"github.com/Leganyst/agenda-platform/internal/log"
	"github.com/Leganyst/agenda-platform/internal/model"
	"github.com/Leganyst/agenda-platform/internal/service"
)

const (
	shutdownTimeout = 15 * time.Second
	holidayJobLimit = 10 * time.Minute
)

func main() {
	// 1. .env необязателен: в контейнере переменные приходят из окружения.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Warn("load .env", "err", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("load config", err)
	}
	log.SetLevel(log.ParseLevel(cfg.LogLevel))

	// 2. Подключаемся к БД через GORM и мигрируем модели.
	gormDB, err := db.NewGormDB(&cfg.DB)
	if err != nil {
		log.Fatal("init db", err)
	}
	if err := model.AutoMigrate(gormDB); err != nil {
		log.Fatal("auto migrate", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		log.Fatal("sql DB", err)
	}
	defer sqlDB.Close()

	// 3. Сервис агенды.
	holidayClient := holidays.NewClient(cfg.Holidays.APIURL, cfg.Holidays.Timeout, cfg.Holidays.CacheTTL)
	agendaSvc := service.NewAgendaService(
		gormDB,
		service.NewGormRepositories(gormDB),
		holidayClient,
		service.Limits{FreeEventsLimit: cfg.Plans.FreeEventsLimit},
	)

	// 4. gRPC-сервер.
	grpcServer := grpc.NewServer()
	agendav1.RegisterAgendaServiceServer(grpcServer, agendaSvc)

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		log.Fatal("listen grpc", err, "addr", cfg.GRPCAddr)
	}
	go func() {
		log.Info("agenda gRPC server listening", "addr", cfg.GRPCAddr)
		if err := grpcServer.Serve(lis); err != nil {
			log.Fatal("grpc serve", err)
		}
	}()

	// 5. HTTP-шлюз для веб-клиента.
	app := gateway.New(agendaSvc, cfg.JWTSecret)
	if cfg.HTTPAddr != "" {
		go func() {
			log.Info("agenda HTTP gateway listening", "addr", cfg.HTTPAddr)
			if err := app.Listen(cfg.HTTPAddr); err != nil {
				log.Fatal("http listen", err)
			}
		}()
	}

	// 6. Джоба блокировки праздников.
	holidayJob, err := jobs.NewHolidayJob(cfg.Holidays.SyncCron, agendaSvc, holidayJobLimit)
	if err != nil {
		log.Fatal("init holiday job", err)
	}
	holidayJob.Start()

	// 7. Грейсфул-шатдаун по сигналу.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	holidayJob.Stop(ctx)
	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Error("http shutdown", err)
	}
	grpcServer.GracefulStop()
}

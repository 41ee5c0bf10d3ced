// Package gateway — HTTP/JSON-шлюз для веб-клиента поверх AgendaServiceServer.
package gateway

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	agendav1 "github.com/Leganyst/agenda-platform/internal/api/agenda/v1"
	"github.com/Leganyst/agenda-platform/internal/log"
)

const (
	// Лимит тела запроса: файлы импорта приходят multipart-ом.
	bodyLimit      = 10 << 20
	requestTimeout = 30 * time.Second
)

type Gateway struct {
	svc    agendav1.AgendaServiceServer
	secret []byte
}

// New собирает fiber-приложение. Все маршруты /api/agenda требуют
// Bearer JWT (HS256), sub — UUID пользователя.
func New(svc agendav1.AgendaServiceServer, jwtSecret string) *fiber.App {
	g := &Gateway{svc: svc, secret: []byte(jwtSecret)}

	app := fiber.New(fiber.Config{
		AppName:               "agenda-gateway",
		DisableStartupMessage: true,
		BodyLimit:             bodyLimit,
		ErrorHandler:          errorHandler,
	})

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(requestLogger)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	api := app.Group("/api/agenda", g.auth)
	g.routes(api)
	return app
}

func requestLogger(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), requestTimeout)
	defer cancel()
	c.SetUserContext(ctx)

	start := time.Now()
	err := c.Next()

	code := c.Response().StatusCode()
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	log.Info("http request",
		"request_id", c.Locals(requestid.ConfigDefault.ContextKey),
		"method", c.Method(),
		"path", c.OriginalURL(),
		"status", code,
		"took", time.Since(start),
	)
	return err
}

type errorBody struct {
	Error string `json:"error"`
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	return c.Status(code).JSON(errorBody{Error: err.Error()})
}

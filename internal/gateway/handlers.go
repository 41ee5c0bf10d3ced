package gateway

import (
	"context"
	"io"

	"github.com/gofiber/fiber/v2"

	agendav1 "github.com/Leganyst/agenda-platform/internal/api/agenda/v1"
)

func (g *Gateway) routes(r fiber.Router) {
	r.Get("/eventos", g.listEvents)
	r.Post("/eventos", g.createEvent)
	r.Patch("/eventos/:id", g.updateEvent)
	r.Delete("/eventos/:id", g.deleteEvent)
	r.Delete("/eventos", g.clearEvents)

	r.Get("/bloqueios", g.listBlockedDates)
	r.Post("/bloqueios", g.blockDate)
	r.Delete("/bloqueios/:id", g.unblockDate)
	r.Delete("/bloqueios", g.unblockDate)

	r.Get("/periodos", g.listBlockedPeriods)
	r.Post("/periodos", g.addBlockedPeriod)
	r.Delete("/periodos/:id", g.deleteBlockedPeriod)

	r.Get("/feriados", g.listHolidays)
	r.Post("/feriados", g.addHoliday)
	r.Delete("/feriados/:id", g.deleteHoliday)

	r.Get("/config", g.getConfig)
	r.Put("/config", g.updateConfig)
	r.Post("/config/alternar", g.toggleRule)

	r.Get("/calendario/:ano/:mes", g.getMonth)
	r.Get("/disponibilidade/:data", g.checkAvailability)

	r.Post("/importar", g.importEvents)
	r.Get("/importacoes", g.listImports)
	r.Delete("/importacoes/:id", g.rollbackImport)

	r.Get("/plano", g.planLimits)
	r.Get("/feed.ics", g.exportFeed)
}

// respond вызывает метод сервиса и пишет JSON-ответ.
func respond[Req, Resp any](c *fiber.Ctx, okStatus int, fn func(context.Context, *Req) (*Resp, error), req *Req) error {
	resp, err := fn(c.UserContext(), req)
	if err != nil {
		return toHTTPError(err)
	}
	return c.Status(okStatus).JSON(resp)
}

func parseBody(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body: "+err.Error())
	}
	return nil
}

// ---- события ----

func (g *Gateway) listEvents(c *fiber.Ctx) error {
	if date := c.Query("data"); date != "" {
		return respond(c, fiber.StatusOK, g.svc.ListEventsByDate, &agendav1.ListEventsByDateRequest{
			UserID: userID(c),
			Date:   date,
		})
	}
	return respond(c, fiber.StatusOK, g.svc.ListEvents, &agendav1.ListEventsRequest{
		UserID:   userID(c),
		Year:     c.QueryInt("ano"),
		Month:    c.QueryInt("mes"),
		Page:     c.QueryInt("page"),
		PageSize: c.QueryInt("page_size"),
	})
}

func (g *Gateway) createEvent(c *fiber.Ctx) error {
	var req agendav1.CreateEventRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	req.UserID = userID(c)
	return respond(c, fiber.StatusCreated, g.svc.CreateEvent, &req)
}

func (g *Gateway) updateEvent(c *fiber.Ctx) error {
	var req agendav1.UpdateEventRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	req.UserID = userID(c)
	req.ID = c.Params("id")
	return respond(c, fiber.StatusOK, g.svc.UpdateEvent, &req)
}

func (g *Gateway) deleteEvent(c *fiber.Ctx) error {
	return respond(c, fiber.StatusOK, g.svc.DeleteEvent, &agendav1.DeleteRequest{UserID: userID(c), ID: c.Params("id")})
}

func (g *Gateway) clearEvents(c *fiber.Ctx) error {
	return respond(c, fiber.StatusOK, g.svc.ClearEvents, &agendav1.ClearEventsRequest{
		UserID:        userID(c),
		IncludeManual: c.QueryBool("incluir_manuais"),
	})
}

// ---- блокировки ----

func (g *Gateway) listBlockedDates(c *fiber.Ctx) error {
	return respond(c, fiber.StatusOK, g.svc.ListBlockedDates, &agendav1.UserRequest{UserID: userID(c)})
}

func (g *Gateway) blockDate(c *fiber.Ctx) error {
	var req agendav1.BlockDateRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	req.UserID = userID(c)
	return respond(c, fiber.StatusCreated, g.svc.BlockDate, &req)
}

// unblockDate: DELETE /bloqueios/:id или DELETE /bloqueios?data=YYYY-MM-DD.
func (g *Gateway) unblockDate(c *fiber.Ctx) error {
	return respond(c, fiber.StatusOK, g.svc.UnblockDate, &agendav1.UnblockDateRequest{
		UserID: userID(c),
		ID:     c.Params("id"),
		Date:   c.Query("data"),
	})
}

func (g *Gateway) listBlockedPeriods(c *fiber.Ctx) error {
	return respond(c, fiber.StatusOK, g.svc.ListBlockedPeriods, &agendav1.UserRequest{UserID: userID(c)})
}

func (g *Gateway) addBlockedPeriod(c *fiber.Ctx) error {
	var req agendav1.AddBlockedPeriodRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	req.UserID = userID(c)
	return respond(c, fiber.StatusCreated, g.svc.AddBlockedPeriod, &req)
}

func (g *Gateway) deleteBlockedPeriod(c *fiber.Ctx) error {
	return respond(c, fiber.StatusOK, g.svc.DeleteBlockedPeriod, &agendav1.DeleteRequest{UserID: userID(c), ID: c.Params("id")})
}

// ---- праздники ----

func (g *Gateway) listHolidays(c *fiber.Ctx) error {
	return respond(c, fiber.StatusOK, g.svc.ListHolidays, &agendav1.ListHolidaysRequest{
		UserID: userID(c),
		Year:   c.QueryInt("ano"),
	})
}

func (g *Gateway) addHoliday(c *fiber.Ctx) error {
	var req agendav1.AddHolidayRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	req.UserID = userID(c)
	return respond(c, fiber.StatusCreated, g.svc.AddHoliday, &req)
}

func (g *Gateway) deleteHoliday(c *fiber.Ctx) error {
	return respond(c, fiber.StatusOK, g.svc.DeleteHoliday, &agendav1.DeleteRequest{UserID: userID(c), ID: c.Params("id")})
}

// ---- настройки ----

func (g *Gateway) getConfig(c *fiber.Ctx) error {
	return respond(c, fiber.StatusOK, g.svc.GetAgendaConfig, &agendav1.UserRequest{UserID: userID(c)})
}

func (g *Gateway) updateConfig(c *fiber.Ctx) error {
	var req agendav1.UpdateAgendaConfigRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	req.UserID = userID(c)
	return respond(c, fiber.StatusOK, g.svc.UpdateAgendaConfig, &req)
}

func (g *Gateway) toggleRule(c *fiber.Ctx) error {
	var req agendav1.ToggleAgendaRuleRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	req.UserID = userID(c)
	return respond(c, fiber.StatusOK, g.svc.ToggleAgendaRule, &req)
}

// ---- календарь ----

func (g *Gateway) getMonth(c *fiber.Ctx) error {
	year, err := c.ParamsInt("ano")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid ano")
	}
	month, err := c.ParamsInt("mes")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid mes")
	}
	return respond(c, fiber.StatusOK, g.svc.GetMonth, &agendav1.GetMonthRequest{UserID: userID(c), Year: year, Month: month})
}

func (g *Gateway) checkAvailability(c *fiber.Ctx) error {
	return respond(c, fiber.StatusOK, g.svc.CheckAvailability, &agendav1.CheckAvailabilityRequest{
		UserID: userID(c),
		Date:   c.Params("data"),
	})
}

// ---- импорт ----

// importEvents принимает multipart: файл в поле "arquivo", стратегия в "estrategia".
func (g *Gateway) importEvents(c *fiber.Ctx) error {
	fh, err := c.FormFile("arquivo")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "arquivo is required")
	}
	f, err := fh.Open()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "cannot read arquivo")
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "cannot read arquivo")
	}

	return respond(c, fiber.StatusOK, g.svc.ImportEvents, &agendav1.ImportEventsRequest{
		UserID:   userID(c),
		FileName: fh.Filename,
		Content:  content,
		Strategy: c.FormValue("estrategia"),
	})
}

func (g *Gateway) listImports(c *fiber.Ctx) error {
	return respond(c, fiber.StatusOK, g.svc.ListImportHistory, &agendav1.ListImportHistoryRequest{
		UserID:   userID(c),
		Page:     c.QueryInt("page"),
		PageSize: c.QueryInt("page_size"),
	})
}

func (g *Gateway) rollbackImport(c *fiber.Ctx) error {
	return respond(c, fiber.StatusOK, g.svc.RollbackImport, &agendav1.RollbackImportRequest{
		UserID:   userID(c),
		ImportID: c.Params("id"),
	})
}

// ---- план и экспорт ----

func (g *Gateway) planLimits(c *fiber.Ctx) error {
	return respond(c, fiber.StatusOK, g.svc.GetPlanLimits, &agendav1.UserRequest{UserID: userID(c)})
}

func (g *Gateway) exportFeed(c *fiber.Ctx) error {
	feed, err := g.svc.ExportFeed(c.UserContext(), &agendav1.UserRequest{UserID: userID(c)})
	if err != nil {
		return toHTTPError(err)
	}
	c.Attachment(feed.FileName)
	c.Set(fiber.HeaderContentType, feed.ContentType)
	return c.SendString(feed.Content)
}

package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/likeclem30/taxipassbackend/internal/services"
)

type StatHandler struct {
	svc services.StatService
}

func NewStatHandler(svc services.StatService) *StatHandler {
	return &StatHandler{svc: svc}
}

func (h *StatHandler) SetupRoutes(app *fiber.App, authmw fiber.Handler) {
	stat := app.Group("/api/stat", authmw)

	stat.Get("/sumquery", h.Sum)
	stat.Get("/datequery", h.DateQuery)
	stat.Get("/monthquery", h.MonthQuery)
}

func (h *StatHandler) Sum(ctx *fiber.Ctx) error {
	count, err := h.svc.TotalCount()
	if err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(count)
}

func (h *StatHandler) DateQuery(ctx *fiber.Ctx) error {
	result, err := h.svc.DailySignups(ctx.Query("startdate"), ctx.Query("enddate"))
	if err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(result)
}

func (h *StatHandler) MonthQuery(ctx *fiber.Ctx) error {
	result, err := h.svc.MonthlySignups(ctx.Query("year"))
	if err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(result)
}

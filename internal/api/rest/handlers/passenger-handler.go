package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/likeclem30/taxipassbackend/internal/domain"
	"github.com/likeclem30/taxipassbackend/internal/dto"
	"github.com/likeclem30/taxipassbackend/internal/helper"
	"github.com/likeclem30/taxipassbackend/internal/helper/utils"
	"github.com/likeclem30/taxipassbackend/internal/repository"
	"github.com/likeclem30/taxipassbackend/internal/services"
)

type PassengerHandler struct {
	svc  services.PassengerService
	auth helper.Auth
}

func NewPassengerHandler(svc services.PassengerService, auth helper.Auth) *PassengerHandler {
	return &PassengerHandler{svc: svc, auth: auth}
}

func (h *PassengerHandler) SetupRoutes(app *fiber.App, authmw fiber.Handler) {
	api := app.Group("/api")

	// Deliberately unauthenticated: consumed by the trip service before a
	// token exists.
	api.Get("/check/dob", h.CheckDob)

	api.Get("/get/auth/:authId", authmw, h.GetByAuthID)

	me := api.Group("/me", authmw)
	me.Get("/passenger", h.Me)
	me.Post("/passenger", h.Create)

	api.Get("/passenger", authmw, h.List)
	api.Get("/passenger/:passengerId", authmw, h.GetByID)
	api.Put("/passenger/:passengerId", authmw, h.Update)
	api.Delete("/passenger/:passengerId", authmw, h.Delete)
}

func (h *PassengerHandler) GetByAuthID(ctx *fiber.Ctx) error {
	authID, err := ctx.ParamsInt("authId")
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid auth id")
	}

	p, err := h.svc.GetByAuthID(int64(authID))
	if err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(p)
}

func (h *PassengerHandler) Me(ctx *fiber.Ctx) error {
	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "unauthorized")
	}

	p, err := h.svc.GetSelf(claims)
	if err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(p)
}

func (h *PassengerHandler) Create(ctx *fiber.Ctx) error {
	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "unauthorized")
	}

	var requestBody dto.CreatePassengerRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	if requestBody.First == "" || requestBody.Last == "" || requestBody.Email == "" || requestBody.Phone == "" {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	p, err := h.svc.CreateSelf(claims, requestBody, bearer(ctx))
	if err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(p)
}

func (h *PassengerHandler) List(ctx *fiber.Ctx) error {
	filter := repository.ListFilter{
		Search:      ctx.Query("search"),
		Status:      ctx.Query("status"),
		EmailStatus: ctx.Query("emailStatus"),
		PhoneStatus: ctx.Query("phoneStatus"),
	}

	passengers, err := h.svc.List(filter)
	if err != nil {
		return errorResponse(ctx, err)
	}
	if passengers == nil {
		passengers = []domain.Passenger{}
	}
	return ctx.Status(fiber.StatusOK).JSON(passengers)
}

func (h *PassengerHandler) GetByID(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("passengerId")
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid passenger id")
	}

	p, err := h.svc.GetByID(int64(id))
	if err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(p)
}

func (h *PassengerHandler) Update(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("passengerId")
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid passenger id")
	}

	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "unauthorized")
	}

	var requestBody dto.UpdatePassengerRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	p, err := h.svc.Update(int64(id), claims, requestBody, bearer(ctx))
	if err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(p)
}

func (h *PassengerHandler) Delete(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("passengerId")
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid passenger id")
	}

	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "unauthorized")
	}

	if err := h.svc.Delete(int64(id), claims); err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

func (h *PassengerHandler) CheckDob(ctx *fiber.Ctx) error {
	userID := ctx.QueryInt("userId", -1)
	dob := ctx.Query("dob")
	if userID < 0 || dob == "" {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "userId and dob are required")
	}

	p, err := h.svc.CheckDateOfBirth(int64(userID), dob)
	if err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(p)
}

func bearer(ctx *fiber.Ctx) string {
	if v, ok := ctx.Locals("authorization").(string); ok {
		return v
	}
	return ""
}

// errorResponse maps domain error kinds to status codes. Anything unknown is
// an internal fault and leaks no detail.
func errorResponse(ctx *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return utils.ResponseError(ctx, fiber.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrConflict):
		return utils.ResponseError(ctx, fiber.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, domain.ErrForbidden):
		return utils.ResponseError(ctx, fiber.StatusForbidden, "forbidden")
	case errors.Is(err, domain.ErrUnauthorized):
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrBadInput):
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	default:
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, "internal error")
	}
}

package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/likeclem30/taxipassbackend/internal/helper"
	"github.com/likeclem30/taxipassbackend/internal/helper/utils"
)

// AuthMiddleware verifies the Authorization header and stores the claim set
// in Locals for the handlers. The raw header is kept too; notification events
// forward it to the relay endpoints.
func AuthMiddleware(auth helper.Auth) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		tokenStr := strings.TrimSpace(ctx.Get("Authorization"))

		claims, err := auth.VerifyToken(tokenStr)
		if err != nil {
			return utils.ResponseError(ctx, fiber.StatusUnauthorized, "invalid or missing token")
		}

		ctx.Locals("claims", claims)
		ctx.Locals("authorization", tokenStr)
		return ctx.Next()
	}
}

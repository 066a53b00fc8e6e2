package httpapi

import (
	"github.com/gofiber/fiber/v2"

	"github.com/yourorg/todokeeper/internal/server/services"
)

// errorBody is the error half of the response envelope.
type errorBody struct {
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// envelope is the uniform shape of every response the API produces. Exactly
// one of Data and Error is set, except for auth failures which carry a
// redirect hint in Data alongside the error.
type envelope struct {
	Success    bool                 `json:"success"`
	Data       any                  `json:"data,omitempty"`
	Error      *errorBody           `json:"error,omitempty"`
	Pagination *services.Pagination `json:"pagination,omitempty"`
}

func respondData(c *fiber.Ctx, status int, data any) error {
	return c.Status(status).JSON(envelope{Success: true, Data: data})
}

func respondPage(c *fiber.Ctx, data any, p *services.Pagination) error {
	return c.Status(fiber.StatusOK).JSON(envelope{Success: true, Data: data, Pagination: p})
}

func respondError(c *fiber.Ctx, status int, message string, details any) error {
	return c.Status(status).JSON(envelope{
		Success: false,
		Error:   &errorBody{Message: message, Details: details},
	})
}

// respondAuthError is the 401 shape: the error plus a redirect hint so
// browser clients know where to send the user.
func respondAuthError(c *fiber.Ctx, message string, details any) error {
	return c.Status(fiber.StatusUnauthorized).JSON(envelope{
		Success: false,
		Data:    fiber.Map{"redirect": "/login"},
		Error:   &errorBody{Message: message, Details: details},
	})
}

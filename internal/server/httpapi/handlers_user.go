package httpapi

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/yourorg/todokeeper/internal/common"
	"github.com/yourorg/todokeeper/internal/server/validation"
)

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) handleRegister(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body", nil)
	}

	if errs := validation.Registration(req.Username, req.Email, req.Password); len(errs) > 0 {
		return respondError(c, fiber.StatusBadRequest, "Validation failed", errs)
	}

	user, err := s.users.Register(c.UserContext(), req.Username, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return respondError(c, fiber.StatusBadRequest, "Username or email already exists", nil)
		}
		return s.serverError(c, "Error registering user", err)
	}

	s.logger.Info(c.UserContext(), "user registered", "username", user.Username)
	return respondData(c, fiber.StatusCreated, user)
}

func (s *Server) handleLogin(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body", nil)
	}

	if errs := validation.Login(req.Email, req.Password); len(errs) > 0 {
		return respondError(c, fiber.StatusBadRequest, "Validation failed", errs)
	}

	token, user, err := s.users.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorUnknownEmail):
			return respondError(c, fiber.StatusUnauthorized, "Invalid email", nil)
		case errors.Is(err, common.ErrorWrongPassword):
			return respondError(c, fiber.StatusUnauthorized, "Wrong password", nil)
		}
		return s.serverError(c, "Error logging in", err)
	}

	s.setTokenCookie(c, token)

	s.logger.Info(c.UserContext(), "user logged in", "username", user.Username)
	return respondData(c, fiber.StatusOK, fiber.Map{
		"token": token,
		"user":  user,
	})
}

// handleLogout clears the token cookie. It is deliberately unauthenticated
// and idempotent; logging out twice is not an error.
func (s *Server) handleLogout(c *fiber.Ctx) error {
	s.clearTokenCookie(c)

	return respondData(c, fiber.StatusOK, fiber.Map{
		"message":  "Logged out successfully",
		"redirect": "/login",
	})
}

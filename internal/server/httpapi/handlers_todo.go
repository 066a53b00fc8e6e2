package httpapi

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/yourorg/todokeeper/internal/common"
	"github.com/yourorg/todokeeper/internal/server/services"
	"github.com/yourorg/todokeeper/internal/server/validation"
)

type createTodoRequest struct {
	Title  string  `json:"title"`
	Status *string `json:"status"`
}

type updateTodoRequest struct {
	Title  *string `json:"title"`
	Status *string `json:"status"`
}

// queryInt reads an integer query parameter, falling back to def when the
// value is absent or not a number. Range clamping happens in the service.
func queryInt(c *fiber.Ctx, key string, def int) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return def
	}
	return v
}

// todoID parses the :id path segment. A non-numeric id is treated the same
// as an id that matches no row, so the route answers a uniform 404.
func todoID(c *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("id"), 10, 64)
}

func (s *Server) handleListTodos(c *fiber.Ctx) error {
	ident, ok := identityFromCtx(c)
	if !ok {
		return respondError(c, fiber.StatusUnauthorized, "Unauthorized", nil)
	}

	page := queryInt(c, "page", services.DefaultPage)
	pageSize := queryInt(c, "pageSize", services.DefaultPageSize)

	todos, pagination, err := s.todos.List(c.UserContext(), ident.UserID, page, pageSize)
	if err != nil {
		return s.serverError(c, "Error fetching todos", err)
	}

	return respondPage(c, todos, pagination)
}

func (s *Server) handleGetTodo(c *fiber.Ctx) error {
	ident, ok := identityFromCtx(c)
	if !ok {
		return respondError(c, fiber.StatusUnauthorized, "Unauthorized", nil)
	}

	id, err := todoID(c)
	if err != nil {
		return respondError(c, fiber.StatusNotFound, "Todo not found", nil)
	}

	todo, err := s.todos.Get(c.UserContext(), ident.UserID, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return respondError(c, fiber.StatusNotFound, "Todo not found", nil)
		}
		return s.serverError(c, "Error fetching todo", err)
	}

	return respondData(c, fiber.StatusOK, todo)
}

func (s *Server) handleCreateTodo(c *fiber.Ctx) error {
	ident, ok := identityFromCtx(c)
	if !ok {
		return respondError(c, fiber.StatusUnauthorized, "Unauthorized", nil)
	}

	var req createTodoRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body", nil)
	}

	if errs := validation.TodoCreate(req.Title, req.Status); len(errs) > 0 {
		return respondError(c, fiber.StatusBadRequest, "Validation failed", errs)
	}

	todo, err := s.todos.Create(c.UserContext(), ident.UserID, req.Title, req.Status)
	if err != nil {
		return s.serverError(c, "Error creating todo", err)
	}

	return respondData(c, fiber.StatusCreated, todo)
}

func (s *Server) handleUpdateTodo(c *fiber.Ctx) error {
	ident, ok := identityFromCtx(c)
	if !ok {
		return respondError(c, fiber.StatusUnauthorized, "Unauthorized", nil)
	}

	id, err := todoID(c)
	if err != nil {
		return respondError(c, fiber.StatusNotFound, "Todo not found", nil)
	}

	var req updateTodoRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body", nil)
	}

	if errs := validation.TodoUpdate(req.Title, req.Status); len(errs) > 0 {
		return respondError(c, fiber.StatusBadRequest, "Validation failed", errs)
	}

	todo, err := s.todos.Update(c.UserContext(), ident.UserID, id, req.Title, req.Status)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return respondError(c, fiber.StatusNotFound, "Todo not found", nil)
		}
		return s.serverError(c, "Error updating todo", err)
	}

	return respondData(c, fiber.StatusOK, todo)
}

func (s *Server) handleDeleteTodo(c *fiber.Ctx) error {
	ident, ok := identityFromCtx(c)
	if !ok {
		return respondError(c, fiber.StatusUnauthorized, "Unauthorized", nil)
	}

	id, err := todoID(c)
	if err != nil {
		return respondError(c, fiber.StatusNotFound, "Todo not found", nil)
	}

	if err := s.todos.Delete(c.UserContext(), ident.UserID, id); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return respondError(c, fiber.StatusNotFound, "Todo not found", nil)
		}
		return s.serverError(c, "Error deleting todo", err)
	}

	return respondData(c, fiber.StatusOK, fiber.Map{
		"message": "Todo deleted successfully",
	})
}

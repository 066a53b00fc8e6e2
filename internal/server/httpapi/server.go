// Package httpapi exposes the application over HTTP: auth and todo routes,
// the cookie-based token middleware and the uniform response envelope.
package httpapi

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"github.com/yourorg/todokeeper/internal/logging"
	"github.com/yourorg/todokeeper/internal/server/config"
	"github.com/yourorg/todokeeper/internal/server/models"
	"github.com/yourorg/todokeeper/internal/server/services"
)

// UserService is the slice of the user service the HTTP layer needs.
type UserService interface {
	Register(ctx context.Context, username, email, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (string, *models.User, error)
}

// TodoService is the slice of the todo service the HTTP layer needs.
type TodoService interface {
	List(ctx context.Context, userID int64, page, pageSize int) ([]*models.Todo, *services.Pagination, error)
	Get(ctx context.Context, userID, id int64) (*models.Todo, error)
	Create(ctx context.Context, userID int64, title string, status *string) (*models.Todo, error)
	Update(ctx context.Context, userID, id int64, title, status *string) (*models.Todo, error)
	Delete(ctx context.Context, userID, id int64) error
}

type Server struct {
	cfg    *config.Config
	logger logging.Logger
	users  UserService
	todos  TodoService
}

func NewServer(cfg *config.Config, l logging.Logger, us UserService, ts TodoService) *Server {
	return &Server{
		cfg:    cfg,
		logger: l.With("module", "http_server"),
		users:  us,
		todos:  ts,
	}
}

// newApp assembles the fiber application: request ids, access logging, CORS
// restricted to the configured frontend origin, and the route table.
func (s *Server) newApp() *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          s.errorHandler,
	})

	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(fiberlogger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     s.cfg.FrontendURL,
		AllowCredentials: true,
	}))

	authGroup := app.Group("/api/auth")
	authGroup.Post("/register", s.handleRegister)
	authGroup.Post("/login", s.handleLogin)
	authGroup.Post("/logout", s.handleLogout)

	todoGroup := app.Group("/api/todos", s.requireAuth)
	todoGroup.Get("/", s.handleListTodos)
	todoGroup.Post("/", s.handleCreateTodo)
	todoGroup.Get("/:id", s.handleGetTodo)
	todoGroup.Put("/:id", s.handleUpdateTodo)
	todoGroup.Delete("/:id", s.handleDeleteTodo)

	return app
}

// errorHandler catches errors that escape the handlers (routing errors,
// body-limit violations, panics recovered by fiber). Fiber's own errors keep
// their status code; anything else becomes an enveloped 500.
func (s *Server) errorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) && fe.Code < fiber.StatusInternalServerError {
		return respondError(c, fe.Code, fe.Message, nil)
	}

	s.logger.Error(c.UserContext(), "unhandled error", "error", err.Error())
	return respondError(c, fiber.StatusInternalServerError, "Internal server error", s.errDetails(err))
}

// errDetails exposes the underlying error text outside production only.
func (s *Server) errDetails(err error) any {
	if s.cfg.IsProduction() {
		return nil
	}
	return err.Error()
}

// serverError logs the cause and answers with the given public message.
func (s *Server) serverError(c *fiber.Ctx, message string, err error) error {
	s.logger.Error(c.UserContext(), message, "error", err.Error())
	return respondError(c, fiber.StatusInternalServerError, message, s.errDetails(err))
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	app := s.newApp()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		if err := app.Shutdown(); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.cfg.Addr)

	if err := app.Listen(s.cfg.Addr); err != nil {
		return err
	}

	return nil
}

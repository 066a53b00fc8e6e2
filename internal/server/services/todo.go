package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/yourorg/todokeeper/internal/server/models"
	"github.com/yourorg/todokeeper/internal/server/repositories/repomanager"
)

// Pagination defaults applied when query values are absent or invalid.
const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

// Pagination is the metadata block returned alongside a page of todos.
type Pagination struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	PageSize    int   `json:"pageSize"`
	TotalItems  int64 `json:"totalItems"`
}

// TodoService provides owner-scoped CRUD over todo items. Every operation
// takes the authenticated user's id; handing it a foreign todo id behaves
// exactly like a missing one.
type TodoService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewTodoService constructs a TodoService bound to the given repositories.
func NewTodoService(db *sql.DB, m repomanager.RepositoryManager) *TodoService {
	return &TodoService{db: db, repomanager: m}
}

// List returns one page of the user's todos, newest first, plus pagination
// metadata. Page and pageSize fall back to 1 and 10 when below 1.
func (s *TodoService) List(ctx context.Context, userID int64, page, pageSize int) ([]*models.Todo, *Pagination, error) {
	if page < 1 {
		page = DefaultPage
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	repo := s.repomanager.Todos(s.db)

	totalItems, err := repo.CountByOwner(ctx, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("error counting todos: %w", err)
	}

	items, err := repo.ListByOwner(ctx, userID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, nil, fmt.Errorf("error listing todos: %w", err)
	}

	totalPages := int((totalItems + int64(pageSize) - 1) / int64(pageSize))
	pagination := &Pagination{
		CurrentPage: page,
		TotalPages:  totalPages,
		PageSize:    pageSize,
		TotalItems:  totalItems,
	}

	return items, pagination, nil
}

// Get fetches a single todo scoped to its owner. Missing and foreign rows
// both surface as common.ErrorNotFound.
func (s *TodoService) Get(ctx context.Context, userID, id int64) (*models.Todo, error) {
	return s.repomanager.Todos(s.db).GetByIDAndOwner(ctx, id, userID)
}

// Create persists a new todo owned by userID. Any owner value in the input is
// ignored; the identity from the token wins. Status defaults to pending.
func (s *TodoService) Create(ctx context.Context, userID int64, title string, status *string) (*models.Todo, error) {
	st := models.StatusPending
	if status != nil {
		st = models.TodoStatus(*status)
	}

	todo := &models.Todo{
		Title:  strings.TrimSpace(title),
		Status: st,
		UserID: userID,
	}

	todo, err := s.repomanager.Todos(s.db).Create(ctx, todo)
	if err != nil {
		return nil, fmt.Errorf("error creating todo: %w", err)
	}

	return todo, nil
}

// Update fetches the todo scoped to its owner, merges only the provided
// fields and persists the result.
func (s *TodoService) Update(ctx context.Context, userID, id int64, title, status *string) (*models.Todo, error) {
	repo := s.repomanager.Todos(s.db)

	todo, err := repo.GetByIDAndOwner(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if title != nil {
		todo.Title = strings.TrimSpace(*title)
	}
	if status != nil {
		todo.Status = models.TodoStatus(*status)
	}

	todo, err = repo.Update(ctx, todo)
	if err != nil {
		return nil, err
	}

	return todo, nil
}

// Delete removes the todo scoped to its owner.
func (s *TodoService) Delete(ctx context.Context, userID, id int64) error {
	return s.repomanager.Todos(s.db).Delete(ctx, id, userID)
}

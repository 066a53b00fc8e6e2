package todos

import (
	"context"

	"github.com/yourorg/todokeeper/internal/server/models"
)

// Repository is owner-scoped by construction: every read and mutation is
// additionally filtered by the requesting user's id, so cross-user access is
// impossible at the data layer.
type Repository interface {
	Create(ctx context.Context, todo *models.Todo) (*models.Todo, error)
	GetByIDAndOwner(ctx context.Context, id, userID int64) (*models.Todo, error)
	ListByOwner(ctx context.Context, userID int64, limit, offset int) ([]*models.Todo, error)
	CountByOwner(ctx context.Context, userID int64) (int64, error)
	Update(ctx context.Context, todo *models.Todo) (*models.Todo, error)
	Delete(ctx context.Context, id, userID int64) error
}

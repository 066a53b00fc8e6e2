package todos

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/yourorg/todokeeper/internal/common"
	"github.com/yourorg/todokeeper/internal/dbx"
	"github.com/yourorg/todokeeper/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, todo *models.Todo) (*models.Todo, error) {

	query :=
		`INSERT INTO todos (title, status, user_id)
         VALUES ($1, $2, $3)
		 RETURNING todo_id, created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		todo.Title, todo.Status, todo.UserID).Scan(&todo.ID, &todo.CreatedAt, &todo.UpdatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return todo, nil
}

func (r *PostgresRepository) GetByIDAndOwner(ctx context.Context, id, userID int64) (*models.Todo, error) {
	query :=
		`SELECT todo_id, title, status, user_id, created_at, updated_at FROM todos
		 WHERE todo_id = $1 AND user_id = $2
		 `

	todo := &models.Todo{}
	err := r.db.QueryRowContext(ctx, query, id, userID).
		Scan(&todo.ID, &todo.Title, &todo.Status, &todo.UserID, &todo.CreatedAt, &todo.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return todo, nil
}

func (r *PostgresRepository) ListByOwner(ctx context.Context, userID int64, limit, offset int) ([]*models.Todo, error) {
	query :=
		`SELECT todo_id, title, status, user_id, created_at, updated_at FROM todos
		 WHERE user_id = $1
		 ORDER BY created_at DESC
		 LIMIT $2 OFFSET $3
		 `

	rows, err := r.db.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Todo, 0)
	for rows.Next() {
		todo := &models.Todo{}
		if err := rows.Scan(&todo.ID, &todo.Title, &todo.Status, &todo.UserID, &todo.CreatedAt, &todo.UpdatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, todo)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) CountByOwner(ctx context.Context, userID int64) (int64, error) {
	query :=
		`SELECT COUNT(*) FROM todos
		 WHERE user_id = $1
		 `

	var count int64
	if err := r.db.QueryRowContext(ctx, query, userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	return count, nil
}

func (r *PostgresRepository) Update(ctx context.Context, todo *models.Todo) (*models.Todo, error) {
	query :=
		`UPDATE todos SET title = $1, status = $2, updated_at = now()
		 WHERE todo_id = $3 AND user_id = $4
		 RETURNING updated_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		todo.Title, todo.Status, todo.ID, todo.UserID).Scan(&todo.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return todo, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id, userID int64) error {
	query :=
		`DELETE FROM todos
		 WHERE todo_id = $1 AND user_id = $2
		 `

	res, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}

	return nil
}

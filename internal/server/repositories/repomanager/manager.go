package repomanager

import (
	"context"
	"database/sql"

	"github.com/yourorg/todokeeper/internal/dbx"
	"github.com/yourorg/todokeeper/internal/server/repositories/todos"
	"github.com/yourorg/todokeeper/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Todos(db dbx.DBTX) todos.Repository
}

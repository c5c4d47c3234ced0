package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/permalist/internal/dbx"
	"github.com/dmitrijs2005/permalist/internal/server/repositories/grocery"
	"github.com/dmitrijs2005/permalist/internal/server/repositories/tasks"
	"github.com/dmitrijs2005/permalist/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to a DB handle (or transaction)
// and exposes a schema migration hook.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Tasks(db dbx.DBTX) tasks.Repository
	Grocery(db dbx.DBTX) grocery.Repository
}

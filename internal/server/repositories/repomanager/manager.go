package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/weatherhub/internal/dbx"
	"github.com/dmitrijs2005/weatherhub/internal/server/repositories/history"
	"github.com/dmitrijs2005/weatherhub/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	History(db dbx.DBTX) history.Repository
}

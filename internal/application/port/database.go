package port

import (
	"context"
	"database/sql"
)

// DatabaseProvider hands out the layout database connection. Implementations
// may open it on first use so commands that never touch stored layouts do
// not pay for migrations.
type DatabaseProvider interface {
	DB(ctx context.Context) (*sql.DB, error)
	Close() error
	IsInitialized() bool
}

package pg

import (
	"context"
	"database/sql"
	"time"

	"github.com/itchan-dev/forum/shared/config"
	"github.com/itchan-dev/forum/shared/logger"
	sharedpg "github.com/itchan-dev/forum/shared/storage/pg"
)

type Storage struct {
	db *sql.DB
}

func New(ctx context.Context, cfg *config.Config) (*Storage, error) {
	logger.Log.Info("connecting to database", "host", cfg.Private.Pg.Host, "dbname", cfg.Private.Pg.Dbname)
	db, err := sharedpg.Connect(ctx, cfg, sharedpg.DefaultConnectionConfig())
	if err != nil {
		return nil, err
	}
	logger.Log.Info("successfully connected to database")
	return &Storage{db: db}, nil
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Storage) Cleanup() error {
	return s.db.Close()
}

// now is the created_at stamp. Postgres keeps microseconds, so round here
// to return the same value that a later read gives back.
func now() time.Time {
	return time.Now().UTC().Round(time.Microsecond)
}

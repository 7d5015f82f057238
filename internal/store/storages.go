package store

import (
	"context"
	"fmt"

	"github.com/mlezhnev/habitsync/internal/config"
	"github.com/mlezhnev/habitsync/internal/logger"
)

// ClientStorages groups the client-side storage layer into a single value
// that can be passed around the service layer.
type ClientStorages struct {
	// Local is the SQLite-backed key/value store holding all domain
	// collections and settings on this device.
	Local LocalStore
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path in cfg.DB.DSN, creating
//     the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs a [ClientStorages] wired to a fresh [LocalStore].
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewClientStorages(cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		Local: NewLocalStore(NewKVRepository(db, logger), logger),
	}, nil
}

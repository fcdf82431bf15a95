package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-summary-news/internal/config"
	"github.com/MKhiriev/go-summary-news/internal/logger"
)

// Storages groups the local persistence of the client into a single value
// that is handed to the service layer.
type Storages struct {
	// ArticleRepository is the per-user article cache.
	ArticleRepository ArticleRepository
	// UserRepository holds local accounts.
	UserRepository UserRepository
	// Changes announces writes to article streams.
	Changes ChangeNotifier
	// Preferences holds the session and settings.
	Preferences PreferenceStore

	db   *DB
	feed *ChangeFeed
}

// NewStorages initialises the storage layer:
//  1. Opens the SQLite database at cfg.DB.DSN, creating the file if needed.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Starts the in-process change feed.
//  4. Loads the preference file at cfg.Preferences.Path.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	prefs, err := NewFilePreferenceStore(cfg.Preferences.Path, logger)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("preference store error: %w", err)
	}

	feed := NewChangeFeed(logger)

	return &Storages{
		ArticleRepository: NewArticleRepository(db, feed, logger),
		UserRepository:    NewUserRepository(db, feed, logger),
		Changes:           feed,
		Preferences:       prefs,
		db:                db,
		feed:              feed,
	}, nil
}

// Close stops the change feed and closes the database.
func (s *Storages) Close() error {
	var errs []error
	if s.feed != nil {
		errs = append(errs, s.feed.Close())
	}
	if s.db != nil {
		errs = append(errs, s.db.Close())
	}
	return errors.Join(errs...)
}

package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-summary-news/internal/config"
	"github.com/MKhiriev/go-summary-news/internal/logger"
	"github.com/MKhiriev/go-summary-news/models"
)

// newTestStorages opens a migrated SQLite file in a temp dir.
func newTestStorages(t *testing.T) *Storages {
	t.Helper()

	dir := t.TempDir()
	s, err := NewStorages(context.Background(), config.Storage{
		DB:          config.DB{DSN: filepath.Join(dir, "noticias.db")},
		Preferences: config.Preferences{Path: filepath.Join(dir, "preferences.json")},
	}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return s
}

func createTestUser(t *testing.T, s *Storages, email string) models.User {
	t.Helper()

	u, err := s.UserRepository.CreateUser(context.Background(), models.User{
		Name:     "user " + email,
		Email:    email,
		Password: "pw",
	})
	require.NoError(t, err)
	return u
}

func testArticle(id string, userID int64, category models.Category) models.Article {
	return models.Article{
		ID:        id,
		UserID:    userID,
		Title:     "title " + id,
		Summary:   "summary " + id,
		SourceURL: "https://example.com/" + id,
		ImageRef:  models.DefaultImageRef,
		Category:  category,
		CreatedAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func categoryPtr(c models.Category) *models.Category {
	return &c
}

// newMockArticleRepo wires the repository to sqlmock and no change feed.
func newMockArticleRepo(t *testing.T) (*articleRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	l := logger.Nop()
	repo := &articleRepository{
		DB:     &DB{DB: db, logger: l, errorClassificator: NewSQLiteErrorClassifier()},
		logger: l,
	}
	return repo, mock
}

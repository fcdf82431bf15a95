package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/MKhiriev/go-summary-news/internal/logger"
	"github.com/MKhiriev/go-summary-news/models"
)

// filePreferenceStore keeps the session and settings in a small JSON
// document. Every write rewrites the whole file through a temp file and
// rename.
type filePreferenceStore struct {
	path   string
	logger *logger.Logger

	mu    sync.RWMutex
	prefs models.Preferences
}

// NewFilePreferenceStore loads path, treating a missing file as empty
// preferences.
func NewFilePreferenceStore(path string, logger *logger.Logger) (PreferenceStore, error) {
	s := &filePreferenceStore{
		path:   path,
		logger: logger,
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *filePreferenceStore) load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read preference file: %w", err)
	}
	if len(data) == 0 {
		return nil
	}

	if err = json.Unmarshal(data, &s.prefs); err != nil {
		s.logger.Err(err).Str("func", "filePreferenceStore.load").Str("path", s.path).Msg("failed to decode preferences")
		return fmt.Errorf("%w: %w", ErrPreferencesCorrupted, err)
	}

	return nil
}

// persist must be called with mu held for writing.
func (s *filePreferenceStore) persist() error {
	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create preference dir: %w", err)
		}
	}

	payload, err := json.MarshalIndent(s.prefs, "", "  ")
	if err != nil {
		return fmt.Errorf("encode preferences: %w", err)
	}

	tmp := s.path + ".tmp"
	if err = os.WriteFile(tmp, payload, 0o600); err != nil {
		return fmt.Errorf("write preference file: %w", err)
	}
	if err = os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace preference file: %w", err)
	}

	return nil
}

func (s *filePreferenceStore) LoadSession(ctx context.Context) (models.Session, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.prefs.Session == nil || !s.prefs.Session.IsActive() {
		return models.Session{}, false, nil
	}
	return *s.prefs.Session, true, nil
}

func (s *filePreferenceStore) SaveSession(ctx context.Context, session models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	previous := s.prefs.Session
	s.prefs.Session = &session
	if err := s.persist(); err != nil {
		s.prefs.Session = previous
		logger.FromContext(ctx).Err(err).Str("func", "filePreferenceStore.SaveSession").Int64("user_id", session.UserID).Msg("failed to save session")
		return err
	}
	return nil
}

func (s *filePreferenceStore) ClearSession(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.prefs.Session == nil {
		return nil
	}

	previous := s.prefs.Session
	s.prefs.Session = nil
	if err := s.persist(); err != nil {
		s.prefs.Session = previous
		logger.FromContext(ctx).Err(err).Str("func", "filePreferenceStore.ClearSession").Msg("failed to clear session")
		return err
	}
	return nil
}

func (s *filePreferenceStore) LoadSettings(ctx context.Context) (models.Settings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.prefs.Settings, nil
}

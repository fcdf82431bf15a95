package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-summary-news/internal/app"
	"github.com/MKhiriev/go-summary-news/internal/logger"
	"github.com/MKhiriev/go-summary-news/internal/store"
	"github.com/MKhiriev/go-summary-news/models"
)

type authService struct {
	users       store.UserRepository
	preferences store.PreferenceStore

	logger *logger.Logger
}

// NewAuthService creates an AuthService over the user table and the
// preference file holding the session.
func NewAuthService(users store.UserRepository, preferences store.PreferenceStore, logger *logger.Logger) AuthService {
	return &authService{users: users, preferences: preferences, logger: logger}
}

// Register implements [AuthService]. Passwords are stored as given.
func (a *authService) Register(ctx context.Context, name, email, password string) (models.User, error) {
	name, email = strings.TrimSpace(name), strings.TrimSpace(email)
	if name == "" || email == "" || password == "" {
		return models.User{}, ErrFillAllFieldsToRegister
	}
	if utf8.RuneCountInString(password) < app.MinPasswordLength {
		return models.User{}, ErrPasswordTooShort
	}

	if _, err := a.users.FindUserByEmail(ctx, email); err == nil {
		return models.User{}, ErrEmailAlreadyRegistered
	} else if !errors.Is(err, store.ErrNoUserWasFound) {
		return models.User{}, fmt.Errorf("register %s: %w", email, err)
	}

	user, err := a.users.CreateUser(ctx, models.User{Name: name, Email: email, Password: password})
	if err != nil {
		return models.User{}, mapStoreError(err)
	}

	if err = a.saveSession(ctx, user); err != nil {
		return models.User{}, err
	}

	a.logger.Info().Int64("user_id", user.UserID).Msg("user registered")
	return user, nil
}

// Login implements [AuthService].
func (a *authService) Login(ctx context.Context, email, password string) (models.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return models.User{}, ErrFillAllFields
	}

	user, err := a.users.FindUserByCredentials(ctx, email, password)
	if err != nil {
		return models.User{}, mapStoreError(err)
	}

	if err = a.saveSession(ctx, user); err != nil {
		return models.User{}, err
	}

	a.logger.Info().Int64("user_id", user.UserID).Msg("user logged in")
	return user, nil
}

// Logout implements [AuthService].
func (a *authService) Logout(ctx context.Context) error {
	if err := a.preferences.ClearSession(ctx); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

// Settings implements [AuthService].
func (a *authService) Settings(ctx context.Context) (models.Settings, error) {
	settings, err := a.preferences.LoadSettings(ctx)
	if err != nil {
		return models.Settings{}, fmt.Errorf("load settings: %w", err)
	}
	return settings, nil
}

// RestoreSession implements [AuthService]. A session whose user was deleted
// is cleared.
func (a *authService) RestoreSession(ctx context.Context) (models.Session, error) {
	session, ok, err := a.preferences.LoadSession(ctx)
	if err != nil {
		return models.Session{}, fmt.Errorf("restore session: %w", err)
	}
	if !ok || !session.IsActive() {
		return models.Session{}, ErrNoActiveSession
	}

	if _, err = a.users.FindUserByID(ctx, session.UserID); err != nil {
		if !errors.Is(err, store.ErrNoUserWasFound) {
			return models.Session{}, fmt.Errorf("restore session: %w", err)
		}
		a.logger.Warn().Int64("user_id", session.UserID).Msg("stored session belongs to a deleted user")
		if err = a.preferences.ClearSession(ctx); err != nil {
			return models.Session{}, fmt.Errorf("restore session: %w", err)
		}
		return models.Session{}, ErrNoActiveSession
	}

	return session, nil
}

// DeleteAccount implements [AuthService]. The session is cleared when it
// belongs to the deleted user.
func (a *authService) DeleteAccount(ctx context.Context, userID int64) error {
	if err := a.users.DeleteUser(ctx, userID); err != nil {
		return fmt.Errorf("delete account %d: %w", userID, err)
	}

	session, ok, err := a.preferences.LoadSession(ctx)
	if err != nil {
		return fmt.Errorf("delete account %d: %w", userID, err)
	}
	if ok && session.UserID == userID {
		return a.Logout(ctx)
	}
	return nil
}

func (a *authService) saveSession(ctx context.Context, user models.User) error {
	err := a.preferences.SaveSession(ctx, models.Session{UserID: user.UserID, Email: user.Email, Name: user.Name})
	if err != nil {
		return fmt.Errorf("save session of user %d: %w", user.UserID, err)
	}
	return nil
}

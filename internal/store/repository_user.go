package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-summary-news/internal/logger"
	"github.com/MKhiriev/go-summary-news/models"
)

// userRepository is the SQLite-backed implementation of [UserRepository].
// It handles account creation and lookup against the "usuarios" table.
//
// Credentials are compared by plain equality; passwords are stored as given.
type userRepository struct {
	logger  *logger.Logger
	db      *DB
	changes ChangeNotifier
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger. changes, when set, is told about article
// rows removed by an account deletion.
func NewUserRepository(db *DB, changes ChangeNotifier, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:      db,
		changes: changes,
		logger:  logger,
	}
}

// CreateUser persists a new account and returns it with the generated
// UserID and CreatedAt.
//
// Error handling:
//   - UNIQUE violation on email → [ErrEmailAlreadyRegistered].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	var created models.User
	err := r.db.QueryRowContext(ctx, createUser, user.Name, user.Email, user.Password).
		Scan(&created.UserID, &created.Name, &created.Email, &created.Password, &created.CreatedAt)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")

		if isUniqueViolation(err) {
			return models.User{}, ErrEmailAlreadyRegistered
		}
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// FindUserByCredentials returns the user whose email and password both match.
func (r *userRepository) FindUserByCredentials(ctx context.Context, email, password string) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByCredentials", findUserByCredentials, email, password)
}

// FindUserByEmail returns the user registered with email.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByEmail", findUserByEmail, email)
}

// FindUserByID returns the user with the given id.
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByID", findUserByID, userID)
}

// findOne scans a single user row. [sql.ErrNoRows] → [ErrNoUserWasFound].
func (r *userRepository) findOne(ctx context.Context, funcName, query string, args ...any) (models.User, error) {
	log := logger.FromContext(ctx)

	var found models.User
	err := r.db.QueryRowContext(ctx, query, args...).
		Scan(&found.UserID, &found.Name, &found.Email, &found.Password, &found.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNoUserWasFound
	}
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error: scanning error")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// DeleteUser removes the account. Articles owned by the user are removed by
// the ON DELETE CASCADE constraint.
func (r *userRepository) DeleteUser(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteUser, userID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Int64("user_id", userID).Msg("error deleting user")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrNoUserWasFound
	}

	if r.changes != nil {
		if err := r.changes.Publish(ctx, userID); err != nil {
			log.Warn().Err(err).Str("func", "*userRepository.DeleteUser").Int64("user_id", userID).Msg("change notification failed")
		}
	}

	return nil
}

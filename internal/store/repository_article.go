package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-summary-news/internal/logger"
	"github.com/MKhiriev/go-summary-news/models"
)

// articleRepository is the SQLite-backed implementation of
// [ArticleRepository]. Successful writes are announced on the change
// notifier so that open article streams refresh.
type articleRepository struct {
	*DB
	changes ChangeNotifier
	logger  *logger.Logger
}

// NewArticleRepository constructs an [ArticleRepository]. changes may be nil
// when no stream observes the store.
func NewArticleRepository(db *DB, changes ChangeNotifier, logger *logger.Logger) ArticleRepository {
	return &articleRepository{
		DB:      db,
		changes: changes,
		logger:  logger,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanArticle(row rowScanner) (models.Article, error) {
	var (
		article  models.Article
		imageURL sql.NullString
		category string
	)

	err := row.Scan(
		&article.ID,
		&article.UserID,
		&article.Title,
		&article.Summary,
		&article.SourceURL,
		&imageURL,
		&article.ImageRef,
		&category,
		&article.Liked,
		&article.Saved,
		&article.CreatedAt,
	)
	if err != nil {
		return models.Article{}, err
	}

	if imageURL.Valid {
		article.ImageURL = &imageURL.String
	}
	article.Category = models.Category(category)

	return article, nil
}

func nullableString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

// notify publishes a change for every distinct owner. Publishing failures are
// logged only: the write itself already succeeded.
func (r *articleRepository) notify(ctx context.Context, userIDs ...int64) {
	if r.changes == nil {
		return
	}

	seen := make(map[int64]struct{}, len(userIDs))
	for _, userID := range userIDs {
		if _, ok := seen[userID]; ok {
			continue
		}
		seen[userID] = struct{}{}

		if err := r.changes.Publish(ctx, userID); err != nil {
			logger.FromContext(ctx).Warn().Err(err).
				Str("func", "articleRepository.notify").
				Int64("user_id", userID).
				Msg("change notification was not delivered")
		}
	}
}

func (r *articleRepository) SaveArticles(ctx context.Context, articles []models.Article) error {
	log := logger.FromContext(ctx)

	if len(articles) == 0 {
		return nil
	}
	for _, a := range articles {
		if a.UserID <= 0 {
			return fmt.Errorf("%w: article %s", ErrMissingOwner, a.ID)
		}
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "articleRepository.SaveArticles").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, saveArticle)
	if err != nil {
		log.Err(err).Str("func", "articleRepository.SaveArticles").Msg("failed to prepare insert")
		return fmt.Errorf("%w: %w", ErrPreparingStatement, err)
	}
	defer stmt.Close()

	owners := make([]int64, 0, len(articles))
	for _, a := range articles {
		_, err = stmt.ExecContext(ctx,
			a.ID,
			a.UserID,
			a.Title,
			a.Summary,
			a.SourceURL,
			nullableString(a.ImageURL),
			a.ImageRef,
			string(a.Category),
			a.Liked,
			a.Saved,
			a.CreatedAt,
		)
		if err != nil {
			log.Err(err).
				Str("func", "articleRepository.SaveArticles").
				Int64("user_id", a.UserID).
				Str("id", a.ID).
				Msg("failed to execute insert or replace for article")
			if isForeignKeyViolation(err) {
				return fmt.Errorf("%w (user_id=%d): %w", ErrNoUserWasFound, a.UserID, err)
			}
			return fmt.Errorf("%w (id=%s): %w", ErrExecutingStatement, a.ID, err)
		}
		owners = append(owners, a.UserID)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "articleRepository.SaveArticles").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	r.notify(ctx, owners...)
	return nil
}

func (r *articleRepository) GetArticle(ctx context.Context, id string, userID int64) (models.Article, error) {
	log := logger.FromContext(ctx)

	article, err := scanArticle(r.DB.QueryRowContext(ctx, getArticle, id, userID))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Article{}, ErrArticleNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "articleRepository.GetArticle").
			Int64("user_id", userID).
			Str("id", id).
			Msg("failed to scan article row")
		return models.Article{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return article, nil
}

func (r *articleRepository) GetArticles(ctx context.Context, filter models.ArticleFilter) ([]models.Article, error) {
	log := logger.FromContext(ctx)

	if filter.UserID <= 0 {
		return nil, ErrMissingOwner
	}

	query, args, err := buildSelectArticlesQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "articleRepository.GetArticles").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "articleRepository.GetArticles").
			Int64("user_id", filter.UserID).
			Msg("failed to execute query for articles")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	articles := make([]models.Article, 0)
	for rows.Next() {
		article, scanErr := scanArticle(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "articleRepository.GetArticles").
				Int64("user_id", filter.UserID).
				Msg("failed to scan article row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		articles = append(articles, article)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "articleRepository.GetArticles").
			Int64("user_id", filter.UserID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return articles, nil
}

func (r *articleRepository) CountArticles(ctx context.Context, userID int64) (int, error) {
	var count int
	if err := r.DB.QueryRowContext(ctx, countArticles, userID).Scan(&count); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "articleRepository.CountArticles").
			Int64("user_id", userID).
			Msg("failed to count articles")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return count, nil
}

func (r *articleRepository) CountAllArticles(ctx context.Context) (int, error) {
	var count int
	if err := r.DB.QueryRowContext(ctx, countAllArticles).Scan(&count); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "articleRepository.CountAllArticles").Msg("failed to count articles")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return count, nil
}

func (r *articleRepository) UpdateArticle(ctx context.Context, a models.Article) error {
	return r.execForArticle(ctx, "articleRepository.UpdateArticle", a.ID, a.UserID, updateArticle,
		a.Title,
		a.Summary,
		a.SourceURL,
		nullableString(a.ImageURL),
		a.ImageRef,
		string(a.Category),
		a.Liked,
		a.Saved,
		a.ID,
		a.UserID,
	)
}

func (r *articleRepository) SetLiked(ctx context.Context, id string, userID int64, liked bool) error {
	return r.execForArticle(ctx, "articleRepository.SetLiked", id, userID, setLiked, liked, id, userID)
}

func (r *articleRepository) SetSaved(ctx context.Context, id string, userID int64, saved bool) error {
	return r.execForArticle(ctx, "articleRepository.SetSaved", id, userID, setSaved, saved, id, userID)
}

func (r *articleRepository) DeleteArticle(ctx context.Context, id string, userID int64) error {
	return r.execForArticle(ctx, "articleRepository.DeleteArticle", id, userID, deleteArticle, id, userID)
}

// execForArticle runs a statement addressing exactly one (id, user_id) row
// and maps "no row affected" to ErrArticleNotFound.
func (r *articleRepository) execForArticle(ctx context.Context, funcName, id string, userID int64, query string, args ...any) error {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", funcName).
			Int64("user_id", userID).
			Str("id", id).
			Msg("failed to execute statement for article")
		return fmt.Errorf("%w (id=%s): %w", ErrExecutingStatement, id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", funcName).
			Int64("user_id", userID).
			Str("id", id).
			Msg("failed to get rows affected")
		return fmt.Errorf("%w (id=%s): %w", ErrExecutingStatement, id, err)
	}

	if affected == 0 {
		log.Warn().
			Str("func", funcName).
			Int64("user_id", userID).
			Str("id", id).
			Msg("no rows affected: article not found")
		return fmt.Errorf("%w (id=%s, user_id=%d)", ErrArticleNotFound, id, userID)
	}

	r.notify(ctx, userID)
	return nil
}

func (r *articleRepository) DeleteArticles(ctx context.Context, userID int64, ids []string) error {
	log := logger.FromContext(ctx)

	if len(ids) == 0 {
		return nil
	}

	query, args, err := buildDeleteArticlesQuery(userID, ids)
	if err != nil {
		log.Err(err).Str("func", "articleRepository.DeleteArticles").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "articleRepository.DeleteArticles").
			Int64("user_id", userID).
			Int("count", len(ids)).
			Msg("failed to delete articles")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	r.notify(ctx, userID)
	return nil
}

func (r *articleRepository) LikedPerCategory(ctx context.Context, userID int64) (map[models.Category]int, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, likedPerCategory, userID)
	if err != nil {
		log.Err(err).
			Str("func", "articleRepository.LikedPerCategory").
			Int64("user_id", userID).
			Msg("failed to execute query for liked categories")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	counts := make(map[models.Category]int)
	for rows.Next() {
		var (
			category string
			count    int
		)
		if err := rows.Scan(&category, &count); err != nil {
			log.Err(err).
				Str("func", "articleRepository.LikedPerCategory").
				Int64("user_id", userID).
				Msg("failed to scan liked category row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		counts[models.Category(category)] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return counts, nil
}

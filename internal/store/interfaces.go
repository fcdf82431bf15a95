package store

import (
	"context"

	"github.com/MKhiriev/go-summary-news/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ArticleRepository is the user-scoped cache of news articles. Every method
// except CountAllArticles is restricted to rows owned by the given user.
type ArticleRepository interface {
	// SaveArticles inserts the batch in one transaction, replacing rows
	// whose id already exists.
	SaveArticles(ctx context.Context, articles []models.Article) error
	GetArticle(ctx context.Context, id string, userID int64) (models.Article, error)
	GetArticles(ctx context.Context, filter models.ArticleFilter) ([]models.Article, error)
	CountArticles(ctx context.Context, userID int64) (int, error)
	CountAllArticles(ctx context.Context) (int, error)
	UpdateArticle(ctx context.Context, article models.Article) error
	SetLiked(ctx context.Context, id string, userID int64, liked bool) error
	SetSaved(ctx context.Context, id string, userID int64, saved bool) error
	DeleteArticle(ctx context.Context, id string, userID int64) error
	DeleteArticles(ctx context.Context, userID int64, ids []string) error
	LikedPerCategory(ctx context.Context, userID int64) (map[models.Category]int, error)
}

// UserRepository stores local accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByCredentials(ctx context.Context, email, password string) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	// DeleteUser removes the account; owned articles cascade.
	DeleteUser(ctx context.Context, userID int64) error
}

// ChangeNotifier signals writes to a user's articles.
type ChangeNotifier interface {
	Publish(ctx context.Context, userID int64) error
	// Subscribe returns a channel that receives a value after each write
	// to userID's rows. Bursts may be coalesced. The channel is closed when
	// ctx ends.
	Subscribe(ctx context.Context, userID int64) (<-chan struct{}, error)
}

// PreferenceStore is the key-value store of session and settings.
type PreferenceStore interface {
	LoadSession(ctx context.Context) (models.Session, bool, error)
	SaveSession(ctx context.Context, session models.Session) error
	ClearSession(ctx context.Context) error
	LoadSettings(ctx context.Context) (models.Settings, error)
}

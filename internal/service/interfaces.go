package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-summary-news/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// NewsService is the synchronization repository of the client: it pulls
// headline pages, enriches and stores them for one user, and exposes the
// user's cached articles as plain queries and reactive streams.
//
// Every method that takes a userID reads or writes only that user's rows.
type NewsService interface {
	// FetchHeadlinesPage fetches page of the top headlines for region and
	// stores the enriched articles for userID.
	//
	// The returned channel yields Loading, then exactly one terminal result,
	// then is closed. Articles are persisted before the terminal result is
	// sent, and the channel is buffered so an absent reader never blocks the
	// fetch. A headline whose enrichment fails is dropped from the batch and
	// does not fail the page.
	FetchHeadlinesPage(ctx context.Context, region string, page int, userID int64) <-chan models.FetchResult

	// SearchPage is FetchHeadlinesPage over the full-text search endpoint.
	SearchPage(ctx context.Context, query string, page int, userID int64) <-chan models.FetchResult

	// LoadMore fetches the next page of top headlines for userID. The page
	// counter starts at 1 and advances only after a Success. Overlapping
	// calls for the same user share one fetch.
	LoadMore(ctx context.Context, region string, userID int64) <-chan models.FetchResult

	// CurrentPage returns the page the next LoadMore for userID will fetch.
	CurrentPage(userID int64) int

	// UpdateArticle replaces the whole row identified by (ID, UserID).
	UpdateArticle(ctx context.Context, article models.Article) error

	// SetLiked and SetSaved update one flag and leave the other untouched.
	SetLiked(ctx context.Context, id string, userID int64, liked bool) error
	SetSaved(ctx context.Context, id string, userID int64, saved bool) error

	// ToggleLike and ToggleSave flip one flag of article and return the
	// updated copy.
	ToggleLike(ctx context.Context, article models.Article) (models.Article, error)
	ToggleSave(ctx context.Context, article models.Article) (models.Article, error)

	DeleteArticle(ctx context.Context, article models.Article) error
	IsLocalStoreEmpty(ctx context.Context, userID int64) (bool, error)
	CountArticles(ctx context.Context, userID int64) (int, error)

	// CountAllArticles counts rows of every user.
	CountAllArticles(ctx context.Context) (int, error)

	// AllArticles, SavedArticles and ArticlesByCategory emit the current
	// snapshot, then a fresh one after every write to the user's rows. The
	// channel is closed when ctx ends.
	AllArticles(ctx context.Context, userID int64) (<-chan []models.Article, error)
	SavedArticles(ctx context.Context, userID int64) (<-chan []models.Article, error)
	ArticlesByCategory(ctx context.Context, userID int64, label models.Category) (<-chan []models.Article, error)

	// SeedIfEmpty stores the starter articles when userID has none and
	// reports whether it did.
	SeedIfEmpty(ctx context.Context, userID int64) (bool, error)

	// LikeStats counts the liked articles of userID per category.
	LikeStats(ctx context.Context, userID int64) (models.LikeStats, error)
}

// AuthService manages local accounts and the stored session.
type AuthService interface {
	// Register creates an account and makes it the active session.
	Register(ctx context.Context, name, email, password string) (models.User, error)

	// Login finds the account by email and password and makes it the active
	// session.
	Login(ctx context.Context, email, password string) (models.User, error)

	// Logout forgets the active session.
	Logout(ctx context.Context) error

	// RestoreSession returns the stored session if its user still exists.
	RestoreSession(ctx context.Context) (models.Session, error)

	// DeleteAccount removes the user and, through the cascade, its articles.
	DeleteAccount(ctx context.Context, userID int64) error

	// Settings returns the stored presentation preferences.
	Settings(ctx context.Context) (models.Settings, error)
}

// RefreshJob defines the contract for a background worker that periodically
// calls LoadMore for the signed-in user.
type RefreshJob interface {
	// Start launches the background goroutine. Any previously running job is
	// stopped before the new one begins.
	Start(ctx context.Context, region string, userID int64, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-summary-news/internal/app"
	"github.com/MKhiriev/go-summary-news/internal/config"
	"github.com/MKhiriev/go-summary-news/internal/logger"
	"github.com/MKhiriev/go-summary-news/internal/service"
	"github.com/MKhiriev/go-summary-news/internal/workers"
	"github.com/MKhiriev/go-summary-news/models"
)

type App struct {
	services *service.Services
	cfg      *config.StructuredConfig

	logger *logger.Logger
}

func NewApp(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) (*App, error) {
	if services == nil || cfg == nil || logger == nil {
		return nil, fmt.Errorf("%w: services, config and logger are required", ErrNilDependency)
	}

	return &App{services: services, cfg: cfg, logger: logger}, nil
}

// Run implements [Client].
func (a *App) Run(ctx context.Context) error {
	session, err := a.signIn(ctx)
	if err != nil {
		return fmt.Errorf("sign in: %w", err)
	}
	log := a.logger.With().Int64("user_id", session.UserID).Logger()
	settings, err := a.services.AuthService.Settings(ctx)
	if err != nil {
		return fmt.Errorf("settings: %w", err)
	}
	log.Info().
		Str("email", session.Email).
		Bool("dark_theme", settings.DarkTheme).
		Int("language_index", settings.LanguageIndex).
		Msg("session opened")

	if !a.cfg.App.SkipSeed {
		seeded, err := a.services.NewsService.SeedIfEmpty(ctx, session.UserID)
		if err != nil {
			return fmt.Errorf("seed: %w", err)
		}
		if seeded {
			log.Info().Msg("starter articles stored")
		}
	}

	if err = a.watch(ctx, session.UserID); err != nil {
		return err
	}

	a.loadMore(ctx, session.UserID)

	ws := workers.NewWorkers(
		workers.NewRefreshWorker(a.services.RefreshJob, a.cfg.App.Region, session.UserID, a.cfg.Workers.RefreshInterval),
	)
	ws.Run(ctx)
	defer ws.Stop()

	<-ctx.Done()
	log.Info().Msg("client stopped")
	return nil
}

// signIn restores the stored session, or logs in with the configured
// account, registering it when it does not exist and a name is given.
func (a *App) signIn(ctx context.Context) (models.Session, error) {
	auth := a.services.AuthService

	session, err := auth.RestoreSession(ctx)
	if err == nil {
		return session, nil
	}
	if !errors.Is(err, service.ErrNoActiveSession) {
		return models.Session{}, err
	}

	acc := a.cfg.Account
	if acc.Email == "" {
		return models.Session{}, ErrNoAccount
	}

	user, err := auth.Login(ctx, acc.Email, acc.Password)
	if errors.Is(err, service.ErrInvalidCredentials) && acc.Name != "" {
		a.logger.Info().Str("email", acc.Email).Msg("account not found, registering")
		user, err = auth.Register(ctx, acc.Name, acc.Email, acc.Password)
	}
	if err != nil {
		return models.Session{}, err
	}

	return models.Session{UserID: user.UserID, Email: user.Email, Name: user.Name}, nil
}

// loadMore fetches the next page and logs its terminal result.
func (a *App) loadMore(ctx context.Context, userID int64) {
	for result := range a.services.NewsService.LoadMore(ctx, a.cfg.App.Region, userID) {
		switch result.Status {
		case models.FetchLoading:
			a.logger.Debug().Int64("user_id", userID).Msg("loading headlines")
		case models.FetchSuccess:
			a.logger.Info().Int64("user_id", userID).Int("stored", len(result.Articles)).Msg(app.MsgNewArticlesLoaded)
		case models.FetchError:
			a.logger.Error().Err(result.Err).Int64("user_id", userID).Msg(result.Message)
		}
	}
}

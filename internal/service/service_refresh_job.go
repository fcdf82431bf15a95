package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-summary-news/internal/logger"
	"github.com/MKhiriev/go-summary-news/models"
)

// DefaultRefreshInterval is used when Start is given a non-positive interval.
const DefaultRefreshInterval = 15 * time.Minute

type refreshJob struct {
	news   NewsService
	logger *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewRefreshJob creates a refreshJob that calls news.LoadMore on a ticker.
// The job is idle until Start is called.
func NewRefreshJob(news NewsService, logger *logger.Logger) RefreshJob {
	return &refreshJob{news: news, logger: logger}
}

// Start implements RefreshJob. It stops any previously running job, then
// launches a background goroutine that loads the next page every interval.
// The goroutine exits when ctx is cancelled or Stop is called.
func (j *refreshJob) Start(ctx context.Context, region string, userID int64, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.refresh(jobCtx, region, userID)
			}
		}
	}()
}

// refresh drains one LoadMore stream and logs its terminal result.
func (j *refreshJob) refresh(ctx context.Context, region string, userID int64) {
	for result := range j.news.LoadMore(ctx, region, userID) {
		switch result.Status {
		case models.FetchSuccess:
			j.logger.Info().Int64("user_id", userID).Int("stored", len(result.Articles)).Msg("background refresh done")
		case models.FetchError:
			j.logger.Warn().Err(result.Err).Int64("user_id", userID).Msg(result.Message)
		}
	}
}

// Stop implements RefreshJob. It cancels the background goroutine's context
// and blocks until the goroutine has fully exited. Safe to call when the job
// is not running.
func (j *refreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

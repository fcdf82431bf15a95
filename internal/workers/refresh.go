package workers

import (
	"context"
	"time"
)

// RefreshWorker periodically loads the next headline page for one user.
type RefreshWorker struct {
	job      Refresher
	region   string
	userID   int64
	interval time.Duration
}

// NewRefreshWorker creates a worker around job. A non-positive interval
// makes Run a no-op.
func NewRefreshWorker(job Refresher, region string, userID int64, interval time.Duration) *RefreshWorker {
	return &RefreshWorker{job: job, region: region, userID: userID, interval: interval}
}

func (w *RefreshWorker) Run(ctx context.Context) {
	if w.interval <= 0 {
		return
	}
	w.job.Start(ctx, w.region, w.userID, w.interval)
}

func (w *RefreshWorker) Stop() {
	w.job.Stop()
}

package store

import (
	"context"
	"fmt"
	"strconv"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"github.com/MKhiriev/go-summary-news/internal/logger"
)

const articlesTopicPrefix = "noticias.changed."

// ChangeFeed is the in-process pub/sub behind reactive article queries.
// Each user has a topic of its own, so subscribers never see other users'
// writes.
type ChangeFeed struct {
	pubSub *gochannel.GoChannel
	logger *logger.Logger
}

// NewChangeFeed creates a non-persistent feed: notifications published while
// nobody listens are dropped.
func NewChangeFeed(log *logger.Logger) *ChangeFeed {
	return &ChangeFeed{
		pubSub: gochannel.NewGoChannel(
			gochannel.Config{OutputChannelBuffer: 16},
			logger.NewWatermillAdapter(log),
		),
		logger: log,
	}
}

func articlesTopic(userID int64) string {
	return articlesTopicPrefix + strconv.FormatInt(userID, 10)
}

// Publish notifies subscribers of userID that its rows changed.
func (f *ChangeFeed) Publish(ctx context.Context, userID int64) error {
	msg := message.NewMessage(watermill.NewUUID(), []byte(strconv.FormatInt(userID, 10)))
	msg.SetContext(ctx)

	if err := f.pubSub.Publish(articlesTopic(userID), msg); err != nil {
		f.logger.Err(err).Str("func", "ChangeFeed.Publish").Int64("user_id", userID).Msg("failed to publish change")
		return fmt.Errorf("publish change for user %d: %w", userID, err)
	}
	return nil
}

// Subscribe implements [ChangeNotifier].
func (f *ChangeFeed) Subscribe(ctx context.Context, userID int64) (<-chan struct{}, error) {
	messages, err := f.pubSub.Subscribe(ctx, articlesTopic(userID))
	if err != nil {
		return nil, fmt.Errorf("subscribe to changes of user %d: %w", userID, err)
	}

	signals := make(chan struct{}, 1)
	go func() {
		defer close(signals)
		for msg := range messages {
			msg.Ack()
			select {
			case signals <- struct{}{}:
			default:
				// a signal is already pending
			}
		}
	}()

	return signals, nil
}

// Close stops the feed and closes every subscription.
func (f *ChangeFeed) Close() error {
	return f.pubSub.Close()
}

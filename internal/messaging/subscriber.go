package messaging

import (
	"context"

	"github.com/gallerie/market-indexer/internal/domain"
)

// EventHandler is called for each decoded marketplace event, in stream order.
// Returning an error makes the subscriber redeliver the event.
type EventHandler func(event *domain.Event) error

// Subscriber defines the interface for consuming the decoded event stream
//
//go:generate mockgen -source=subscriber.go -destination=../mocks/subscriber.go -package=mocks -mock_names=Subscriber=MockSubscriber
type Subscriber interface {
	// SubscribeEvents delivers events one at a time to the handler until the
	// context is canceled or Close is called
	SubscribeEvents(ctx context.Context, handler EventHandler) error

	// Close stops delivery and cleans up resources
	Close()
}

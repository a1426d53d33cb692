package port

import (
	"context"

	"github.com/buildmate/quote-service/internal/core/domain"
)

// EventPublisher emits quote lifecycle events for downstream
// consumers. Publishing is best effort; the quote pipeline never
// fails on a publish error.
type EventPublisher interface {
	PublishQuoteCreated(ctx context.Context, result domain.QuoteResult) error
	Close() error
}

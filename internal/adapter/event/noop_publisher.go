package event

import (
	"context"

	"github.com/buildmate/quote-service/internal/core/domain"
)

// NoopPublisher discards events; used when no brokers are configured.
type NoopPublisher struct{}

func (NoopPublisher) PublishQuoteCreated(context.Context, domain.QuoteResult) error { return nil }

func (NoopPublisher) Close() error { return nil }

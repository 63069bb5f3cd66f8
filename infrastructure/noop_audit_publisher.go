package infrastructure

import (
	"context"

	"spectrum/domain/entities"
)

// NoopAuditPublisher discards audit events. Used when NATS is not configured.
type NoopAuditPublisher struct{}

// NewNoopAuditPublisher creates a new no-op audit publisher
func NewNoopAuditPublisher() *NoopAuditPublisher {
	return &NoopAuditPublisher{}
}

// PublishLookup does nothing with the event
func (n *NoopAuditPublisher) PublishLookup(ctx context.Context, event entities.LookupAudited) error {
	return nil
}

package infrastructure

import (
	"context"
	"encoding/json"
	"fmt"

	"spectrum/domain/entities"
)

// MessagePublisher is the publishing side of a message bus client
type MessagePublisher interface {
	Publish(subject string, data []byte) error
}

// NATSAuditPublisher publishes lookup audit events as JSON
type NATSAuditPublisher struct {
	client  MessagePublisher
	subject string
}

// NewNATSAuditPublisher creates an audit publisher on subject
func NewNATSAuditPublisher(client MessagePublisher, subject string) *NATSAuditPublisher {
	return &NATSAuditPublisher{
		client:  client,
		subject: subject,
	}
}

// PublishLookup publishes one audit event
func (p *NATSAuditPublisher) PublishLookup(ctx context.Context, event entities.LookupAudited) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal audit event: %w", err)
	}

	subject := p.subject + "." + event.View
	if err := p.client.Publish(subject, data); err != nil {
		return fmt.Errorf("failed to publish audit event %s: %w", event.EventID, err)
	}
	return nil
}

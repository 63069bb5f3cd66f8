package common

import (
	"context"
	"time"

	"spectrum/domain/entities"
	"spectrum/domain/interfaces"
	"spectrum/domain/services"

	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// OutcomeSuccess labels a lookup that returned a result
const OutcomeSuccess = "success"

// Lookuper runs one lookup view for a raw identifier
type Lookuper interface {
	Lookup(ctx context.Context, view services.View, raw string) (*services.LookupResult, error)
}

// Outcome returns the audit/metric label for a lookup error
func Outcome(err error) string {
	if err == nil {
		return OutcomeSuccess
	}
	if cmdErr, ok := services.AsCommandError(err); ok {
		return cmdErr.Kind.String()
	}
	return "error"
}

// NewLookupAudit builds the audit event for a finished lookup
func NewLookupAudit(requestID string, view services.View, identifier, requestedBy, guildID string, err error) entities.LookupAudited {
	return entities.LookupAudited{
		EventID:     requestID,
		View:        string(view),
		Identifier:  identifier,
		RequestedBy: requestedBy,
		GuildID:     guildID,
		Outcome:     Outcome(err),
		Timestamp:   time.Now().UTC(),
	}
}

// RunLookup performs a lookup on behalf of an interaction
func RunLookup(ctx context.Context, lookuper Lookuper, audit interfaces.AuditPublisher, i *discordgo.InteractionCreate, view services.View, raw string) (*services.LookupResult, error) {
	return PerformLookup(ctx, lookuper, audit, view, raw, InteractionUserID(i), i.GuildID)
}

// PerformLookup runs a lookup and publishes its audit event. Audit failures
// are logged and never fail the lookup.
func PerformLookup(ctx context.Context, lookuper Lookuper, audit interfaces.AuditPublisher, view services.View, raw, requestedBy, guildID string) (*services.LookupResult, error) {
	requestID := uuid.NewString()
	ctx = services.WithRequestID(ctx, requestID)

	logger := log.WithFields(log.Fields{
		"request_id":   requestID,
		"view":         view,
		"identifier":   raw,
		"requested_by": requestedBy,
	})
	logger.Info("Lookup requested")

	result, err := lookuper.Lookup(ctx, view, raw)

	event := NewLookupAudit(requestID, view, raw, requestedBy, guildID, err)
	if pubErr := audit.PublishLookup(ctx, event); pubErr != nil {
		logger.WithError(pubErr).Warn("Failed to publish lookup audit event")
	}

	return result, err
}

// InteractionUserID returns the ID of whoever triggered the interaction
func InteractionUserID(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}

// StringOption returns the named string option of a slash command
func StringOption(i *discordgo.InteractionCreate, name string) string {
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == name && opt.Type == discordgo.ApplicationCommandOptionString {
			return opt.StringValue()
		}
	}
	return ""
}

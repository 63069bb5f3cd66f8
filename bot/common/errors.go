package common

import (
	"errors"
	"fmt"

	"spectrum/domain/services"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

const (
	genericErrorMessage   = "Something went wrong. Please try again later."
	resultNotShownMessage = "The result could not be displayed. Please try again later."
	partialResultMessage  = "Some of the result could not be displayed. Please try again later."
)

// CommandErrorMessage returns the single user-facing sentence for a lookup failure
func CommandErrorMessage(kind services.CommandErrorKind) string {
	switch kind {
	case services.KindInvalidIdentifierFormat:
		return "That identifier is not valid, use the format steam:<hex id>"
	case services.KindUpstreamUnavailable:
		return "There was a problem fetching this player"
	case services.KindPlayerNotFound:
		return "This player does not exist"
	case services.KindServiceUnavailable:
		return "There was a problem reaching the server"
	case services.KindStoreUnavailable:
		return "There was a problem reaching the player records"
	default:
		return genericErrorMessage
	}
}

// UserMessageFor maps any error from the lookup service to a user-facing sentence
func UserMessageFor(err error) string {
	var cmdErr *services.CommandError
	if errors.As(err, &cmdErr) {
		return CommandErrorMessage(cmdErr.Kind)
	}
	return genericErrorMessage
}

// RespondWithError sends an error message as an ephemeral interaction response
func RespondWithError(s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: fmt.Sprintf("❌ %s", message),
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Errorf("Error sending error response: %v", err)
	}
}

// EditWithError replaces a deferred response with an error message
func EditWithError(s InteractionEditor, i *discordgo.InteractionCreate, message string) {
	content := fmt.Sprintf("❌ %s", message)
	_, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Content: &content,
	})
	if err != nil {
		log.Errorf("Error editing deferred response with error: %v", err)
	}
}

// FollowUpWithError sends an error message as an ephemeral follow-up
func FollowUpWithError(s InteractionEditor, i *discordgo.InteractionCreate, message string) {
	_, err := s.FollowupMessageCreate(i.Interaction, false, &discordgo.WebhookParams{
		Content: fmt.Sprintf("❌ %s", message),
		Flags:   discordgo.MessageFlagsEphemeral,
	})
	if err != nil {
		log.Errorf("Error sending error follow-up: %v", err)
	}
}

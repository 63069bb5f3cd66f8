package common

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// DeferResponse sends a deferred response to give more time for processing
func DeferResponse(s *discordgo.Session, i *discordgo.InteractionCreate, ephemeral bool) error {
	var flags discordgo.MessageFlags
	if ephemeral {
		flags = discordgo.MessageFlagsEphemeral
	}

	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: flags,
		},
	})
}

// InteractionEditor is the part of *discordgo.Session used to complete a
// deferred interaction
type InteractionEditor interface {
	InteractionResponseEdit(interaction *discordgo.Interaction, newresp *discordgo.WebhookEdit, options ...discordgo.RequestOption) (*discordgo.Message, error)
	FollowupMessageCreate(interaction *discordgo.Interaction, wait bool, data *discordgo.WebhookParams, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// SendEmbeds fills a deferred response with embeds. The first message that
// fits Discord's per-message limits replaces the deferred response and the
// rest are sent as ephemeral follow-ups. When a send fails the user is told
// with an error message before the error is returned.
func SendEmbeds(s InteractionEditor, i *discordgo.InteractionCreate, embeds []*discordgo.MessageEmbed) error {
	groups := GroupEmbeds(embeds)
	if len(groups) == 0 {
		EditWithError(s, i, genericErrorMessage)
		return errors.New("no embeds to send")
	}

	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Embeds: &groups[0],
	}); err != nil {
		EditWithError(s, i, resultNotShownMessage)
		return fmt.Errorf("edit deferred response: %w", err)
	}

	for n, group := range groups[1:] {
		if _, err := s.FollowupMessageCreate(i.Interaction, false, &discordgo.WebhookParams{
			Embeds: group,
			Flags:  discordgo.MessageFlagsEphemeral,
		}); err != nil {
			FollowUpWithError(s, i, partialResultMessage)
			return fmt.Errorf("send follow-up %d of %d: %w", n+1, len(groups)-1, err)
		}
	}
	return nil
}

// RespondWithEmbed sends an embed as an interaction response
func RespondWithEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed, ephemeral bool) error {
	data := &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{embed},
	}

	if ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}

	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	})
}

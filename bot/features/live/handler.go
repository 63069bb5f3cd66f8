package live

import (
	"context"
	"strings"

	"spectrum/bot/common"
	"spectrum/domain/services"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

func (f *Feature) handleLive(s *discordgo.Session, i *discordgo.InteractionCreate) {
	raw := strings.TrimSpace(common.StringOption(i, OptionID))
	if raw == "" {
		common.RespondWithError(s, i, "A player ID is required")
		return
	}

	if err := common.DeferResponse(s, i, true); err != nil {
		log.WithError(err).Error("Failed to defer live response")
		return
	}

	result, err := common.RunLookup(context.Background(), f.lookuper, f.audit, i, services.ViewLive, raw)
	if err != nil {
		common.EditWithError(s, i, common.UserMessageFor(err))
		return
	}

	if err := common.SendEmbeds(s, i, BuildEmbeds(result)); err != nil {
		log.WithFields(log.Fields{
			"identifier": raw,
			"error":      err,
		}).Error("Failed to send live embeds")
	}
}

package lookup

import (
	"context"
	"strings"

	"spectrum/bot/common"
	"spectrum/domain/services"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

func (f *Feature) handleLookup(s *discordgo.Session, i *discordgo.InteractionCreate, view services.View) {
	raw := strings.TrimSpace(common.StringOption(i, OptionUser))
	if raw == "" {
		common.RespondWithError(s, i, "A target player is required")
		return
	}

	if err := common.DeferResponse(s, i, true); err != nil {
		log.WithError(err).Error("Failed to defer lookup response")
		return
	}

	result, err := common.RunLookup(context.Background(), f.lookuper, f.audit, i, view, raw)
	if err != nil {
		common.EditWithError(s, i, common.UserMessageFor(err))
		return
	}

	if err := common.SendEmbeds(s, i, BuildEmbeds(result)); err != nil {
		log.WithFields(log.Fields{
			"view":       view,
			"identifier": raw,
			"error":      err,
		}).Error("Failed to send lookup embeds")
	}
}

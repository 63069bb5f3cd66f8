package live

import (
	"spectrum/bot/common"
	"spectrum/domain/interfaces"

	"github.com/bwmarrin/discordgo"
)

// Command and option names
const (
	CommandLive = "live"
	OptionID    = "id"
)

// Feature handles the /live session lookup
type Feature struct {
	lookuper common.Lookuper
	audit    interfaces.AuditPublisher
}

// NewFeature creates a new live feature instance
func NewFeature(lookuper common.Lookuper, audit interfaces.AuditPublisher) *Feature {
	return &Feature{
		lookuper: lookuper,
		audit:    audit,
	}
}

// HandleCommand handles /live
func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.ApplicationCommandData().Name == CommandLive {
		f.handleLive(s, i)
	}
}

package lookup

import (
	"spectrum/bot/common"
	"spectrum/domain/interfaces"
	"spectrum/domain/services"

	"github.com/bwmarrin/discordgo"
)

// Command names
const (
	CommandLookup    = "lookup"
	CommandInventory = "inventory"
	CommandRecord    = "record"
)

// OptionUser is the identifier option shared by every lookup command
const OptionUser = "user"

// Feature handles the identifier-based lookup commands
type Feature struct {
	lookuper common.Lookuper
	audit    interfaces.AuditPublisher
}

// NewFeature creates a new lookup feature instance
func NewFeature(lookuper common.Lookuper, audit interfaces.AuditPublisher) *Feature {
	return &Feature{
		lookuper: lookuper,
		audit:    audit,
	}
}

// HandleCommand handles /lookup, /inventory and /record
func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.ApplicationCommandData().Name {
	case CommandLookup:
		f.handleLookup(s, i, services.ViewBasic)
	case CommandInventory:
		f.handleLookup(s, i, services.ViewInventory)
	case CommandRecord:
		f.handleLookup(s, i, services.ViewRecord)
	}
}

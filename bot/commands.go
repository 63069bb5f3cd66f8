package bot

import (
	"fmt"

	"spectrum/bot/features/live"
	"spectrum/bot/features/lookup"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

var adminPermission int64 = discordgo.PermissionAdministrator

var dmPermission = false

// targetPlayerOption is the raw identifier option shared by the identifier lookups
func targetPlayerOption() *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        lookup.OptionUser,
		Description: "Target Player",
		Required:    true,
	}
}

// Commands returns the slash commands the bot registers
func Commands() []*discordgo.ApplicationCommand {
	restricted := func(cmd *discordgo.ApplicationCommand) *discordgo.ApplicationCommand {
		cmd.DefaultMemberPermissions = &adminPermission
		cmd.DMPermission = &dmPermission
		return cmd
	}

	return []*discordgo.ApplicationCommand{
		restricted(&discordgo.ApplicationCommand{
			Name:        lookup.CommandLookup,
			Description: "Lookup a Player - Restricted",
			Options:     []*discordgo.ApplicationCommandOption{targetPlayerOption()},
		}),
		restricted(&discordgo.ApplicationCommand{
			Name:        lookup.CommandInventory,
			Description: "Lookup a Player's Inventory - Restricted",
			Options:     []*discordgo.ApplicationCommandOption{targetPlayerOption()},
		}),
		restricted(&discordgo.ApplicationCommand{
			Name:        lookup.CommandRecord,
			Description: "Lookup a Player's Bans & Warnings - Restricted",
			Options:     []*discordgo.ApplicationCommandOption{targetPlayerOption()},
		}),
		restricted(&discordgo.ApplicationCommand{
			Name:        live.CommandLive,
			Description: "Lookup a Player on the live server - Restricted",
			Options: []*discordgo.ApplicationCommandOption{
				{
					// Steam IDs exceed the integer option range, so the ID is taken as a string
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        live.OptionID,
					Description: "Steam ID (decimal or steam:<hex>)",
					Required:    true,
				},
			},
		}),
	}
}

// registerCommands registers all slash commands with Discord. Commands are
// registered to GUILD_ID when set, globally otherwise.
func (b *Bot) registerCommands() error {
	commands := Commands()

	registered, err := b.session.ApplicationCommandBulkOverwrite(b.session.State.User.ID, b.config.GuildID, commands)
	if err != nil {
		return fmt.Errorf("failed to register commands: %w", err)
	}

	log.WithFields(log.Fields{
		"count":    len(registered),
		"guild_id": b.config.GuildID,
	}).Info("Registered slash commands")
	return nil
}

package lookup

import (
	"fmt"

	"spectrum/bot/common"
	"spectrum/domain/entities"
	"spectrum/domain/services"

	"github.com/bwmarrin/discordgo"
)

// BuildEmbeds renders a lookup result as one or more embeds
func BuildEmbeds(result *services.LookupResult) []*discordgo.MessageEmbed {
	switch result.View {
	case services.ViewBasic:
		return []*discordgo.MessageEmbed{createUserEmbed(result)}
	case services.ViewInventory:
		return createInventoryEmbeds(result)
	case services.ViewRecord:
		return createRecordEmbeds(result)
	default:
		return nil
	}
}

func playerLine(profile *entities.Profile, identifier string) string {
	return fmt.Sprintf("**%s** (`%s`)", profile.DisplayName, identifier)
}

func thumbnail(profile *entities.Profile) *discordgo.MessageEmbedThumbnail {
	if profile.AvatarURL == "" {
		return nil
	}
	return &discordgo.MessageEmbedThumbnail{URL: profile.AvatarURL}
}

func createUserEmbed(result *services.LookupResult) *discordgo.MessageEmbed {
	economy := result.Economy
	description := playerLine(result.Profile, result.Identifier)
	if economy.IsStaff() {
		description += fmt.Sprintf(" - Staff (%d)", economy.StaffLevel)
	}

	return &discordgo.MessageEmbed{
		Title:       "User Lookup",
		Description: description,
		Color:       common.ColorPrimary,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Bank", Value: common.FormatMoney(int64(economy.BankBalance)), Inline: true},
			{Name: "Cash (Clean)", Value: common.FormatMoney(int64(economy.CleanCash)), Inline: true},
			{Name: "Cash (Dirty)", Value: common.FormatMoney(int64(economy.DirtyCash)), Inline: true},
		},
		Thumbnail: thumbnail(result.Profile),
	}
}

func createInventoryEmbeds(result *services.LookupResult) []*discordgo.MessageEmbed {
	template := &discordgo.MessageEmbed{
		Title:       "Inventory Lookup",
		Description: playerLine(result.Profile, result.Identifier),
		Color:       common.ColorInfo,
		Thumbnail:   thumbnail(result.Profile),
	}

	names := result.Inventory.ItemNames()
	if len(names) == 0 {
		template.Description += "\n\nThis player has no items"
		return []*discordgo.MessageEmbed{template}
	}

	fields := make([]*discordgo.MessageEmbedField, 0, len(names))
	for _, name := range names {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   name,
			Value:  common.FormatQuantity(result.Inventory[name]),
			Inline: true,
		})
	}
	return common.SplitFields(template, fields)
}

func createRecordEmbeds(result *services.LookupResult) []*discordgo.MessageEmbed {
	record := result.Record
	description := playerLine(result.Profile, result.Identifier)

	if record.IsClean() {
		return []*discordgo.MessageEmbed{{
			Title:       "Clean Record",
			Description: description + "\n\nThis player has a squeaky clean record",
			Color:       common.ColorSuccess,
			Thumbnail:   thumbnail(result.Profile),
		}}
	}

	fields := make([]*discordgo.MessageEmbedField, 0, record.Count())
	for _, ban := range record.Bans {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  "Banned By: " + ban.IssuingStaff,
			Value: formatBan(ban),
		})
	}
	for _, warning := range record.Warnings {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  "Warned By: " + warning.IssuingStaff,
			Value: fmt.Sprintf("ID: %d\nReason: %s", warning.ID, warning.Reason),
		})
	}

	return common.SplitFields(&discordgo.MessageEmbed{
		Title:       "Record Lookup",
		Description: description,
		Color:       common.ColorDanger,
		Thumbnail:   thumbnail(result.Profile),
	}, fields)
}

func formatBan(ban *entities.Ban) string {
	lifted := ""
	if ban.IsLifted() {
		lifted = " (Lifted)"
	}
	return fmt.Sprintf("ID: %d%s\nReason: %s\nExpires: %s",
		ban.ID, lifted, ban.Reason, common.FormatUnixTimestamp(ban.Expiry))
}

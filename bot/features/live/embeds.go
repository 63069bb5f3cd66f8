package live

import (
	"fmt"
	"sort"

	"spectrum/bot/common"
	"spectrum/domain/entities"
	"spectrum/domain/services"

	"github.com/bwmarrin/discordgo"
)

// BuildEmbeds renders a live session snapshot
func BuildEmbeds(result *services.LookupResult) []*discordgo.MessageEmbed {
	session := result.Session

	description := fmt.Sprintf("**%s** (`%s`)", session.Name, result.Identifier)
	if session.IsStaff() {
		description += fmt.Sprintf(" - Staff (%d)", session.StaffLevel)
	}

	status, color := "🔴 Offline", common.ColorWarning
	if session.Online {
		status, color = "🟢 Online", common.ColorSuccess
	}

	fields := []*discordgo.MessageEmbedField{
		{Name: "Status", Value: status, Inline: false},
		{Name: "Bank", Value: common.FormatMoney(int64(session.Money.Bank)), Inline: true},
		{Name: "Cash (Clean)", Value: common.FormatMoney(int64(session.Money.Clean)), Inline: true},
		{Name: "Cash (Dirty)", Value: common.FormatMoney(int64(session.Money.Dirty)), Inline: true},
	}
	fields = append(fields, countFields("Item", session.Items)...)
	fields = append(fields, weaponFields(session.Weapons)...)
	fields = append(fields, countFields("Ammo", session.Ammo)...)

	return common.SplitFields(&discordgo.MessageEmbed{
		Title:       "Live Lookup",
		Description: description,
		Color:       color,
		Footer:      footer(session),
	}, fields)
}

func footer(session *entities.SessionSnapshot) *discordgo.MessageEmbedFooter {
	if session.ID == "" {
		return nil
	}
	return &discordgo.MessageEmbedFooter{Text: "Session " + session.ID}
}

func countFields(label string, counts map[string]int64) []*discordgo.MessageEmbedField {
	fields := make([]*discordgo.MessageEmbedField, 0, len(counts))
	for _, name := range sortedKeys(counts) {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   label + ": " + name,
			Value:  common.FormatQuantity(counts[name]),
			Inline: true,
		})
	}
	return fields
}

func weaponFields(weapons map[string]string) []*discordgo.MessageEmbedField {
	fields := make([]*discordgo.MessageEmbedField, 0, len(weapons))
	for _, name := range sortedKeys(weapons) {
		value := weapons[name]
		if value == "" {
			value = "-"
		}
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   "Weapon: " + name,
			Value:  value,
			Inline: true,
		})
	}
	return fields
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

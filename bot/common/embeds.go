package common

import (
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"
)

const continued = " (cont.)"

// EmbedLength counts the characters Discord charges against MaxEmbedChars
func EmbedLength(e *discordgo.MessageEmbed) int {
	n := utf8.RuneCountInString(e.Title) + utf8.RuneCountInString(e.Description)
	for _, f := range e.Fields {
		n += fieldLength(f)
	}
	if e.Footer != nil {
		n += utf8.RuneCountInString(e.Footer.Text)
	}
	if e.Author != nil {
		n += utf8.RuneCountInString(e.Author.Name)
	}
	return n
}

func fieldLength(f *discordgo.MessageEmbedField) int {
	return utf8.RuneCountInString(f.Name) + utf8.RuneCountInString(f.Value)
}

// SplitFields spreads fields across as many embeds as needed so none exceeds
// MaxEmbedFields or MaxEmbedChars. Values longer than MaxFieldValueChars
// carry over into continuation fields. The template's title and color repeat
// on each page; the description and thumbnail appear only on the first.
func SplitFields(template *discordgo.MessageEmbed, fields []*discordgo.MessageEmbedField) []*discordgo.MessageEmbed {
	first := *template
	first.Fields = nil

	page := &first
	embeds := []*discordgo.MessageEmbed{page}
	size := EmbedLength(page)

	for _, field := range fields {
		for _, part := range splitValue(field) {
			n := fieldLength(part)
			if len(page.Fields) == MaxEmbedFields || (len(page.Fields) > 0 && size+n > MaxEmbedChars) {
				page = &discordgo.MessageEmbed{
					Title: template.Title + continued,
					Color: template.Color,
				}
				embeds = append(embeds, page)
				size = EmbedLength(page)
			}
			page.Fields = append(page.Fields, part)
			size += n
		}
	}
	return embeds
}

// splitValue cuts a field whose value is too long into consecutive fields,
// preferring to break after a newline.
func splitValue(field *discordgo.MessageEmbedField) []*discordgo.MessageEmbedField {
	name := truncateRunes(field.Name, MaxFieldNameChars)
	value := []rune(field.Value)
	if len(value) <= MaxFieldValueChars {
		if name == field.Name {
			return []*discordgo.MessageEmbedField{field}
		}
		return []*discordgo.MessageEmbedField{{Name: name, Value: field.Value, Inline: field.Inline}}
	}

	contName := truncateRunes(field.Name, MaxFieldNameChars-utf8.RuneCountInString(continued)) + continued
	var parts []*discordgo.MessageEmbedField
	for len(value) > 0 {
		end := min(MaxFieldValueChars, len(value))
		if end < len(value) {
			for j := end - 1; j > end/2; j-- {
				if value[j] == '\n' {
					end = j + 1
					break
				}
			}
		}
		partName := name
		if len(parts) > 0 {
			partName = contName
		}
		parts = append(parts, &discordgo.MessageEmbedField{Name: partName, Value: string(value[:end]), Inline: field.Inline})
		value = value[end:]
	}
	return parts
}

func truncateRunes(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	return string([]rune(s)[:limit])
}

// GroupEmbeds packs embeds into messages that each stay within MaxEmbeds and
// MaxEmbedChars, keeping their order.
func GroupEmbeds(embeds []*discordgo.MessageEmbed) [][]*discordgo.MessageEmbed {
	var groups [][]*discordgo.MessageEmbed
	var current []*discordgo.MessageEmbed
	size := 0
	for _, e := range embeds {
		n := EmbedLength(e)
		if len(current) == MaxEmbeds || (len(current) > 0 && size+n > MaxEmbedChars) {
			groups = append(groups, current)
			current, size = nil, 0
		}
		current = append(current, e)
		size += n
	}
	if len(current) > 0 {
		groups = append(groups, current)
	}
	return groups
}

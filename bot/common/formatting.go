package common

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var moneyPrinter = message.NewPrinter(language.BritishEnglish)

// FormatMoney renders an amount with a dollar sign and en-GB thousands grouping
func FormatMoney(amount int64) string {
	if amount < 0 {
		return "-$" + moneyPrinter.Sprintf("%d", -amount)
	}
	return "$" + moneyPrinter.Sprintf("%d", amount)
}

// FormatQuantity renders an item count with thousands grouping
func FormatQuantity(n int64) string {
	return moneyPrinter.Sprintf("%d", n)
}

// FormatDiscordTimestamp formats a time as a Discord timestamp that displays in user's local timezone
// Format types: "t" = short time, "T" = long time, "d" = short date, "D" = long date,
// "f" = short date/time, "F" = long date/time, "R" = relative time
func FormatDiscordTimestamp(t time.Time, format string) string {
	return fmt.Sprintf("<t:%d:%s>", t.Unix(), format)
}

// FormatUnixTimestamp renders a unix timestamp as a Discord timestamp in the default style
func FormatUnixTimestamp(unix int64) string {
	return fmt.Sprintf("<t:%d>", unix)
}

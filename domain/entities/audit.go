package entities

import "time"

// LookupAudited is published once per lookup command, whatever its outcome
type LookupAudited struct {
	EventID     string    `json:"event_id"`
	View        string    `json:"view"`
	Identifier  string    `json:"identifier"`
	RequestedBy string    `json:"requested_by"`
	GuildID     string    `json:"guild_id"`
	Outcome     string    `json:"outcome"`
	Timestamp   time.Time `json:"timestamp"`
}

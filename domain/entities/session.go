package entities

// SessionMoney holds the balances reported by a live game session
type SessionMoney struct {
	Clean int32 `json:"clean"`
	Dirty int32 `json:"dirty"`
	Bank  int32 `json:"bank"`
}

// SessionSnapshot is a player's state on the running game server.
// It is only meaningful while the session is live and is never persisted.
type SessionSnapshot struct {
	ID         string            `json:"id"`
	Online     bool              `json:"online"`
	Name       string            `json:"name"`
	StaffLevel int16             `json:"staff"`
	Money      SessionMoney      `json:"money"`
	Items      map[string]int64  `json:"items"`
	Weapons    map[string]string `json:"weapons"`
	Ammo       map[string]int64  `json:"ammo"`
}

// IsStaff reports whether the player holds any staff level
func (s *SessionSnapshot) IsStaff() bool {
	return s.StaffLevel > 0
}

package entities

// Ban is a historical ban issued against a player
type Ban struct {
	ID           int32  `db:"id" json:"id"`
	Expiry       int64  `db:"expiry" json:"expiry"` // unix seconds
	Reason       string `db:"reason" json:"reason"`
	IssuingStaff string `db:"staff" json:"staff"`
	Subject      string `db:"user" json:"user"`
	Active       bool   `db:"active" json:"active"`
}

// IsLifted reports whether the ban is no longer in force
func (b *Ban) IsLifted() bool {
	return !b.Active
}

// Warning is a historical warning issued against a player
type Warning struct {
	ID           int32  `db:"id" json:"id"`
	Reason       string `db:"reason" json:"reason"`
	IssuingStaff string `db:"staff" json:"staff"`
	Subject      string `db:"user" json:"user"`
}

// PlayerRecord is the combined moderation history of a player
type PlayerRecord struct {
	Bans     []*Ban     `json:"bans"`
	Warnings []*Warning `json:"warnings"`
}

// Count returns the total number of bans and warnings
func (r *PlayerRecord) Count() int {
	return len(r.Bans) + len(r.Warnings)
}

// IsClean reports whether the player has neither bans nor warnings
func (r *PlayerRecord) IsClean() bool {
	return r.Count() == 0
}

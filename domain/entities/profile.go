package entities

// Profile is a player's public identity as reported by the identity provider.
// CanonicalID is for display only and is never used as a store key.
type Profile struct {
	CanonicalID string `json:"canonical_id"`
	DisplayName string `json:"display_name"`
	AvatarURL   string `json:"avatar_url"`
}

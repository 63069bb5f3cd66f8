package interfaces

import (
	"context"

	"spectrum/domain/entities"
)

// RecordStore defines read access to the game's persistent player records.
// Every lookup is keyed by the raw identifier string exactly as supplied.
type RecordStore interface {
	// GetEconomy returns the player's balances and staff level.
	// Returns entities.ErrPlayerNotFound when no row matches.
	GetEconomy(ctx context.Context, id string) (*entities.EconomyRecord, error)

	// GetInventory returns the player's inventory.
	// Returns entities.ErrPlayerNotFound when no row matches.
	GetInventory(ctx context.Context, id string) (entities.InventorySnapshot, error)

	// GetBans returns all bans issued against the player, possibly none
	GetBans(ctx context.Context, id string) ([]*entities.Ban, error)

	// GetWarnings returns all warnings issued against the player, possibly none
	GetWarnings(ctx context.Context, id string) ([]*entities.Warning, error)
}

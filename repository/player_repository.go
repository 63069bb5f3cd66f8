package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"spectrum/database"
	"spectrum/domain/entities"

	"github.com/jackc/pgx/v5"
)

// PlayerRepository reads economy, inventory and moderation records from the game database
type PlayerRepository struct {
	q Queryable
}

// NewPlayerRepository creates a new player repository
func NewPlayerRepository(db *database.DB) *PlayerRepository {
	return &PlayerRepository{q: db.Pool}
}

// NewPlayerRepositoryWithQueryable creates a player repository on any Queryable
func NewPlayerRepositoryWithQueryable(q Queryable) *PlayerRepository {
	return &PlayerRepository{q: q}
}

// GetEconomy retrieves a player's balances and staff level
func (r *PlayerRepository) GetEconomy(ctx context.Context, id string) (*entities.EconomyRecord, error) {
	query := `
		SELECT id, bank, clean_money, dirty_money, staff
		FROM users
		WHERE id = $1
	`

	var record entities.EconomyRecord
	err := r.q.QueryRow(ctx, query, id).Scan(
		&record.ID,
		&record.BankBalance,
		&record.CleanCash,
		&record.DirtyCash,
		&record.StaffLevel,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: no user %q", entities.ErrPlayerNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get economy for %q: %w", entities.ErrStoreUnavailable, id, err)
	}

	return &record, nil
}

// GetInventory retrieves a player's inventory. A NULL inventory column is an empty inventory.
func (r *PlayerRepository) GetInventory(ctx context.Context, id string) (entities.InventorySnapshot, error) {
	query := `SELECT inventory FROM users WHERE id = $1`

	var raw []byte
	err := r.q.QueryRow(ctx, query, id).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: no user %q", entities.ErrPlayerNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get inventory for %q: %w", entities.ErrStoreUnavailable, id, err)
	}

	inventory := entities.InventorySnapshot{}
	if len(raw) == 0 {
		return inventory, nil
	}
	if err := json.Unmarshal(raw, &inventory); err != nil {
		return nil, fmt.Errorf("%w: malformed inventory for %q: %w", entities.ErrStoreUnavailable, id, err)
	}

	return inventory, nil
}

// GetBans returns every ban issued against the player, oldest first
func (r *PlayerRepository) GetBans(ctx context.Context, id string) ([]*entities.Ban, error) {
	query := `
		SELECT id, expiry, reason, staff, "user", active
		FROM bans
		WHERE "user" = $1
		ORDER BY id
	`

	rows, err := r.q.Query(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get bans for %q: %w", entities.ErrStoreUnavailable, id, err)
	}
	defer rows.Close()

	bans := []*entities.Ban{}
	for rows.Next() {
		var ban entities.Ban
		err := rows.Scan(
			&ban.ID,
			&ban.Expiry,
			&ban.Reason,
			&ban.IssuingStaff,
			&ban.Subject,
			&ban.Active,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to scan ban: %w", entities.ErrStoreUnavailable, err)
		}
		bans = append(bans, &ban)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: failed to iterate bans: %w", entities.ErrStoreUnavailable, err)
	}

	return bans, nil
}

// GetWarnings returns every warning issued against the player, oldest first
func (r *PlayerRepository) GetWarnings(ctx context.Context, id string) ([]*entities.Warning, error) {
	query := `
		SELECT id, reason, staff, "user"
		FROM warnings
		WHERE "user" = $1
		ORDER BY id
	`

	rows, err := r.q.Query(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get warnings for %q: %w", entities.ErrStoreUnavailable, id, err)
	}
	defer rows.Close()

	warnings := []*entities.Warning{}
	for rows.Next() {
		var warning entities.Warning
		err := rows.Scan(
			&warning.ID,
			&warning.Reason,
			&warning.IssuingStaff,
			&warning.Subject,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to scan warning: %w", entities.ErrStoreUnavailable, err)
		}
		warnings = append(warnings, &warning)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: failed to iterate warnings: %w", entities.ErrStoreUnavailable, err)
	}

	return warnings, nil
}

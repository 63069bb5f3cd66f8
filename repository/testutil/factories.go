package testutil

import (
	"context"
	"encoding/json"
	"testing"

	"spectrum/domain/entities"

	"github.com/stretchr/testify/require"
)

// CreateTestEconomy creates an economy record with default values
func CreateTestEconomy(id string) *entities.EconomyRecord {
	return &entities.EconomyRecord{
		ID:          id,
		BankBalance: 1000000,
		CleanCash:   500,
		DirtyCash:   0,
		StaffLevel:  0,
	}
}

// CreateTestBan creates an active ban against subject
func CreateTestBan(subject, staff, reason string, expiry int64) *entities.Ban {
	return &entities.Ban{
		Expiry:       expiry,
		Reason:       reason,
		IssuingStaff: staff,
		Subject:      subject,
		Active:       true,
	}
}

// CreateTestWarning creates a warning against subject
func CreateTestWarning(subject, staff, reason string) *entities.Warning {
	return &entities.Warning{
		Reason:       reason,
		IssuingStaff: staff,
		Subject:      subject,
	}
}

// InsertUser seeds a users row. A nil inventory is stored as NULL.
func (td *TestDatabase) InsertUser(t *testing.T, record *entities.EconomyRecord, inventory entities.InventorySnapshot) {
	t.Helper()

	var inventoryJSON []byte
	if inventory != nil {
		var err error
		inventoryJSON, err = json.Marshal(inventory)
		require.NoError(t, err)
	}

	_, err := td.Writer.Exec(context.Background(), `
		INSERT INTO users (id, bank, clean_money, dirty_money, staff, inventory)
		VALUES ($1, $2, $3, $4, $5, $6::jsonb)
	`, record.ID, record.BankBalance, record.CleanCash, record.DirtyCash, record.StaffLevel, inventoryJSON)
	require.NoError(t, err)
}

// InsertBan seeds a bans row and sets the generated ID on ban
func (td *TestDatabase) InsertBan(t *testing.T, ban *entities.Ban) {
	t.Helper()

	err := td.Writer.QueryRow(context.Background(), `
		INSERT INTO bans (expiry, reason, staff, "user", active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, ban.Expiry, ban.Reason, ban.IssuingStaff, ban.Subject, ban.Active).Scan(&ban.ID)
	require.NoError(t, err)
}

// InsertWarning seeds a warnings row and sets the generated ID on warning
func (td *TestDatabase) InsertWarning(t *testing.T, warning *entities.Warning) {
	t.Helper()

	err := td.Writer.QueryRow(context.Background(), `
		INSERT INTO warnings (reason, staff, "user")
		VALUES ($1, $2, $3)
		RETURNING id
	`, warning.Reason, warning.IssuingStaff, warning.Subject).Scan(&warning.ID)
	require.NoError(t, err)
}

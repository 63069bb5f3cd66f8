package entities

import "sort"

// EconomyRecord is one row of the users table
type EconomyRecord struct {
	ID          string `db:"id" json:"id"`
	BankBalance int32  `db:"bank" json:"bank"`
	CleanCash   int32  `db:"clean_money" json:"clean_money"`
	DirtyCash   int32  `db:"dirty_money" json:"dirty_money"`
	StaffLevel  int16  `db:"staff" json:"staff"`
}

// IsStaff reports whether the player holds any staff level
func (e *EconomyRecord) IsStaff() bool {
	return e.StaffLevel > 0
}

// InventorySnapshot maps item names to quantities
type InventorySnapshot map[string]int64

// ItemNames returns the item names in sorted order
func (inv InventorySnapshot) ItemNames() []string {
	names := make([]string, 0, len(inv))
	for name := range inv {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

package models

import "database/sql"

// GroceryItem is a shared list row owned by a family group, not an
// individual. FamilyCode is captured once from the creator at insert time; a
// later change to the creator's group does not rescope the item. UserID
// records who added it.
type GroceryItem struct {
	ID         int64
	Title      string
	FamilyCode sql.NullString
	UserID     string
}

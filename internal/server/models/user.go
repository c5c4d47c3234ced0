// Package models holds the row models shared by repositories and services.
package models

import "database/sql"

// User is one registered identity. PasswordHash is a bcrypt digest and is
// immutable after creation (there is no change-password flow). FamilyCode is
// NULL for solo users; it scopes the shared grocery list.
type User struct {
	UserID       string
	PasswordHash string
	FamilyCode   sql.NullString
}

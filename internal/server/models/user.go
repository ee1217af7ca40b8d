// Package models contains the row structs persisted by the server-side
// repositories.
package models

type User struct {
	ID           int64
	Username     string
	PasswordHash string
}

package entity

import (
	"time"
)

// User is the aggregate root for the account domain
// PasswordHash holds the bcrypt record, never the plaintext.
// Accounts are immutable after creation; there is no update path.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Gender       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

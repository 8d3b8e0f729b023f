package domain

import "time"

// User is an identity record. Email and username are each globally unique.
// PasswordHash is a bcrypt digest and must never leave the server.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

package domain

import "time"

// Notice is a board announcement. Listings are ordered most recent first.
type Notice struct {
	ID        string
	Title     string
	Content   string
	CreatedAt time.Time
}

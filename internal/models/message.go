package models

import "time"

// Sender tags for chat messages.
const (
	SenderUser = "user"
	SenderBot  = "bot"
)

// MessageDB represents a single chat message in the database
type MessageDB struct {
	ID        int64     `json:"id" db:"id"`                 // Primary key
	UserID    int64     `json:"user_id" db:"user_id"`       // Owning user
	Sender    string    `json:"sender" db:"sender"`         // "user" or "bot"
	Message   string    `json:"message" db:"message"`       // Message text
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Insert timestamp (UTC)
}

package repositories

import (
	"context"
	"strings"

	"github.com/avdeev89/chatbot-server/internal/logger"
	"github.com/avdeev89/chatbot-server/internal/models"
	"github.com/jmoiron/sqlx"
)

type MessageWriteRepository struct {
	db *sqlx.DB
}

func NewMessageWriteRepository(db *sqlx.DB) *MessageWriteRepository {
	return &MessageWriteRepository{db: db}
}

// Save inserts a single message for a user. The insert timestamp is assigned
// by the database.
func (r *MessageWriteRepository) Save(ctx context.Context, userID int64, sender, message string) error {
	const query = `
		INSERT INTO messages (user_id, sender, message)
		VALUES ($1, $2, $3)
	`

	_, err := r.db.ExecContext(ctx, query, userID, sender, message)

	logger.Log.Debugw("message write",
		"query", strings.Join(strings.Fields(query), " "),
		"user_id", userID,
		"sender", sender,
		"error", err,
	)

	return err
}

type MessageReadRepository struct {
	db *sqlx.DB
}

func NewMessageReadRepository(db *sqlx.DB) *MessageReadRepository {
	return &MessageReadRepository{db: db}
}

// ListByUser returns all messages of a user in chronological order.
// Ties on the timestamp are broken by insertion order.
func (r *MessageReadRepository) ListByUser(ctx context.Context, userID int64) ([]models.MessageDB, error) {
	const query = `
		SELECT id, user_id, sender, message, created_at
		FROM messages
		WHERE user_id = $1
		ORDER BY created_at ASC, id ASC
	`

	var messages []models.MessageDB
	err := r.db.SelectContext(ctx, &messages, query, userID)

	logger.Log.Debugw("message list",
		"query", strings.Join(strings.Fields(query), " "),
		"user_id", userID,
		"count", len(messages),
		"error", err,
	)

	return messages, err
}

// ListRecentByUser returns up to limit most recent messages of a user,
// newest first.
func (r *MessageReadRepository) ListRecentByUser(ctx context.Context, userID int64, limit int) ([]models.MessageDB, error) {
	const query = `
		SELECT id, user_id, sender, message, created_at
		FROM messages
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2
	`

	var messages []models.MessageDB
	err := r.db.SelectContext(ctx, &messages, query, userID, limit)

	logger.Log.Debugw("message list recent",
		"query", strings.Join(strings.Fields(query), " "),
		"user_id", userID,
		"limit", limit,
		"count", len(messages),
		"error", err,
	)

	return messages, err
}

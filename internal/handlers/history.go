package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/avdeev89/chatbot-server/internal/logger"
	"github.com/avdeev89/chatbot-server/internal/middlewares"
	"github.com/avdeev89/chatbot-server/internal/models"
)

// HistoryReader defines the interface that the chat service must implement.
type HistoryReader interface {
	History(ctx context.Context, userID int64) ([]models.MessageDB, error)
}

// HistoryEntry is one message in the conversation history
// swagger:model HistoryEntry
type HistoryEntry struct {
	// Sender tag, "user" or "bot"
	// example: user
	Sender string `json:"sender"`

	// Message text
	// example: Hello!
	Message string `json:"message"`

	// Creation timestamp, RFC 3339 UTC
	// example: 2025-01-02T15:04:05Z
	Timestamp string `json:"timestamp"`
}

// HistoryResponse represents the full conversation history, oldest first
// swagger:model HistoryResponse
type HistoryResponse struct {
	History []HistoryEntry `json:"history"`
}

// HistoryErrorResponse represents an error response for history
// swagger:model HistoryErrorResponse
type HistoryErrorResponse struct {
	// Error message
	// example: Internal server error
	Msg string `json:"msg"`
}

// NewHistoryHandler returns an HTTP handler for fetching conversation history.
// @Summary Get conversation history
// @Description Returns all messages of the authenticated user, oldest first
// @Tags chat
// @Produce json
// @Success 200 {object} handlers.HistoryResponse "Conversation history"
// @Failure 401 {object} middlewares.AuthErrorResponse "Invalid or expired token"
// @Router /history [get]
// @Security BearerAuth
func NewHistoryHandler(svc HistoryReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		userID := middlewares.GetUserID(r.Context())

		messages, err := svc.History(r.Context(), userID)
		if err != nil {
			logger.Log.Errorw("internal server error", "userID", userID, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(HistoryErrorResponse{
				Msg: "Internal server error",
			})
			return
		}

		entries := make([]HistoryEntry, 0, len(messages))
		for _, m := range messages {
			entries = append(entries, HistoryEntry{
				Sender:    m.Sender,
				Message:   m.Message,
				Timestamp: m.CreatedAt.UTC().Format(time.RFC3339),
			})
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(HistoryResponse{
			History: entries,
		})
	}
}

package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/avdeev89/chatbot-server/internal/logger"
	"github.com/avdeev89/chatbot-server/internal/middlewares"
)

// Chatter defines the interface that the chat service must implement.
type Chatter interface {
	Chat(ctx context.Context, userID int64, message string) (string, error)
}

// ChatRequest represents the JSON body for a chat interaction
// swagger:model ChatRequest
type ChatRequest struct {
	// User message
	// required: true
	// example: Hello, who are you?
	Message string `json:"message"`
}

// ChatResponse represents a successful chat response
// swagger:model ChatResponse
type ChatResponse struct {
	// Bot reply text
	// example: Hi! I'm a helpful assistant.
	Response string `json:"response"`
}

// ChatErrorResponse represents an error response for chat
// swagger:model ChatErrorResponse
type ChatErrorResponse struct {
	// Error message
	// example: Message required
	Msg string `json:"msg"`
}

// NewChatHandler returns an HTTP handler for chat interactions.
// @Summary Send a chat message
// @Description Persists the user message, asks the model for a reply using recent conversation context and returns the reply. On model failure a fixed fallback reply is returned with status 200.
// @Tags chat
// @Accept json
// @Produce json
// @Param chatRequest body handlers.ChatRequest true "Chat request"
// @Success 200 {object} handlers.ChatResponse "Bot reply"
// @Failure 400 {object} handlers.ChatErrorResponse "Missing message"
// @Failure 401 {object} middlewares.AuthErrorResponse "Invalid or expired token"
// @Router /chat [post]
// @Security BearerAuth
func NewChatHandler(svc Chatter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		userID := middlewares.GetUserID(r.Context())

		var req ChatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Message == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ChatErrorResponse{
				Msg: "Message required",
			})
			return
		}

		reply, err := svc.Chat(r.Context(), userID, req.Message)
		if err != nil {
			logger.Log.Errorw("internal server error", "userID", userID, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ChatErrorResponse{
				Msg: "Internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ChatResponse{
			Response: reply,
		})
	}
}

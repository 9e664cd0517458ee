package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/avdeev89/chatbot-server/internal/logger"
	"github.com/avdeev89/chatbot-server/internal/middlewares"
	"github.com/avdeev89/chatbot-server/internal/services"
)

// ProfileReader defines the interface that the profile service must implement.
type ProfileReader interface {
	GetUsername(ctx context.Context, userID int64) (string, error)
}

// ProfileResponse represents a successful profile response
// swagger:model ProfileResponse
type ProfileResponse struct {
	// Username of the authenticated user
	// example: john_doe
	Username string `json:"username"`
}

// ProfileErrorResponse represents an error response for profile
// swagger:model ProfileErrorResponse
type ProfileErrorResponse struct {
	// Error message
	// example: Unauthorized
	Msg string `json:"msg"`
}

// NewProfileHandler returns an HTTP handler for fetching the user profile.
// @Summary Get user profile
// @Description Returns the username of the authenticated user
// @Tags profile
// @Produce json
// @Success 200 {object} handlers.ProfileResponse "User profile"
// @Failure 401 {object} middlewares.AuthErrorResponse "Invalid or expired token"
// @Router /profile [get]
// @Security BearerAuth
func NewProfileHandler(svc ProfileReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		userID := middlewares.GetUserID(r.Context())

		username, err := svc.GetUsername(r.Context(), userID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserDoesNotExist):
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(ProfileErrorResponse{
					Msg: "Unauthorized",
				})
			default:
				logger.Log.Errorw("internal server error", "userID", userID, "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ProfileErrorResponse{
					Msg: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ProfileResponse{
			Username: username,
		})
	}
}

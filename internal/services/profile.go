package services

import (
	"context"

	"github.com/avdeev89/chatbot-server/internal/logger"
	"github.com/avdeev89/chatbot-server/internal/models"
)

// UserByIDReader reads users by their id.
type UserByIDReader interface {
	GetByID(ctx context.Context, id int64) (*models.UserDB, error)
}

// ProfileCache caches usernames by user id.
type ProfileCache interface {
	GetUsername(ctx context.Context, userID int64) (string, error)
	SetUsername(ctx context.Context, userID int64, username string) error
}

// ProfileService resolves profile data for authenticated users.
type ProfileService struct {
	reader UserByIDReader
	cache  ProfileCache
}

// NewProfileService creates a new ProfileService.
func NewProfileService(reader UserByIDReader, cache ProfileCache) *ProfileService {
	return &ProfileService{
		reader: reader,
		cache:  cache,
	}
}

// GetUsername returns the username for a user id. Usernames are immutable, so
// a cache hit never needs invalidation.
func (s *ProfileService) GetUsername(ctx context.Context, userID int64) (string, error) {
	if s.cache != nil {
		if username, err := s.cache.GetUsername(ctx, userID); err == nil {
			return username, nil
		}
	}

	user, err := s.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "userID", userID, "error", err)
		return "", err
	}
	if user == nil {
		return "", ErrUserDoesNotExist
	}

	if s.cache != nil {
		if err := s.cache.SetUsername(ctx, userID, user.Username); err != nil {
			logger.Log.Warnw("failed to cache username", "userID", userID, "error", err)
		}
	}

	return user.Username, nil
}

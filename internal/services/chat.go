package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/avdeev89/chatbot-server/internal/facades"
	"github.com/avdeev89/chatbot-server/internal/logger"
	"github.com/avdeev89/chatbot-server/internal/models"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

const (
	// HistoryWindow is how many recent messages feed the prompt.
	HistoryWindow = 5

	// FallbackResponse is served whenever the completion call fails.
	FallbackResponse = "Sorry, I'm having trouble responding right now."
)

// MessageWriter defines write operations for chat messages.
type MessageWriter interface {
	Save(ctx context.Context, userID int64, sender, message string) error
}

// MessageReader defines read operations for chat messages.
type MessageReader interface {
	ListByUser(ctx context.Context, userID int64) ([]models.MessageDB, error)
	ListRecentByUser(ctx context.Context, userID int64, limit int) ([]models.MessageDB, error)
}

// Completer produces a model reply for a prompt.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// ChatService runs chat interactions and serves message history.
type ChatService struct {
	writeRepo   MessageWriter
	readRepo    MessageReader
	llm         Completer
	kafkaWriter KafkaWriter
}

// NewChatService creates a new ChatService.
func NewChatService(
	writeRepo MessageWriter,
	readRepo MessageReader,
	llm Completer,
	kafkaWriter KafkaWriter,
) *ChatService {
	return &ChatService{
		writeRepo:   writeRepo,
		readRepo:    readRepo,
		llm:         llm,
		kafkaWriter: kafkaWriter,
	}
}

// Chat persists the incoming user message, assembles a prompt from the most
// recent conversation turns, asks the model for a reply and persists it.
// The recent window is fetched after the user message is saved, so the prompt
// summary always includes the message currently being answered.
func (s *ChatService) Chat(ctx context.Context, userID int64, message string) (string, error) {
	if err := s.writeRepo.Save(ctx, userID, models.SenderUser, message); err != nil {
		logger.Log.Errorw("failed to save user message", "userID", userID, "error", err)
		return "", err
	}

	recent, err := s.readRepo.ListRecentByUser(ctx, userID, HistoryWindow)
	if err != nil {
		logger.Log.Errorw("failed to fetch recent messages", "userID", userID, "error", err)
		return "", err
	}
	// Newest-first from the repository, chronological for the prompt.
	for i, j := 0, len(recent)-1; i < j; i, j = i+1, j-1 {
		recent[i], recent[j] = recent[j], recent[i]
	}

	prompt := formatPrompt(summarizeConversation(recent), message)

	degraded := false
	reply, err := s.llm.Complete(ctx, prompt)
	if err != nil {
		logCompletionFailure(userID, err)
		reply = FallbackResponse
		degraded = true
	}

	if err := s.writeRepo.Save(ctx, userID, models.SenderBot, reply); err != nil {
		logger.Log.Errorw("failed to save bot message", "userID", userID, "error", err)
		return "", err
	}

	s.publishChatEvent(ctx, models.ChatEvent{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		UserID:    userID,
		UserChars: len(message),
		BotChars:  len(reply),
		Degraded:  degraded,
	})

	return reply, nil
}

// History returns all messages of a user in chronological order.
func (s *ChatService) History(ctx context.Context, userID int64) ([]models.MessageDB, error) {
	messages, err := s.readRepo.ListByUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list messages", "userID", userID, "error", err)
		return nil, err
	}
	return messages, nil
}

// logCompletionFailure records which failure variant was absorbed into the
// fallback reply.
func logCompletionFailure(userID int64, err error) {
	switch {
	case errors.Is(err, facades.ErrBadStatus):
		logger.Log.Warnw("completion degraded: bad status", "userID", userID, "error", err)
	case errors.Is(err, facades.ErrMalformedResponse):
		logger.Log.Warnw("completion degraded: malformed response", "userID", userID, "error", err)
	default:
		logger.Log.Warnw("completion degraded: request failed", "userID", userID, "error", err)
	}
}

// summarizeConversation renders messages as "<sender>: <text>" lines.
func summarizeConversation(messages []models.MessageDB) string {
	lines := make([]string, 0, len(messages))
	for _, msg := range messages {
		lines = append(lines, fmt.Sprintf("%s: %s", msg.Sender, msg.Message))
	}
	return strings.Join(lines, "\n")
}

// formatPrompt combines the conversation summary and the new user query.
func formatPrompt(summary, userQuery string) string {
	return fmt.Sprintf(
		"You are a helpful assistant. Here's the conversation so far: %s. Now respond to this: %s",
		summary, userQuery,
	)
}

// publishChatEvent publishes a chat event to Kafka, fire-and-forget.
func (s *ChatService) publishChatEvent(ctx context.Context, event models.ChatEvent) {
	if s.kafkaWriter == nil {
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal chat event", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish chat event", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("chat event published", "event_id", event.EventID, "user_id", event.UserID)
	}
}

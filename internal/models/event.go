package models

// ChatEvent is published to Kafka after each completed chat interaction.
type ChatEvent struct {
	EventID    string `json:"event_id"`    // Unique event identifier
	Timestamp  int64  `json:"timestamp"`   // Unix timestamp of the interaction
	UserID     int64  `json:"user_id"`     // User who sent the message
	UserChars  int    `json:"user_chars"`  // Length of the user message
	BotChars   int    `json:"bot_chars"`   // Length of the bot reply
	Degraded   bool   `json:"degraded"`    // True when the fallback reply was served
}

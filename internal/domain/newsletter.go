package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Newsletter is one generated document. Created once per successful
// generation call and never mutated afterwards.
type Newsletter struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Topics    string    `json:"topics"`
	CreatedAt time.Time `json:"createdAt"`
}

// GenerationRequest is the ephemeral input to the generation pipeline.
type GenerationRequest struct {
	Topics                 []string `json:"topics"`
	AdditionalInstructions string   `json:"additionalInstructions,omitempty"`
	UsePersonalization     bool     `json:"usePersonalization,omitempty"`
}

// CleanTopics returns the topic list with blank entries trimmed away,
// preserving order.
func (r GenerationRequest) CleanTopics() []string {
	var topics []string
	for _, t := range r.Topics {
		t = strings.TrimSpace(t)
		if t != "" {
			topics = append(topics, t)
		}
	}
	return topics
}

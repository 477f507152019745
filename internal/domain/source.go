package domain

import (
	"time"

	"github.com/google/uuid"
)

type SourceStatus string

const (
	SourceActive SourceStatus = "active"
	SourcePaused SourceStatus = "paused"
)

// ContentSource is a site the user subscribed to. It is read-only input to
// prompt composition; only the settings surface mutates it.
type ContentSource struct {
	ID          uuid.UUID    `json:"id"`
	UserID      uuid.UUID    `json:"userId"`
	Name        string       `json:"name"`
	Category    string       `json:"category"`
	Description string       `json:"description,omitempty"`
	Status      SourceStatus `json:"status"`
	CreatedAt   time.Time    `json:"createdAt"`
}

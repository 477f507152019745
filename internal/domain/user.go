package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID   `json:"id"`
	Name         string      `json:"name"`
	Email        string      `json:"email"`
	PasswordHash string      `json:"-"`
	OpenAIKey    string      `json:"-"`
	Prefs        Preferences `json:"preferences"`
	CreatedAt    time.Time   `json:"createdAt"`
}

// HasOpenAIKey reports whether the user configured a generation credential.
// The key itself never leaves the server.
func (u *User) HasOpenAIKey() bool {
	return u.OpenAIKey != ""
}

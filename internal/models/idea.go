package models

import (
	"strings"
	"time"
)

// Visibility levels for an idea.
const (
	VisibilityPublic    = "public"    // visible to everyone
	VisibilityProtected = "protected" // visible to the owner and their followers
	VisibilityPrivate   = "private"   // visible to the owner only
)

// ParseVisibility normalizes a user-supplied visibility string.
// The empty string defaults to public.
func ParseVisibility(s string) (string, bool) {
	if s == "" {
		return VisibilityPublic, true
	}
	switch strings.ToLower(s) {
	case VisibilityPublic, VisibilityProtected, VisibilityPrivate:
		return strings.ToLower(s), true
	}
	return "", false
}

// Idea is a short text post with an owner and a visibility level
type Idea struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Content    string    `json:"content" gorm:"size:280;not null"`
	UserID     uint      `json:"user_id" gorm:"index;not null"` // owning user, immutable after creation
	Visibility string    `json:"visibility" gorm:"size:9;default:'public'"`
	CreatedAt  time.Time `json:"created_at" gorm:"index"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// CreateIdeaRequest defines the request body for posting a new idea
type CreateIdeaRequest struct {
	Content    string `json:"content" validate:"required,min=1,max=280"`
	Visibility string `json:"visibility,omitempty"`
}

// UpdateIdeaRequest defines the request body for editing an existing idea
type UpdateIdeaRequest struct {
	Content    string `json:"content,omitempty" validate:"omitempty,min=1,max=280"`
	Visibility string `json:"visibility,omitempty"`
}

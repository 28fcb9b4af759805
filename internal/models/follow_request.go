package models

import "time"

// Follow request statuses. Pending is the initial state; accepted and
// denied are terminal.
const (
	RequestPending  = "pending"
	RequestAccepted = "accepted"
	RequestDenied   = "denied"
)

// FollowRequest is a pending proposal for a follow edge, resolved only by
// its target.
type FollowRequest struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	RequesterID uint      `json:"requester_id" gorm:"index"` // User ID of the requester
	ToFollowID  uint      `json:"to_follow_id" gorm:"index"` // User ID of the target
	Status      string    `json:"status" gorm:"size:8;default:'pending'"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// RespondFollowRequest defines the request body for resolving a follow request
type RespondFollowRequest struct {
	Approve *bool `json:"approve" validate:"required"`
}

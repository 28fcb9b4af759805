package models

// MutationResponse is the uniform envelope returned by every command.
// A failed command still answers the call normally so the client can
// render the messages.
type MutationResponse struct {
	Success bool           `json:"success"`
	Error   []string       `json:"error,omitempty"`
	Message string         `json:"message,omitempty"`
	User    *User          `json:"user,omitempty"`
	Idea    *Idea          `json:"idea,omitempty"`
	Request *FollowRequest `json:"follow_request,omitempty"`
	Token   string         `json:"token,omitempty"`
}

package dto

// MessageResponse is the body of every mutating endpoint and of error replies.
type MessageResponse struct {
	Message string `json:"message"`
}

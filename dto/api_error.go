package dto

type APIErrorResponse struct {
	Message   string    `json:"message"`
	ErrorCode ErrorCode `json:"error_code,omitempty"`
}

type ErrorCode string

const (
	// assignment related
	DuplicateActiveAssignment ErrorCode = "duplicate_active_assignment"

	// general
	UnknownActor ErrorCode = "unknown_actor"
)

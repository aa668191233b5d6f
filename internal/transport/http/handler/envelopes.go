package handler

import "github.com/hun-meta/api-base-template/internal/domain"

// MessageEnvelope is the generic success wrapper.
type MessageEnvelope struct {
	Message string `json:"message,omitempty"`
}

// AuthEnvelope wraps login/register responses.
type AuthEnvelope struct {
	Bearer string       `json:"Bearer,omitempty"`
	User   *domain.User `json:"user,omitempty"`
}

// PaginatedUsersEnvelope wraps cursor-paginated user list responses.
type PaginatedUsersEnvelope struct {
	PerPage    int           `json:"per_page"`
	NextCursor string        `json:"next_cursor,omitempty"`
	Data       []domain.User `json:"data"`
}

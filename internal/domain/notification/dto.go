package notification

import "time"

type CreateRequest struct {
	UserID     string
	Title      string
	Message    string
	Type       Type
	ActionData map[string]interface{}
}

type Response struct {
	ID         string                 `json:"id"`
	Title      string                 `json:"title"`
	Message    string                 `json:"message"`
	Type       string                 `json:"type"`
	IsRead     bool                   `json:"is_read"`
	ActionData map[string]interface{} `json:"action_data,omitempty"`
	CreatedAt  string                 `json:"created_at"`
}

func ToResponse(n Notification) Response {
	return Response{
		ID:         n.ID,
		Title:      n.Title,
		Message:    n.Message,
		Type:       string(n.Type),
		IsRead:     n.IsRead,
		ActionData: n.ActionData,
		CreatedAt:  n.CreatedAt.Format(time.RFC3339),
	}
}

type ListResponse struct {
	Notifications []Response `json:"notifications"`
	UnreadCount   int        `json:"unread_count"`
}

// SSETokenResponse carries the short-lived token EventSource clients pass
// as a query parameter.
type SSETokenResponse struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expires_in"`
}

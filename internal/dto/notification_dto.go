package dto

type UnreadCountResponse struct {
	UnreadCount int64 `json:"unread_count"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

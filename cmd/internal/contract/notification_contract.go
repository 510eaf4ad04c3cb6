package contract

type NotificationResponse struct {
	ID          int64  `json:"id"`
	CedenteID   *int64 `json:"cedente_id,omitempty"`
	CedenteName string `json:"cedente_name,omitempty"`
	Kind        string `json:"kind"`
	Title       string `json:"title"`
	Message     string `json:"message"`
	IsRead      bool   `json:"is_read"`
	ExpiryDate  string `json:"expiry_date,omitempty"`
	CreatedAt   string `json:"created_at"`
}

type UnreadCountResponse struct {
	Unread int64 `json:"unread"`
}

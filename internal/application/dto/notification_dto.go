package dto

import "time"

// NotificationResponse salida de una notificación con su antigüedad humanizada.
type NotificationResponse struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Message     string    `json:"message"`
	ProductID   string    `json:"product_id"`
	ProductName string    `json:"product_name"`
	IsRead      bool      `json:"is_read"`
	Timestamp   time.Time `json:"timestamp"`
	Age         string    `json:"age"` // ej. "3h ago", "just now"
}

// NotificationCenter lista ordenada (la más reciente primero) más el contador
// de no leídas que alimenta el indicador visual.
type NotificationCenter struct {
	Items       []NotificationResponse `json:"items"`
	UnreadCount int                    `json:"unread_count"`
}

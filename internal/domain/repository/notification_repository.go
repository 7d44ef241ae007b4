package repository

import "github.com/tu-usuario/inventario-lite/internal/domain/entity"

// NotificationRepository define el puerto para el centro de notificaciones.
// Las mutaciones permitidas son en bloque: marcar todas leídas o archivar todas.
type NotificationRepository interface {
	// Create antepone la notificación (la más reciente primero).
	Create(n *entity.Notification) error
	List() ([]*entity.Notification, error)
	CountUnread() (int, error)
	MarkAllRead() error
	Clear() error
}

package usecase

import (
	"time"

	"github.com/tu-usuario/inventario-lite/internal/application/dto"
	"github.com/tu-usuario/inventario-lite/internal/domain/repository"
	"github.com/tu-usuario/inventario-lite/pkg/timeago"
)

// NotificationUseCase vistas y mutaciones en bloque del centro de notificaciones.
type NotificationUseCase struct {
	notifications repository.NotificationRepository
}

// NewNotificationUseCase construye el caso de uso.
func NewNotificationUseCase(notifications repository.NotificationRepository) *NotificationUseCase {
	return &NotificationUseCase{notifications: notifications}
}

// Center devuelve la lista (la más reciente primero) con antigüedad humanizada
// y el contador de no leídas para el indicador.
func (uc *NotificationUseCase) Center() (*dto.NotificationCenter, error) {
	items, err := uc.notifications.List()
	if err != nil {
		return nil, err
	}
	unread, err := uc.notifications.CountUnread()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	out := make([]dto.NotificationResponse, 0, len(items))
	for _, n := range items {
		out = append(out, dto.NotificationResponse{
			ID:          n.ID,
			Type:        n.Type,
			Message:     n.Message,
			ProductID:   n.ProductID,
			ProductName: n.ProductName,
			IsRead:      n.IsRead,
			Timestamp:   n.Timestamp,
			Age:         timeago.Since(now, n.Timestamp),
		})
	}
	return &dto.NotificationCenter{Items: out, UnreadCount: unread}, nil
}

// MarkAllRead marca todas como leídas sin eliminar ninguna.
func (uc *NotificationUseCase) MarkAllRead() error {
	return uc.notifications.MarkAllRead()
}

// ClearAll archiva (vacía) la lista completa.
func (uc *NotificationUseCase) ClearAll() error {
	return uc.notifications.Clear()
}

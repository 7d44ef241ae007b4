package memoria

import (
	"sync"

	"github.com/tu-usuario/inventario-lite/internal/domain/entity"
	"github.com/tu-usuario/inventario-lite/internal/domain/repository"
)

var _ repository.NotificationRepository = (*NotificationRepo)(nil)

// NotificationRepo implementación en memoria del centro de notificaciones.
type NotificationRepo struct {
	mu    sync.RWMutex
	items []entity.Notification // la más reciente primero
}

// NewNotificationRepository construye el adaptador vacío.
func NewNotificationRepository() *NotificationRepo { return &NotificationRepo{} }

// Create antepone la notificación.
func (r *NotificationRepo) Create(n *entity.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append([]entity.Notification{*n}, r.items...)
	return nil
}

// List devuelve copias de todas las notificaciones, la más reciente primero.
func (r *NotificationRepo) List() ([]*entity.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Notification, 0, len(r.items))
	for i := range r.items {
		n := r.items[i]
		out = append(out, &n)
	}
	return out, nil
}

// CountUnread cuenta las notificaciones con IsRead en false.
func (r *NotificationRepo) CountUnread() (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	count := 0
	for i := range r.items {
		if !r.items[i].IsRead {
			count++
		}
	}
	return count, nil
}

// MarkAllRead marca todas como leídas sin eliminar ninguna.
func (r *NotificationRepo) MarkAllRead() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		r.items[i].IsRead = true
	}
	return nil
}

// Clear vacía la lista completa.
func (r *NotificationRepo) Clear() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = nil
	return nil
}

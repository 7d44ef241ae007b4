package memoria

import (
	"sync"

	"github.com/tu-usuario/inventario-lite/internal/domain/entity"
	"github.com/tu-usuario/inventario-lite/internal/domain/repository"
)

var _ repository.AuditRepository = (*AuditRepo)(nil)

// AuditRepo implementación en memoria del historial de auditoría (append-only).
type AuditRepo struct {
	mu    sync.RWMutex
	items []entity.AuditEntry // la más reciente primero
}

// NewAuditRepository construye el adaptador vacío.
func NewAuditRepository() *AuditRepo { return &AuditRepo{} }

// Create antepone la entrada.
func (r *AuditRepo) Create(e *entity.AuditEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append([]entity.AuditEntry{*e}, r.items...)
	return nil
}

// List devuelve copias de todas las entradas, la más reciente primero.
func (r *AuditRepo) List() ([]*entity.AuditEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.AuditEntry, 0, len(r.items))
	for i := range r.items {
		e := r.items[i]
		out = append(out, &e)
	}
	return out, nil
}

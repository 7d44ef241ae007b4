package repository

import "github.com/tu-usuario/inventario-lite/internal/domain/entity"

// AuditRepository define el puerto para el historial de auditoría (append-only).
type AuditRepository interface {
	// Create antepone la entrada (la más reciente primero).
	Create(e *entity.AuditEntry) error
	List() ([]*entity.AuditEntry, error)
}

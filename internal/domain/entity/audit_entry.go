package entity

import "time"

// Acciones de auditoría registradas por los casos de uso mutadores.
const (
	AuditActionStockUpdate    = "Stock Update"
	AuditActionProductAdded   = "Product Added"
	AuditActionProductEdited  = "Product Edited"
	AuditActionProductDeleted = "Product Deleted"
)

// AuditEntry entrada append-only del historial de auditoría (la más reciente primero).
// Cada mutación de estado hecha por un usuario autenticado genera exactamente una entrada;
// Details describe solo los campos que cambiaron.
type AuditEntry struct {
	ID        string
	User      string
	Action    string
	Details   string
	Timestamp time.Time
}

package entity

import "time"

// Tipos válidos para Notification.
const (
	NotificationLowStock   = "lowStock"
	NotificationOutOfStock = "outOfStock"
)

// Notification aviso generado al cruzar un umbral de stock (disparo por flanco,
// no por nivel: repetir el cruce 9→8 no vuelve a generar aviso).
// Solo muta vía "marcar todas leídas"; solo se elimina vía "archivar todas".
type Notification struct {
	ID          string
	Type        string
	Message     string
	ProductID   string
	ProductName string
	IsRead      bool
	Timestamp   time.Time
}

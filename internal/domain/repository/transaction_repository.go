package repository

import "github.com/tu-usuario/inventario-lite/internal/domain/entity"

// TransactionRepository define el puerto para el log append-only de transacciones.
// No hay Update ni Delete: las transacciones nunca se modifican.
type TransactionRepository interface {
	// Create antepone la transacción (la más reciente primero).
	Create(tx *entity.Transaction) error
	// ListByType devuelve las transacciones del tipo indicado, la más reciente primero.
	ListByType(txType string) ([]*entity.Transaction, error)
	List() ([]*entity.Transaction, error)
}

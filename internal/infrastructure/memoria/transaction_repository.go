package memoria

import (
	"sync"

	"github.com/tu-usuario/inventario-lite/internal/domain/entity"
	"github.com/tu-usuario/inventario-lite/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo implementación en memoria del log append-only de transacciones.
type TransactionRepo struct {
	mu    sync.RWMutex
	items []entity.Transaction // la más reciente primero
}

// NewTransactionRepository construye el adaptador vacío.
func NewTransactionRepository() *TransactionRepo { return &TransactionRepo{} }

// Create antepone la transacción. No existe Update ni Delete.
func (r *TransactionRepo) Create(tx *entity.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append([]entity.Transaction{*tx}, r.items...)
	return nil
}

// List devuelve copias de todas las transacciones, la más reciente primero.
func (r *TransactionRepo) List() ([]*entity.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Transaction, 0, len(r.items))
	for i := range r.items {
		t := r.items[i]
		out = append(out, &t)
	}
	return out, nil
}

// ListByType devuelve las transacciones del tipo indicado, la más reciente primero.
func (r *TransactionRepo) ListByType(txType string) ([]*entity.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Transaction, 0, len(r.items))
	for i := range r.items {
		if r.items[i].Type == txType {
			t := r.items[i]
			out = append(out, &t)
		}
	}
	return out, nil
}

// Package inventory contiene el caso de uso de ajuste de stock: la única vía
// por la que cambia Product.Quantity.
package inventory

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/inventario-lite/internal/application/audit"
	"github.com/tu-usuario/inventario-lite/internal/application/auth"
	"github.com/tu-usuario/inventario-lite/internal/domain"
	"github.com/tu-usuario/inventario-lite/internal/domain/entity"
	"github.com/tu-usuario/inventario-lite/internal/domain/repository"
	"github.com/tu-usuario/inventario-lite/pkg/logger"
)

// AdjustUseCase aplica un ajuste de stock: actualiza la cantidad, registra la
// transacción, dispara notificaciones de umbral y audita la operación.
type AdjustUseCase struct {
	products      repository.ProductRepository
	transactions  repository.TransactionRepository
	notifications repository.NotificationRepository
	session       *auth.Session
	recorder      *audit.Recorder
	log           *logger.Logger
}

// NewAdjustUseCase construye el caso de uso.
func NewAdjustUseCase(
	products repository.ProductRepository,
	transactions repository.TransactionRepository,
	notifications repository.NotificationRepository,
	session *auth.Session,
	recorder *audit.Recorder,
	log *logger.Logger,
) *AdjustUseCase {
	return &AdjustUseCase{
		products:      products,
		transactions:  transactions,
		notifications: notifications,
		session:       session,
		recorder:      recorder,
		log:           log,
	}
}

// AdjustResult resultado de un ajuste aplicado.
type AdjustResult struct {
	Product       *entity.Product
	Transaction   *entity.Transaction
	Notifications []*entity.Notification
}

// Adjust aplica un delta con signo al producto: delta > 0 registra una compra
// (purchase); delta < 0 una venta (sale) por |delta|. Toda la validación ocurre
// antes de mutar: un rechazo deja el estado intacto.
//
// Las notificaciones son por flanco, evaluadas contra cantidad vieja y nueva:
//   - lowStock  sii vieja > 10 y 0 < nueva <= 10
//   - outOfStock sii vieja > 0 y nueva == 0
//
// Siempre se escribe una entrada de auditoría, dispare o no una notificación.
func (uc *AdjustUseCase) Adjust(productID string, delta int) (*AdjustResult, error) {
	if !uc.session.Can(auth.ActionAdjustStock) {
		return nil, domain.ErrForbidden
	}
	if delta == 0 {
		return nil, domain.ErrInvalidInput
	}

	product, err := uc.products.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	oldQty := product.Quantity
	newQty := oldQty + delta
	if newQty < 0 {
		return nil, domain.ErrInsufficientStock
	}

	now := time.Now()
	var fired []*entity.Notification
	if oldQty > entity.LowStockThreshold && newQty > 0 && newQty <= entity.LowStockThreshold {
		fired = append(fired, uc.notify(entity.NotificationLowStock, "is running low on stock.", product, now))
	}
	if oldQty > 0 && newQty == 0 {
		fired = append(fired, uc.notify(entity.NotificationOutOfStock, "is now out of stock.", product, now))
	}
	for _, n := range fired {
		if err := uc.notifications.Create(n); err != nil {
			return nil, err
		}
	}

	uc.recorder.Record(entity.AuditActionStockUpdate,
		fmt.Sprintf("Quantity for %q changed from %d to %d (%+d).", product.Name, oldQty, newQty, delta))

	product.Quantity = newQty
	product.LastUpdated = now
	if err := uc.products.Update(product); err != nil {
		return nil, err
	}

	txType := entity.TransactionTypePurchase
	qty := delta
	if delta < 0 {
		txType = entity.TransactionTypeSale
		qty = -delta
	}
	tx := &entity.Transaction{
		ID:           uuid.New().String(),
		ProductID:    product.ID,
		Type:         txType,
		Quantity:     qty,
		PricePerItem: product.Price,
		Date:         now,
	}
	if err := uc.transactions.Create(tx); err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("sku", product.SKU).
		Int("old_quantity", oldQty).
		Int("new_quantity", newQty).
		Str("type", txType).
		Msg("stock ajustado")

	return &AdjustResult{Product: product, Transaction: tx, Notifications: fired}, nil
}

func (uc *AdjustUseCase) notify(kind, message string, p *entity.Product, now time.Time) *entity.Notification {
	return &entity.Notification{
		ID:          uuid.New().String(),
		Type:        kind,
		Message:     message,
		ProductID:   p.ID,
		ProductName: p.Name,
		IsRead:      false,
		Timestamp:   now,
	}
}

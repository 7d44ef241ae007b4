package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos válidos para Transaction.
const (
	TransactionTypePurchase = "purchase"
	TransactionTypeSale     = "sale"
)

// Transaction registro append-only de un ajuste de stock.
// Quantity es siempre positiva; el tipo indica la dirección del movimiento.
// Nunca se modifica ni se elimina.
type Transaction struct {
	ID           string
	ProductID    string
	Type         string
	Quantity     int
	PricePerItem decimal.Decimal
	Date         time.Time
}

// Total devuelve cantidad × precio unitario.
func (t *Transaction) Total() decimal.Decimal {
	return t.PricePerItem.Mul(decimal.NewFromInt(int64(t.Quantity)))
}

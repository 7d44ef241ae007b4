package memoria

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/inventario-lite/internal/domain/entity"
)

// Store agrupa los repositorios en memoria de una sesión.
// Se crea al iniciar la sesión y se descarta al cerrarla; no hay persistencia.
type Store struct {
	Products      *ProductRepo
	Categories    *CategoryRepo
	Transactions  *TransactionRepo
	Notifications *NotificationRepo
	Audit         *AuditRepo
	Users         *UserRepo
}

// NewEmptyStore construye un Store sin datos (útil en tests).
func NewEmptyStore() *Store {
	return &Store{
		Products:      NewProductRepository(),
		Categories:    NewCategoryRepository(),
		Transactions:  NewTransactionRepository(),
		Notifications: NewNotificationRepository(),
		Audit:         NewAuditRepository(),
		Users:         NewUserRepository(nil),
	}
}

// Credenciales de la demo. Se guardan hasheadas con bcrypt; el plano solo
// existe aquí para sembrar la lista estática.
var seedUsers = []struct {
	username string
	role     string
	password string
}{
	{"admin", entity.RoleAdmin, "admin"},
	{"staff", entity.RoleStaff, "staff"},
}

type seedProduct struct {
	name     string
	sku      string
	category string
	quantity int
	price    string
	supplier string
	agedDays int // antigüedad de LastUpdated respecto a now
}

var seedCategories = []string{
	"Beverages", "Bakery", "Snacks", "Homeware", "Electronics", "Fitness", "Groceries",
}

var seedProducts = []seedProduct{
	{"Stainless Steel Water Bottle", "HOM-SSWB-001", "Homeware", 8, "19.99", "EcoGoods Co.", 2},
	{"Organic Matcha", "GRO-OMT-002", "Groceries", 45, "24.99", "Green Leaf Traders", 3},
	{"Sourdough Loaf", "BAK-SDL-003", "Bakery", 22, "6.75", "Hearth Bakery", 1},
	{"Wireless Earbuds", "ELE-WEB-004", "Electronics", 14, "59.99", "Volt Imports", 6},
	{"Natural Almond Butter", "GRO-NAB-005", "Groceries", 30, "12.50", "Nutty Farms", 4},
	{"Yoga Mat", "FIT-YGM-006", "Fitness", 11, "21.00", "FlexFit Supply", 9},
	{"Sea Salt Crackers", "SNK-SSC-007", "Snacks", 5, "3.20", "Crunch Works", 5},
	{"Cold Brew Coffee", "BEV-CBC-010", "Beverages", 0, "4.99", "Bean Supply Ltd.", 7},
}

// NewSeededStore construye el Store con el dataset de demostración:
// categorías, productos, un par de transacciones históricas, el historial de
// auditoría inicial y los dos usuarios (admin/staff).
func NewSeededStore() (*Store, error) {
	s := NewEmptyStore()
	now := time.Now()

	catByName := make(map[string]string, len(seedCategories))
	for _, name := range seedCategories {
		c := &entity.Category{ID: uuid.New().String(), Name: name}
		if err := s.Categories.Create(c); err != nil {
			return nil, err
		}
		catByName[name] = c.ID
	}

	prodBySKU := make(map[string]*entity.Product, len(seedProducts))
	for _, sp := range seedProducts {
		price, err := decimal.NewFromString(sp.price)
		if err != nil {
			return nil, fmt.Errorf("seed: precio de %s: %w", sp.sku, err)
		}
		p := &entity.Product{
			ID:           uuid.New().String(),
			Name:         sp.name,
			SKU:          sp.sku,
			CategoryID:   catByName[sp.category],
			Quantity:     sp.quantity,
			Price:        price,
			SupplierName: sp.supplier,
			LastUpdated:  now.AddDate(0, 0, -sp.agedDays),
		}
		if err := s.Products.Create(p); err != nil {
			return nil, err
		}
		prodBySKU[sp.sku] = p
	}

	// Transacciones históricas coherentes con el historial de auditoría:
	// la botella bajó de 58 a 8 en una venta de 50 unidades.
	bottle := prodBySKU["HOM-SSWB-001"]
	matcha := prodBySKU["GRO-OMT-002"]
	historic := []*entity.Transaction{
		{
			ID:           uuid.New().String(),
			ProductID:    matcha.ID,
			Type:         entity.TransactionTypePurchase,
			Quantity:     45,
			PricePerItem: matcha.Price,
			Date:         now.AddDate(0, 0, -3),
		},
		{
			ID:           uuid.New().String(),
			ProductID:    bottle.ID,
			Type:         entity.TransactionTypeSale,
			Quantity:     50,
			PricePerItem: bottle.Price,
			Date:         now.AddDate(0, 0, -2),
		},
	}
	for _, tx := range historic {
		if err := s.Transactions.Create(tx); err != nil {
			return nil, err
		}
	}

	seedAudit := []entity.AuditEntry{
		{
			User:      "admin",
			Action:    entity.AuditActionProductDeleted,
			Details:   `Deleted product: "Old Product Name" (SKU: OLD-SKU-001).`,
			Timestamp: now.AddDate(0, 0, -5),
		},
		{
			User:      "admin",
			Action:    entity.AuditActionProductAdded,
			Details:   `Added new product: "Natural Almond Butter" (SKU: GRO-NAB-005).`,
			Timestamp: now.AddDate(0, 0, -4),
		},
		{
			User:      "admin",
			Action:    entity.AuditActionProductEdited,
			Details:   `Edited "Organic Matcha": price: from '25.99' to '24.99'.`,
			Timestamp: now.AddDate(0, 0, -3),
		},
		{
			User:      "admin",
			Action:    entity.AuditActionStockUpdate,
			Details:   `Quantity for "Stainless Steel Water Bottle" changed from 58 to 8 (-50).`,
			Timestamp: now.AddDate(0, 0, -2),
		},
	}
	for i := range seedAudit {
		seedAudit[i].ID = uuid.New().String()
		if err := s.Audit.Create(&seedAudit[i]); err != nil {
			return nil, err
		}
	}

	users := make([]entity.User, 0, len(seedUsers))
	for _, su := range seedUsers {
		hash, err := bcrypt.GenerateFromPassword([]byte(su.password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("seed: hash de %s: %w", su.username, err)
		}
		users = append(users, entity.User{
			ID:           uuid.New().String(),
			Username:     su.username,
			Role:         su.role,
			PasswordHash: string(hash),
		})
	}
	s.Users = NewUserRepository(users)

	return s, nil
}

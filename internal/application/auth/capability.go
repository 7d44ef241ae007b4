package auth

import "github.com/tu-usuario/inventario-lite/internal/domain/entity"

// Action identifica una capacidad de la aplicación. El chequeo está separado
// de la selección de vistas: los casos de uso consultan Can antes de mutar.
type Action string

// Capacidades disponibles.
const (
	ActionViewDashboard    Action = "view:dashboard"
	ActionViewProducts     Action = "view:products"
	ActionViewUsers        Action = "view:users"
	ActionViewCategories   Action = "view:categories"
	ActionViewReports      Action = "view:reports"
	ActionViewAudit        Action = "view:audit"
	ActionManageProducts   Action = "manage:products"
	ActionAdjustStock      Action = "manage:stock"
	ActionManageCategories Action = "manage:categories"
)

// Capacidades del rol staff: solo lectura de dashboard y productos.
var staffActions = map[Action]bool{
	ActionViewDashboard: true,
	ActionViewProducts:  true,
}

// Can indica si el rol puede ejecutar la acción. admin tiene acceso total;
// staff solo las vistas permitidas. No es una frontera de seguridad: gobierna
// qué operaciones acepta la capa de aplicación dentro del proceso.
func Can(role string, action Action) bool {
	switch role {
	case entity.RoleAdmin:
		return true
	case entity.RoleStaff:
		return staffActions[action]
	default:
		return false
	}
}

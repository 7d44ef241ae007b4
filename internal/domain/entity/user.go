package entity

// Roles válidos para User.
const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// User representa un usuario de la lista estática de demostración.
// PasswordHash es bcrypt; la sesión activa mantiene a lo sumo un usuario logueado.
type User struct {
	ID           string
	Username     string
	Role         string
	PasswordHash string
}

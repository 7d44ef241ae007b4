package repository

import "github.com/tu-usuario/inventario-lite/internal/domain/entity"

// UserRepository define el puerto para la lista estática de usuarios.
// Es de solo lectura: los usuarios de la demo se cargan en el seed.
type UserRepository interface {
	FindByUsername(username string) (*entity.User, error)
	List() ([]*entity.User, error)
}

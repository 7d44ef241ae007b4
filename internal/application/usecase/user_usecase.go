package usecase

import (
	"github.com/tu-usuario/inventario-lite/internal/application/auth"
	"github.com/tu-usuario/inventario-lite/internal/application/dto"
	"github.com/tu-usuario/inventario-lite/internal/domain"
	"github.com/tu-usuario/inventario-lite/internal/domain/repository"
)

// UserUseCase vista de administración de usuarios: solo lectura sobre la
// lista estática.
type UserUseCase struct {
	users   repository.UserRepository
	session *auth.Session
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(users repository.UserRepository, session *auth.Session) *UserUseCase {
	return &UserUseCase{users: users, session: session}
}

// List devuelve todos los usuarios (sin credenciales) para la tabla de
// administración. Solo el admin puede consultarla.
func (uc *UserUseCase) List() ([]dto.UserResponse, error) {
	if !uc.session.Can(auth.ActionViewUsers) {
		return nil, domain.ErrForbidden
	}
	users, err := uc.users.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, dto.UserResponse{
			ID:       u.ID,
			Username: u.Username,
			Role:     u.Role,
		})
	}
	return out, nil
}

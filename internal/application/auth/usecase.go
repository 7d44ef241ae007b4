package auth

import (
	"context"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/inventario-lite/internal/application/dto"
	"github.com/tu-usuario/inventario-lite/internal/domain"
	"github.com/tu-usuario/inventario-lite/internal/domain/entity"
	"github.com/tu-usuario/inventario-lite/internal/domain/repository"
	"github.com/tu-usuario/inventario-lite/pkg/logger"
)

// UseCase caso de uso de autenticación contra la lista estática de usuarios.
// El login reproduce el contrato asíncrono de la demo (demora configurable,
// resuelve o rechaza); dos logins concurrentes se serializan con loginMu.
type UseCase struct {
	users   repository.UserRepository
	session *Session
	delay   time.Duration
	log     *logger.Logger

	loginMu sync.Mutex
}

// NewUseCase construye el caso de uso. delay en 0 desactiva la demora simulada.
func NewUseCase(users repository.UserRepository, session *Session, delay time.Duration, log *logger.Logger) *UseCase {
	return &UseCase{users: users, session: session, delay: delay, log: log}
}

// Login verifica usuario/contraseña con bcrypt y fija el usuario de la sesión.
// Devuelve domain.ErrUnauthorized sin distinguir usuario inexistente de
// contraseña incorrecta. El estado de la sesión no cambia en caso de fallo.
func (uc *UseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.UserResponse, error) {
	uc.loginMu.Lock()
	defer uc.loginMu.Unlock()

	if uc.delay > 0 {
		select {
		case <-time.After(uc.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	user, err := uc.users.FindByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		uc.log.Warn().Str("username", in.Username).Msg("login rechazado")
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		uc.log.Warn().Str("username", in.Username).Msg("login rechazado")
		return nil, domain.ErrUnauthorized
	}

	uc.session.setUser(user)
	uc.log.Info().Str("username", user.Username).Str("role", user.Role).Msg("sesión iniciada")
	return toUserResponse(user), nil
}

// Logout delega en la sesión.
func (uc *UseCase) Logout() error {
	if username, ok := uc.session.Username(); ok {
		uc.log.Info().Str("username", username).Msg("sesión cerrada")
	}
	return uc.session.Logout()
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:       u.ID,
		Username: u.Username,
		Role:     u.Role,
	}
}

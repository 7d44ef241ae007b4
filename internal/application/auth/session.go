package auth

import (
	"sync"

	"github.com/tu-usuario/inventario-lite/internal/domain/entity"
	"github.com/tu-usuario/inventario-lite/internal/domain/repository"
)

// Session estado de la sesión activa: a lo sumo un usuario logueado.
// Es el único dueño del usuario actual; todas las mutaciones de la aplicación
// la consultan. Al cerrar sesión también se vacían las notificaciones.
type Session struct {
	mu            sync.Mutex
	user          *entity.User
	notifications repository.NotificationRepository
}

// NewSession construye una sesión sin usuario.
func NewSession(notifications repository.NotificationRepository) *Session {
	return &Session{notifications: notifications}
}

// CurrentUser devuelve una copia del usuario logueado, o nil.
func (s *Session) CurrentUser() *entity.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// Username devuelve el nombre del usuario logueado y si hay sesión activa.
func (s *Session) Username() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return "", false
	}
	return s.user.Username, true
}

// Can indica si el usuario actual puede ejecutar la acción. Sin sesión: false.
func (s *Session) Can(action Action) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return false
	}
	return Can(s.user.Role, action)
}

// Logout cierra la sesión y vacía las notificaciones acumuladas.
func (s *Session) Logout() error {
	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()
	return s.notifications.Clear()
}

func (s *Session) setUser(u *entity.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	copia := *u
	s.user = &copia
}

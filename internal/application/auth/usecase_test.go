package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/inventario-lite/internal/application/auth"
	"github.com/tu-usuario/inventario-lite/internal/application/dto"
	"github.com/tu-usuario/inventario-lite/internal/domain"
	"github.com/tu-usuario/inventario-lite/internal/domain/entity"
	"github.com/tu-usuario/inventario-lite/internal/infrastructure/memoria"
	"github.com/tu-usuario/inventario-lite/pkg/logger"
)

func newAuthFixture(t *testing.T, delay time.Duration) (*auth.UseCase, *auth.Session, *memoria.Store) {
	t.Helper()
	store := memoria.NewEmptyStore()
	hash, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.MinCost)
	require.NoError(t, err)
	store.Users = memoria.NewUserRepository([]entity.User{{
		ID:           uuid.New().String(),
		Username:     "admin",
		Role:         entity.RoleAdmin,
		PasswordHash: string(hash),
	}})
	session := auth.NewSession(store.Notifications)
	return auth.NewUseCase(store.Users, session, delay, logger.Nop()), session, store
}

func TestLogin_CredencialesValidas(t *testing.T) {
	uc, session, _ := newAuthFixture(t, 0)

	resp, err := uc.Login(context.Background(), dto.LoginRequest{Username: "admin", Password: "admin"})
	require.NoError(t, err)

	assert.Equal(t, "admin", resp.Username)
	assert.Equal(t, entity.RoleAdmin, resp.Role)

	username, ok := session.Username()
	assert.True(t, ok)
	assert.Equal(t, "admin", username)
}

func TestLogin_ContrasenaIncorrecta(t *testing.T) {
	uc, session, _ := newAuthFixture(t, 0)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Username: "admin", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, ok := session.Username()
	assert.False(t, ok, "un login fallido no abre sesión")
}

func TestLogin_UsuarioInexistenteMismoError(t *testing.T) {
	uc, _, _ := newAuthFixture(t, 0)

	_, errUsuario := uc.Login(context.Background(), dto.LoginRequest{Username: "nadie", Password: "admin"})
	_, errClave := uc.Login(context.Background(), dto.LoginRequest{Username: "admin", Password: "mala"})

	assert.ErrorIs(t, errUsuario, domain.ErrUnauthorized)
	assert.Equal(t, errUsuario, errClave, "el error no distingue usuario de contraseña")
}

func TestLogin_ContextoCanceladoDuranteLaDemora(t *testing.T) {
	uc, session, _ := newAuthFixture(t, time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := uc.Login(ctx, dto.LoginRequest{Username: "admin", Password: "admin"})

	assert.ErrorIs(t, err, context.Canceled)
	_, ok := session.Username()
	assert.False(t, ok)
}

func TestLogout_VaciaSesionYNotificaciones(t *testing.T) {
	uc, session, store := newAuthFixture(t, 0)
	_, err := uc.Login(context.Background(), dto.LoginRequest{Username: "admin", Password: "admin"})
	require.NoError(t, err)
	require.NoError(t, store.Notifications.Create(&entity.Notification{
		ID:        uuid.New().String(),
		Type:      entity.NotificationLowStock,
		Timestamp: time.Now(),
	}))

	require.NoError(t, uc.Logout())

	assert.Nil(t, session.CurrentUser())
	items, err := store.Notifications.List()
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCan_MatrizDeRoles(t *testing.T) {
	casos := []struct {
		role    string
		action  auth.Action
		allowed bool
	}{
		{entity.RoleAdmin, auth.ActionManageProducts, true},
		{entity.RoleAdmin, auth.ActionViewAudit, true},
		{entity.RoleStaff, auth.ActionViewDashboard, true},
		{entity.RoleStaff, auth.ActionViewProducts, true},
		{entity.RoleStaff, auth.ActionManageProducts, false},
		{entity.RoleStaff, auth.ActionAdjustStock, false},
		{entity.RoleStaff, auth.ActionViewReports, false},
		{entity.RoleStaff, auth.ActionViewUsers, false},
		{"", auth.ActionViewDashboard, false},
	}
	for _, c := range casos {
		assert.Equalf(t, c.allowed, auth.Can(c.role, c.action),
			"rol %q, acción %q", c.role, c.action)
	}
}

func TestSessionCan_SinUsuarioSiempreFalse(t *testing.T) {
	_, session, _ := newAuthFixture(t, 0)

	assert.False(t, session.Can(auth.ActionViewDashboard))
}

package usecase_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/inventario-lite/internal/application/usecase"
	"github.com/tu-usuario/inventario-lite/internal/domain/entity"
)

func seedNotification(t *testing.T, f *fixture, isRead bool, age time.Duration) {
	t.Helper()
	require.NoError(t, f.store.Notifications.Create(&entity.Notification{
		ID:          uuid.New().String(),
		Type:        entity.NotificationLowStock,
		Message:     "is running low on stock.",
		ProductID:   uuid.New().String(),
		ProductName: "Sea Salt Crackers",
		IsRead:      isRead,
		Timestamp:   time.Now().Add(-age),
	}))
}

func TestNotificationCenter_ContadorYAntiguedad(t *testing.T) {
	f := newFixture(t, entity.RoleAdmin)
	uc := usecase.NewNotificationUseCase(f.store.Notifications)
	seedNotification(t, f, true, 3*time.Hour)
	seedNotification(t, f, false, 2*time.Minute)

	center, err := uc.Center()
	require.NoError(t, err)

	assert.Equal(t, 1, center.UnreadCount)
	require.Len(t, center.Items, 2)
	assert.Equal(t, "2m ago", center.Items[0].Age, "la más reciente encabeza la lista")
	assert.Equal(t, "3h ago", center.Items[1].Age)
}

func TestNotificationCenter_MarcarTodasLeidas(t *testing.T) {
	f := newFixture(t, entity.RoleAdmin)
	uc := usecase.NewNotificationUseCase(f.store.Notifications)
	seedNotification(t, f, false, time.Minute)
	seedNotification(t, f, false, time.Hour)

	require.NoError(t, uc.MarkAllRead())

	center, err := uc.Center()
	require.NoError(t, err)
	assert.Zero(t, center.UnreadCount)
	assert.Len(t, center.Items, 2, "marcar leídas no elimina nada")
}

func TestNotificationCenter_VaciarTodo(t *testing.T) {
	f := newFixture(t, entity.RoleAdmin)
	uc := usecase.NewNotificationUseCase(f.store.Notifications)
	seedNotification(t, f, false, time.Minute)

	require.NoError(t, uc.ClearAll())

	center, err := uc.Center()
	require.NoError(t, err)
	assert.Empty(t, center.Items)
	assert.Zero(t, center.UnreadCount)
}

func TestNotificationCenter_LogoutVaciaLaLista(t *testing.T) {
	f := newFixture(t, entity.RoleAdmin)
	uc := usecase.NewNotificationUseCase(f.store.Notifications)
	seedNotification(t, f, false, time.Minute)

	require.NoError(t, f.session.Logout())

	center, err := uc.Center()
	require.NoError(t, err)
	assert.Empty(t, center.Items, "cerrar sesión descarta las notificaciones")
}

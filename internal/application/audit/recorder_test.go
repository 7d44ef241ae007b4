package audit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/inventario-lite/internal/application/audit"
	"github.com/tu-usuario/inventario-lite/internal/domain/entity"
	"github.com/tu-usuario/inventario-lite/internal/infrastructure/memoria"
	"github.com/tu-usuario/inventario-lite/pkg/logger"
)

type sesionFija struct {
	username string
	activa   bool
}

func (s sesionFija) Username() (string, bool) { return s.username, s.activa }

func TestRecord_ConSesionEscribeEntrada(t *testing.T) {
	repo := memoria.NewAuditRepository()
	r := audit.NewRecorder(repo, sesionFija{username: "admin", activa: true}, logger.Nop())

	r.Record(entity.AuditActionStockUpdate, `Quantity for "Organic Matcha" changed from 45 to 5 (-40).`)

	entries, err := repo.List()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "admin", entries[0].User)
	assert.Equal(t, entity.AuditActionStockUpdate, entries[0].Action)
	assert.NotEmpty(t, entries[0].ID)
	assert.False(t, entries[0].Timestamp.IsZero())
}

func TestRecord_SinSesionNoEscribeNada(t *testing.T) {
	repo := memoria.NewAuditRepository()
	r := audit.NewRecorder(repo, sesionFija{}, logger.Nop())

	r.Record(entity.AuditActionProductAdded, "algo")

	entries, err := repo.List()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestList_MasRecientePrimero(t *testing.T) {
	repo := memoria.NewAuditRepository()
	r := audit.NewRecorder(repo, sesionFija{username: "admin", activa: true}, logger.Nop())

	r.Record(entity.AuditActionProductAdded, "primera")
	r.Record(entity.AuditActionProductEdited, "segunda")

	list, err := r.List()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "segunda", list[0].Details)
	assert.Equal(t, "primera", list[1].Details)
}

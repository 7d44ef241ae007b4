// Package audit registra y consulta el historial de auditoría.
package audit

import (
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/inventario-lite/internal/application/dto"
	"github.com/tu-usuario/inventario-lite/internal/domain/entity"
	"github.com/tu-usuario/inventario-lite/internal/domain/repository"
	"github.com/tu-usuario/inventario-lite/pkg/logger"
)

// SessionInfo lo que el recorder necesita saber de la sesión.
type SessionInfo interface {
	Username() (string, bool)
}

// Recorder escribe entradas de auditoría a nombre del usuario autenticado.
// Sin sesión activa no escribe nada: las mutaciones anónimas no se auditan.
type Recorder struct {
	repo    repository.AuditRepository
	session SessionInfo
	log     *logger.Logger
}

// NewRecorder construye el recorder.
func NewRecorder(repo repository.AuditRepository, session SessionInfo, log *logger.Logger) *Recorder {
	return &Recorder{repo: repo, session: session, log: log}
}

// Record antepone una entrada con el usuario de la sesión y la hora actual.
func (r *Recorder) Record(action, details string) {
	username, ok := r.session.Username()
	if !ok {
		return
	}
	entry := &entity.AuditEntry{
		ID:        uuid.New().String(),
		User:      username,
		Action:    action,
		Details:   details,
		Timestamp: time.Now(),
	}
	if err := r.repo.Create(entry); err != nil {
		r.log.Error().Err(err).Str("action", action).Msg("registrar auditoría")
	}
}

// List devuelve el historial completo, la entrada más reciente primero.
func (r *Recorder) List() ([]dto.AuditEntryResponse, error) {
	entries, err := r.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.AuditEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.AuditEntryResponse{
			ID:        e.ID,
			User:      e.User,
			Action:    e.Action,
			Details:   e.Details,
			Timestamp: e.Timestamp,
		})
	}
	return out, nil
}

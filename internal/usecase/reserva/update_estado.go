package reserva

import (
	"context"

	"github.com/armandiucs114200-ui/barberia-fullstack/internal/audit"
	domain "github.com/armandiucs114200-ui/barberia-fullstack/internal/domain/reserva"
	"github.com/armandiucs114200-ui/barberia-fullstack/internal/metrics"
	"github.com/armandiucs114200-ui/barberia-fullstack/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type UpdateEstadoInput struct {
	ReservaID string
	Estado    string

	// Admin performing the change, for the audit trail.
	UserID string
}

// ======================================================
// USE CASE
// ======================================================

type UpdateEstado struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateEstado(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateEstado {
	return &UpdateEstado{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *UpdateEstado) Execute(
	ctx context.Context,
	in UpdateEstadoInput,
) (*models.Reserva, error) {

	if !domain.IsValidEstado(in.Estado) {
		return nil, domain.ErrInvalidEstado
	}

	r, err := uc.repo.UpdateReservaEstado(ctx, in.ReservaID, in.Estado)
	if err != nil {
		return nil, err
	}

	metrics.IncEstadoUpdate(in.Estado)
	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   "reserva_estado_updated",
		Entity:   "reserva",
		EntityID: &r.ID,
		Metadata: map[string]any{"estado": in.Estado},
	})

	return r, nil
}

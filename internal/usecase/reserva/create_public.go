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

type CreatePublicReservaInput struct {
	Fecha     string
	Hora      string
	BarberoID string
	Servicio  string

	ClienteNombre   string
	ClienteTelefono string
}

// ======================================================
// USE CASE
// ======================================================

// CreatePublicReserva books without an authenticated identity; the row is
// identified by the supplied name/phone pair instead of a client reference.
type CreatePublicReserva struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreatePublicReserva(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreatePublicReserva {
	return &CreatePublicReserva{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreatePublicReserva) Execute(
	ctx context.Context,
	in CreatePublicReservaInput,
) (*models.Reserva, error) {

	r := &models.Reserva{
		Fecha:           in.Fecha,
		Hora:            in.Hora,
		BarberoID:       in.BarberoID,
		Servicio:        in.Servicio,
		ClienteNombre:   in.ClienteNombre,
		ClienteTelefono: in.ClienteTelefono,
		Estado:          string(domain.InitialEstado()),
	}

	if err := uc.repo.CreateReserva(ctx, r); err != nil {
		return nil, err
	}

	metrics.IncReservaCreated("publica")
	uc.audit.Dispatch(audit.Event{
		Action:   "reserva_public_created",
		Entity:   "reserva",
		EntityID: &r.ID,
	})

	return r, nil
}

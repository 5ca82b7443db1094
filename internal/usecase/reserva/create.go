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

type CreateReservaInput struct {
	Fecha     string
	Hora      string
	BarberoID string
	Servicio  string

	// Taken from the verified identity, never from the request body.
	ClienteID string
}

// ======================================================
// USE CASE
// ======================================================

type CreateReserva struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateReserva(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateReserva {
	return &CreateReserva{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateReserva) Execute(
	ctx context.Context,
	in CreateReservaInput,
) (*models.Reserva, error) {

	clienteID := in.ClienteID

	r := &models.Reserva{
		Fecha:     in.Fecha,
		Hora:      in.Hora,
		BarberoID: in.BarberoID,
		ClienteID: &clienteID,
		Servicio:  in.Servicio,
		Estado:    string(domain.InitialEstado()),
	}

	if err := uc.repo.CreateReserva(ctx, r); err != nil {
		return nil, err
	}

	metrics.IncReservaCreated("privada")
	uc.audit.Dispatch(audit.Event{
		UserID:   &clienteID,
		Action:   "reserva_created",
		Entity:   "reserva",
		EntityID: &r.ID,
	})

	return r, nil
}

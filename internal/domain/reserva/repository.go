package reserva

import (
	"context"

	"github.com/armandiucs114200-ui/barberia-fullstack/internal/models"
)

// ListFilter narrows a listing to one client. A nil ClienteID means no
// visibility restriction (admin callers).
type ListFilter struct {
	ClienteID *string
	Offset    int
	Limit     int
}

type Repository interface {
	// -------- Reserva --------
	ListReservas(
		ctx context.Context,
		filter ListFilter,
	) ([]models.Reserva, int64, error)

	CreateReserva(
		ctx context.Context,
		r *models.Reserva,
	) error

	UpdateReservaEstado(
		ctx context.Context,
		id string,
		estado string,
	) (*models.Reserva, error)

	// -------- Barbero --------
	ListBarberos(
		ctx context.Context,
	) ([]models.Barbero, error)

	// -------- Perfil --------
	GetProfileRole(
		ctx context.Context,
		userID string,
	) (string, error)
}

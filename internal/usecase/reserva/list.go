package reserva

import (
	"context"
	"strings"
	"sync"

	"github.com/armandiucs114200-ui/barberia-fullstack/internal/auth"
	domain "github.com/armandiucs114200-ui/barberia-fullstack/internal/domain/reserva"
	"github.com/armandiucs114200-ui/barberia-fullstack/internal/models"
	"github.com/armandiucs114200-ui/barberia-fullstack/internal/weather"
)

// ======================================================
// INPUT / OUTPUT
// ======================================================

const (
	DefaultPage  = 1
	DefaultLimit = 5
)

type ListReservasInput struct {
	Page  int
	Limit int

	// Caller identity, already verified upstream.
	UserID string
	Role   string
}

type ListReservasOutput struct {
	Data  []models.Reserva
	Page  int
	Limit int
	Total int64
	Pages int
}

// ======================================================
// USE CASE
// ======================================================

type ListReservas struct {
	repo      domain.Repository
	forecasts weather.Provider
}

func NewListReservas(
	repo domain.Repository,
	forecasts weather.Provider,
) *ListReservas {
	return &ListReservas{
		repo:      repo,
		forecasts: forecasts,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *ListReservas) Execute(
	ctx context.Context,
	in ListReservasInput,
) (*ListReservasOutput, error) {

	page := in.Page
	if page < 1 {
		page = DefaultPage
	}
	limit := in.Limit
	if limit < 1 {
		limit = DefaultLimit
	}

	// Non-admin callers only ever see their own rows.
	filter := domain.ListFilter{
		Offset: (page - 1) * limit,
		Limit:  limit,
	}
	if in.Role != auth.RoleAdmin {
		clienteID := in.UserID
		filter.ClienteID = &clienteID
	}

	reservas, total, err := uc.repo.ListReservas(ctx, filter)
	if err != nil {
		return nil, err
	}

	uc.attachForecasts(ctx, reservas)

	pages := int((total + int64(limit) - 1) / int64(limit))

	return &ListReservasOutput{
		Data:  reservas,
		Page:  page,
		Limit: limit,
		Total: total,
		Pages: pages,
	}, nil
}

// attachForecasts enriches every row with the forecast for its date. The
// lookups are independent, so they run concurrently; results merge back by
// index and row order is untouched. A failed lookup leaves that row's clima
// nil and never fails the listing.
func (uc *ListReservas) attachForecasts(ctx context.Context, reservas []models.Reserva) {
	var wg sync.WaitGroup
	for i := range reservas {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			reservas[i].Clima = uc.forecasts.Forecast(ctx, dateOnly(reservas[i].Fecha))
		}(i)
	}
	wg.Wait()
}

// dateOnly strips any time portion from an ISO date string.
func dateOnly(fecha string) string {
	if idx := strings.IndexByte(fecha, 'T'); idx >= 0 {
		return fecha[:idx]
	}
	return fecha
}

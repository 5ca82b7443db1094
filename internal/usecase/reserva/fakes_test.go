package reserva

import (
	"context"
	"sort"

	domain "github.com/armandiucs114200-ui/barberia-fullstack/internal/domain/reserva"
	"github.com/armandiucs114200-ui/barberia-fullstack/internal/models"
	"github.com/armandiucs114200-ui/barberia-fullstack/internal/weather"
)

// fakeRepo is an in-memory domain.Repository with real filtering and
// pagination semantics.
type fakeRepo struct {
	reservas []models.Reserva
	barberos []models.Barbero
	roles    map[string]string

	lastFilter *domain.ListFilter
	listErr    error
	createErr  error
}

func (f *fakeRepo) ListReservas(
	ctx context.Context,
	filter domain.ListFilter,
) ([]models.Reserva, int64, error) {

	f.lastFilter = &filter
	if f.listErr != nil {
		return nil, 0, f.listErr
	}

	var matched []models.Reserva
	for _, r := range f.reservas {
		if filter.ClienteID != nil {
			if r.ClienteID == nil || *r.ClienteID != *filter.ClienteID {
				continue
			}
		}
		matched = append(matched, r)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Fecha < matched[j].Fecha
	})

	total := int64(len(matched))

	if filter.Offset >= len(matched) {
		return nil, total, nil
	}
	end := filter.Offset + filter.Limit
	if end > len(matched) {
		end = len(matched)
	}

	page := make([]models.Reserva, end-filter.Offset)
	copy(page, matched[filter.Offset:end])

	return page, total, nil
}

func (f *fakeRepo) CreateReserva(ctx context.Context, r *models.Reserva) error {
	if f.createErr != nil {
		return f.createErr
	}
	if r.ID == "" {
		r.ID = "generated-id"
	}
	f.reservas = append(f.reservas, *r)
	return nil
}

func (f *fakeRepo) UpdateReservaEstado(
	ctx context.Context,
	id string,
	estado string,
) (*models.Reserva, error) {

	for i := range f.reservas {
		if f.reservas[i].ID == id {
			f.reservas[i].Estado = estado
			r := f.reservas[i]
			return &r, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeRepo) ListBarberos(ctx context.Context) ([]models.Barbero, error) {
	return f.barberos, nil
}

func (f *fakeRepo) GetProfileRole(ctx context.Context, userID string) (string, error) {
	role, ok := f.roles[userID]
	if !ok {
		return "", domain.ErrNotFound
	}
	return role, nil
}

var _ domain.Repository = (*fakeRepo)(nil)

// providerFunc adapts a function to weather.Provider.
type providerFunc func(ctx context.Context, date string) *weather.Forecast

func (f providerFunc) Forecast(ctx context.Context, date string) *weather.Forecast {
	return f(ctx, date)
}

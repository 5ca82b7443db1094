package handlers

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/armandiucs114200-ui/barberia-fullstack/internal/config"
	domain "github.com/armandiucs114200-ui/barberia-fullstack/internal/domain/reserva"
	"github.com/armandiucs114200-ui/barberia-fullstack/internal/identity"
	"github.com/armandiucs114200-ui/barberia-fullstack/internal/middleware"
	"github.com/armandiucs114200-ui/barberia-fullstack/internal/models"
	ucReserva "github.com/armandiucs114200-ui/barberia-fullstack/internal/usecase/reserva"
	"github.com/armandiucs114200-ui/barberia-fullstack/internal/weather"
)

const testJWTSecret = "test_secret"

// ----------------------------------------------------------
// In-memory repository
// ----------------------------------------------------------

type memRepo struct {
	reservas []models.Reserva
	barberos []models.Barbero
	roles    map[string]string
	nextID   int
}

func (m *memRepo) ListReservas(
	ctx context.Context,
	filter domain.ListFilter,
) ([]models.Reserva, int64, error) {

	var matched []models.Reserva
	for _, r := range m.reservas {
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
	return matched[filter.Offset:end], total, nil
}

func (m *memRepo) CreateReserva(ctx context.Context, r *models.Reserva) error {
	m.nextID++
	if r.ID == "" {
		r.ID = fmt.Sprintf("r-%d", m.nextID)
	}
	m.reservas = append(m.reservas, *r)
	return nil
}

func (m *memRepo) UpdateReservaEstado(
	ctx context.Context,
	id string,
	estado string,
) (*models.Reserva, error) {

	for i := range m.reservas {
		if m.reservas[i].ID == id {
			m.reservas[i].Estado = estado
			r := m.reservas[i]
			return &r, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *memRepo) ListBarberos(ctx context.Context) ([]models.Barbero, error) {
	return m.barberos, nil
}

func (m *memRepo) GetProfileRole(ctx context.Context, userID string) (string, error) {
	role, ok := m.roles[userID]
	if !ok {
		return "", domain.ErrNotFound
	}
	return role, nil
}

var _ domain.Repository = (*memRepo)(nil)

// ----------------------------------------------------------
// Fake identity verifier
// ----------------------------------------------------------

type fakeVerifier struct {
	// accounts maps email -> password; the id is derived from the email.
	accounts map[string]string
	err      error
}

func (f *fakeVerifier) VerifyPassword(ctx context.Context, email, password string) (*identity.Identity, error) {
	if f.err != nil {
		return nil, f.err
	}
	stored, ok := f.accounts[email]
	if !ok || stored != password {
		return nil, identity.ErrInvalidCredentials
	}
	return &identity.Identity{ID: "id-" + email, Email: email}, nil
}

// ----------------------------------------------------------
// Router harness mirroring the production route layout
// ----------------------------------------------------------

func newTestRouter(repo domain.Repository, verifier identity.Verifier, forecasts weather.Provider) *gin.Engine {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{JWTSecret: testJWTSecret}

	if forecasts == nil {
		forecasts = weather.Noop{}
	}

	listUC := ucReserva.NewListReservas(repo, forecasts)
	createUC := ucReserva.NewCreateReserva(repo, nil)
	createPublicUC := ucReserva.NewCreatePublicReserva(repo, nil)
	updateEstadoUC := ucReserva.NewUpdateEstado(repo, nil)

	authHandler := NewAuthHandler(verifier, repo, cfg)
	reservaHandler := NewReservaHandler(listUC, createUC, createPublicUC, updateEstadoUC)
	barberoHandler := NewBarberoHandler(repo)
	weatherHandler := NewWeatherHandler(forecasts)

	r := gin.New()
	api := r.Group("/api")

	api.POST("/auth/login", authHandler.Login)
	api.GET("/barberos", barberoHandler.List)
	api.GET("/weather/current", weatherHandler.Current)
	api.POST("/reservas/public", reservaHandler.CreatePublic)

	secured := api.Group("/")
	secured.Use(middleware.AuthMiddleware(cfg))
	{
		secured.GET("/reservas", middleware.ValidatePagination(), reservaHandler.List)
		secured.POST("/reservas", reservaHandler.Create)

		admin := secured.Group("/")
		admin.Use(middleware.RequireRoles("admin"))
		{
			admin.PATCH("/reservas/:id/estado", reservaHandler.UpdateEstado)
		}
	}

	return r
}

func tokenFor(userID, email, role string) string {
	claims := jwt.MapClaims{
		"id":    userID,
		"email": email,
		"role":  role,
		"exp":   time.Now().Add(time.Hour).Unix(),
		"iat":   time.Now().Unix(),
	}
	token, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
	return token
}

package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/armandiucs114200-ui/barberia-fullstack/internal/domain/reserva"
	"github.com/armandiucs114200-ui/barberia-fullstack/internal/models"
)

type ReservaGormRepository struct {
	db *gorm.DB
}

func NewReservaGormRepository(db *gorm.DB) *ReservaGormRepository {
	return &ReservaGormRepository{db: db}
}

// --------------------------------------------------
// Reserva
// --------------------------------------------------

func (r *ReservaGormRepository) ListReservas(
	ctx context.Context,
	filter domain.ListFilter,
) ([]models.Reserva, int64, error) {

	q := r.db.WithContext(ctx).Model(&models.Reserva{})

	if filter.ClienteID != nil {
		q = q.Where("cliente_id = ?", *filter.ClienteID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var reservas []models.Reserva
	if err := q.
		Order("fecha ASC").
		Offset(filter.Offset).
		Limit(filter.Limit).
		Find(&reservas).Error; err != nil {
		return nil, 0, err
	}

	return reservas, total, nil
}

func (r *ReservaGormRepository) CreateReserva(
	ctx context.Context,
	reserva *models.Reserva,
) error {
	return r.db.WithContext(ctx).Create(reserva).Error
}

func (r *ReservaGormRepository) UpdateReservaEstado(
	ctx context.Context,
	id string,
	estado string,
) (*models.Reserva, error) {

	var reserva models.Reserva
	if err := r.db.WithContext(ctx).First(&reserva, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	reserva.Estado = estado
	if err := r.db.WithContext(ctx).Save(&reserva).Error; err != nil {
		return nil, err
	}

	return &reserva, nil
}

// --------------------------------------------------
// Barbero
// --------------------------------------------------

func (r *ReservaGormRepository) ListBarberos(
	ctx context.Context,
) ([]models.Barbero, error) {

	var barberos []models.Barbero
	if err := r.db.WithContext(ctx).
		Order("nombre ASC").
		Find(&barberos).Error; err != nil {
		return nil, err
	}

	return barberos, nil
}

// --------------------------------------------------
// Perfil
// --------------------------------------------------

func (r *ReservaGormRepository) GetProfileRole(
	ctx context.Context,
	userID string,
) (string, error) {

	var perfil models.Perfil
	if err := r.db.WithContext(ctx).First(&perfil, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.ErrNotFound
		}
		return "", err
	}

	return perfil.Role, nil
}

// Compile-time check
var _ domain.Repository = (*ReservaGormRepository)(nil)

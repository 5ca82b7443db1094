package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/armandiucs114200-ui/barberia-fullstack/internal/weather"
)

// Reserva carries either an authenticated client reference (cliente_id) or
// the name/phone pair of a public booking. The two modes are not enforced as
// mutually exclusive at the database level, matching the original schema.
type Reserva struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Fecha string `gorm:"size:10;not null;index" json:"fecha"`
	Hora  string `gorm:"size:5;not null" json:"hora"`

	BarberoID string  `gorm:"size:36;not null" json:"barbero_id"`
	ClienteID *string `gorm:"size:36" json:"cliente_id"`

	ClienteNombre   string `gorm:"size:100" json:"cliente_nombre,omitempty"`
	ClienteTelefono string `gorm:"size:20" json:"cliente_telefono,omitempty"`

	Servicio string `gorm:"size:100;not null" json:"servicio"`
	Estado   string `gorm:"size:20;default:'pendiente'" json:"estado"`

	// Derived at read time, never persisted.
	Clima *weather.Forecast `gorm:"-" json:"clima"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (r *Reserva) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

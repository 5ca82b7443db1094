package models

import "time"

// Barbero is read-only in this API; rows are managed directly in the table
// store.
type Barbero struct {
	ID               string `gorm:"primaryKey;size:36" json:"id"`
	Nombre           string `gorm:"size:100;not null" json:"nombre"`
	Especialidad     string `gorm:"size:100" json:"especialidad"`
	ExperienciaAnios int    `json:"experiencia_anios"`
	FotoURL          string `gorm:"size:255" json:"foto_url"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

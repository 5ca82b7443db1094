package models

import "time"

// Perfil holds the stored role for an identity-provider subject. The table
// name matches the provider-side "profiles" table.
type Perfil struct {
	ID   string `gorm:"primaryKey;size:36" json:"id"`
	Role string `gorm:"size:20;default:'usuario'" json:"role"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Perfil) TableName() string {
	return "profiles"
}

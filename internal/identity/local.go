package identity

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/armandiucs114200-ui/barberia-fullstack/internal/models"
)

// LocalVerifier checks credentials against the usuarios table. It exists for
// environments without the external identity provider; the wire behavior is
// identical.
type LocalVerifier struct {
	db *gorm.DB
}

func NewLocalVerifier(db *gorm.DB) *LocalVerifier {
	return &LocalVerifier{db: db}
}

func (v *LocalVerifier) VerifyPassword(ctx context.Context, email, password string) (*Identity, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var user models.Usuario
	if err := v.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return &Identity{ID: user.ID, Email: user.Email}, nil
}

var _ Verifier = (*LocalVerifier)(nil)

package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"

	"github.com/armandiucs114200-ui/barberia-fullstack/internal/auth"
	"github.com/armandiucs114200-ui/barberia-fullstack/internal/config"
	domain "github.com/armandiucs114200-ui/barberia-fullstack/internal/domain/reserva"
	"github.com/armandiucs114200-ui/barberia-fullstack/internal/httperr"
	"github.com/armandiucs114200-ui/barberia-fullstack/internal/identity"
	"github.com/armandiucs114200-ui/barberia-fullstack/internal/metrics"
)

const tokenTTL = 8 * time.Hour

type AuthHandler struct {
	verifier identity.Verifier
	repo     domain.Repository
	config   *config.Config
}

func NewAuthHandler(
	verifier identity.Verifier,
	repo domain.Repository,
	cfg *config.Config,
) *AuthHandler {
	return &AuthHandler{
		verifier: verifier,
		repo:     repo,
		config:   cfg,
	}
}

// --------- Requests ---------

// Field presence is not validated here; the identity provider rejects
// incomplete credentials through the same invalid-credentials path.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// --------- Handlers ---------

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Invalid request body")
		return
	}

	ident, err := h.verifier.VerifyPassword(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, identity.ErrInvalidCredentials) {
			metrics.IncLogin("rejected")
			httperr.Unauthorized(c, "Invalid credentials")
			return
		}
		log.Error().Err(err).Msg("identity provider failure")
		metrics.IncLogin("error")
		httperr.Internal(c, "Internal server error")
		return
	}

	// Profile lookup failures fall back to the default role, matching the
	// provider-side behavior.
	storedRole, err := h.repo.GetProfileRole(c.Request.Context(), ident.ID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		log.Warn().Err(err).Str("user_id", ident.ID).Msg("profile role lookup failed")
		storedRole = ""
	}

	role := auth.EffectiveRole(ident.Email, storedRole)

	token, err := h.generateToken(ident, role)
	if err != nil {
		httperr.Internal(c, "Internal server error")
		return
	}

	metrics.IncLogin("ok")
	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":    ident.ID,
			"email": ident.Email,
			"role":  role,
		},
	})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(ident *identity.Identity, role string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"id":    ident.ID,
		"email": ident.Email,
		"role":  role,
		"exp":   now.Add(tokenTTL).Unix(),
		"iat":   now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/armandiucs114200-ui/barberia-fullstack/internal/domain/reserva"
	"github.com/armandiucs114200-ui/barberia-fullstack/internal/httperr"
)

type BarberoHandler struct {
	repo domain.Repository
}

func NewBarberoHandler(repo domain.Repository) *BarberoHandler {
	return &BarberoHandler{repo: repo}
}

// List returns every barber, ordered by name. Public endpoint.
func (h *BarberoHandler) List(c *gin.Context) {
	barberos, err := h.repo.ListBarberos(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, barberos)
}

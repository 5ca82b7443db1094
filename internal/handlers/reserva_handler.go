package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/armandiucs114200-ui/barberia-fullstack/internal/domain/reserva"
	"github.com/armandiucs114200-ui/barberia-fullstack/internal/httperr"
	"github.com/armandiucs114200-ui/barberia-fullstack/internal/httpresp"
	"github.com/armandiucs114200-ui/barberia-fullstack/internal/middleware"
	"github.com/armandiucs114200-ui/barberia-fullstack/internal/models"
	ucReserva "github.com/armandiucs114200-ui/barberia-fullstack/internal/usecase/reserva"
)

// ======================================================
// HANDLER
// ======================================================

type ReservaHandler struct {
	listUC         *ucReserva.ListReservas
	createUC       *ucReserva.CreateReserva
	createPublicUC *ucReserva.CreatePublicReserva
	updateEstadoUC *ucReserva.UpdateEstado
}

func NewReservaHandler(
	listUC *ucReserva.ListReservas,
	createUC *ucReserva.CreateReserva,
	createPublicUC *ucReserva.CreatePublicReserva,
	updateEstadoUC *ucReserva.UpdateEstado,
) *ReservaHandler {
	return &ReservaHandler{
		listUC:         listUC,
		createUC:       createUC,
		createPublicUC: createPublicUC,
		updateEstadoUC: updateEstadoUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateReservaRequest struct {
	Fecha     string `json:"fecha"`
	Hora      string `json:"hora"`
	BarberoID string `json:"barbero_id"`
	Servicio  string `json:"servicio"`
}

type CreatePublicReservaRequest struct {
	Fecha           string `json:"fecha"`
	Hora            string `json:"hora"`
	BarberoID       string `json:"barbero_id"`
	Servicio        string `json:"servicio"`
	ClienteNombre   string `json:"cliente_nombre"`
	ClienteTelefono string `json:"cliente_telefono"`
}

type UpdateEstadoRequest struct {
	Estado string `json:"estado"`
}

// ======================================================
// LIST
// ======================================================

func (h *ReservaHandler) List(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)
	role := c.GetString(middleware.ContextUserRole)

	// Already range-checked by the pagination middleware.
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "5"))

	out, err := h.listUC.Execute(c.Request.Context(), ucReserva.ListReservasInput{
		Page:   page,
		Limit:  limit,
		UserID: userID,
		Role:   role,
	})
	if err != nil {
		httperr.Internal(c, "Internal server error")
		return
	}

	httpresp.Paged[models.Reserva](c, out.Data, httpresp.Pagination{
		Page:  out.Page,
		Limit: out.Limit,
		Total: out.Total,
		Pages: out.Pages,
	})
}

// ======================================================
// CREATE (authenticated)
// ======================================================

func (h *ReservaHandler) Create(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	var req CreateReservaRequest
	if err := c.ShouldBindJSON(&req); err != nil ||
		req.Fecha == "" || req.Hora == "" || req.BarberoID == "" || req.Servicio == "" {
		httperr.BadRequest(c, "Todos los campos son obligatorios: fecha, hora, barbero_id, servicio")
		return
	}

	reserva, err := h.createUC.Execute(c.Request.Context(), ucReserva.CreateReservaInput{
		Fecha:     req.Fecha,
		Hora:      req.Hora,
		BarberoID: req.BarberoID,
		Servicio:  req.Servicio,
		ClienteID: userID,
	})
	if err != nil {
		httperr.Internal(c, "Internal server error")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Reserva creada exitosamente",
		"data":    reserva,
	})
}

// ======================================================
// CREATE (public)
// ======================================================

func (h *ReservaHandler) CreatePublic(c *gin.Context) {
	var req CreatePublicReservaRequest
	if err := c.ShouldBindJSON(&req); err != nil ||
		req.Fecha == "" || req.Hora == "" || req.BarberoID == "" || req.Servicio == "" ||
		req.ClienteNombre == "" || req.ClienteTelefono == "" {
		httperr.BadRequest(c, "Todos los campos son obligatorios: fecha, hora, barbero_id, servicio, cliente_nombre, cliente_telefono")
		return
	}

	reserva, err := h.createPublicUC.Execute(c.Request.Context(), ucReserva.CreatePublicReservaInput{
		Fecha:           req.Fecha,
		Hora:            req.Hora,
		BarberoID:       req.BarberoID,
		Servicio:        req.Servicio,
		ClienteNombre:   req.ClienteNombre,
		ClienteTelefono: req.ClienteTelefono,
	})
	if err != nil {
		httperr.Internal(c, "Internal server error")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Reserva pública creada exitosamente",
		"data":    reserva,
	})
}

// ======================================================
// UPDATE ESTADO (admin only)
// ======================================================

func (h *ReservaHandler) UpdateEstado(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)
	id := c.Param("id")

	var req UpdateEstadoRequest
	_ = c.ShouldBindJSON(&req)

	reserva, err := h.updateEstadoUC.Execute(c.Request.Context(), ucReserva.UpdateEstadoInput{
		ReservaID: id,
		Estado:    req.Estado,
		UserID:    userID,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidEstado):
			httperr.BadRequest(c, "Estado inválido. Debe ser pendiente, completada o cancelada")
		case errors.Is(err, domain.ErrNotFound):
			httperr.NotFound(c, "Reserva no encontrada")
		default:
			httperr.Internal(c, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Estado de reserva actualizado",
		"data":    reserva,
	})
}

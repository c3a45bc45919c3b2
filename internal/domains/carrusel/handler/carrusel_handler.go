package handler

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"giit-backend/internal/domains/carrusel/model"
	"giit-backend/internal/domains/carrusel/service"
	"giit-backend/internal/shared/response"
	"giit-backend/internal/shared/utils"
)

// CarruselHandler handles HTTP requests for /carrusel
type CarruselHandler struct {
	service service.Service
}

func NewCarruselHandler(service service.Service) *CarruselHandler {
	return &CarruselHandler{service: service}
}

func bindFoto(c *gin.Context) (*model.CarruselFotoRequest, bool) {
	var req model.CarruselFotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.InvalidPayload(c, err)
		return nil, false
	}
	if err := req.Validate(); err != nil {
		response.InvalidPayload(c, err)
		return nil, false
	}
	return &req, true
}

// CreateFoto handles POST /carrusel/
func (h *CarruselHandler) CreateFoto(c *gin.Context) {
	req, ok := bindFoto(c)
	if !ok {
		return
	}

	f, err := h.service.CreateFoto(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Created(c, f)
}

// ListFotos handles GET /carrusel/
func (h *CarruselHandler) ListFotos(c *gin.Context) {
	fotos, err := h.service.ListFotos(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, fotos)
}

// GetFoto handles GET /carrusel/:id
func (h *CarruselHandler) GetFoto(c *gin.Context) {
	id, err := utils.ParseID(c, "id")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	f, err := h.service.GetFoto(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, f)
}

// UpdateFoto handles PUT /carrusel/:id
func (h *CarruselHandler) UpdateFoto(c *gin.Context) {
	id, err := utils.ParseID(c, "id")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	req, ok := bindFoto(c)
	if !ok {
		return
	}

	f, err := h.service.UpdateFoto(c.Request.Context(), id, req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, f)
}

// ChangeOrden handles PUT /carrusel/:id/orden/:orden
func (h *CarruselHandler) ChangeOrden(c *gin.Context) {
	id, err := utils.ParseID(c, "id")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	orden, err := strconv.Atoi(c.Param("orden"))
	if err != nil {
		response.BadRequest(c, fmt.Sprintf("invalid orden: %q", c.Param("orden")))
		return
	}

	if err := h.service.ChangeOrden(c.Request.Context(), id, orden); err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, response.Message{
		Message: fmt.Sprintf("Orden de la foto %d cambiado a %d", id, orden),
	})
}

// DeleteFoto handles DELETE /carrusel/:id
func (h *CarruselHandler) DeleteFoto(c *gin.Context) {
	id, err := utils.ParseID(c, "id")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.service.DeleteFoto(c.Request.Context(), id); err != nil {
		response.FromError(c, err)
		return
	}
	response.NoContent(c)
}

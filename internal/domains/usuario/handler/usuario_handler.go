package handler

import (
	"github.com/gin-gonic/gin"

	"giit-backend/internal/domains/usuario/model"
	"giit-backend/internal/domains/usuario/service"
	"giit-backend/internal/shared/response"
	"giit-backend/internal/shared/utils"
)

// UsuarioHandler handles HTTP requests for /usuarios
type UsuarioHandler struct {
	service service.Service
}

func NewUsuarioHandler(service service.Service) *UsuarioHandler {
	return &UsuarioHandler{service: service}
}

// CreateUsuario handles POST /usuarios/
func (h *UsuarioHandler) CreateUsuario(c *gin.Context) {
	var req model.UsuarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.InvalidPayload(c, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.InvalidPayload(c, err)
		return
	}

	u, err := h.service.CreateUsuario(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Created(c, u)
}

// ListUsuarios handles GET /usuarios/?skip=&limit=
func (h *UsuarioHandler) ListUsuarios(c *gin.Context) {
	page, err := utils.ParsePagination(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	usuarios, err := h.service.ListUsuarios(c.Request.Context(), page)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.OK(c, usuarios)
}

// GetUsuario handles GET /usuarios/:id
func (h *UsuarioHandler) GetUsuario(c *gin.Context) {
	id, err := utils.ParseID(c, "id")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	u, err := h.service.GetUsuario(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.OK(c, u)
}

// UpdateUsuario handles PUT /usuarios/:id
func (h *UsuarioHandler) UpdateUsuario(c *gin.Context) {
	id, err := utils.ParseID(c, "id")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var req model.UsuarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.InvalidPayload(c, err)
		return
	}
	if err := req.ValidateUpdate(); err != nil {
		response.InvalidPayload(c, err)
		return
	}

	u, err := h.service.UpdateUsuario(c.Request.Context(), id, &req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.OK(c, u)
}

// DeleteUsuario handles DELETE /usuarios/:id
func (h *UsuarioHandler) DeleteUsuario(c *gin.Context) {
	id, err := utils.ParseID(c, "id")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.service.DeleteUsuario(c.Request.Context(), id); err != nil {
		response.FromError(c, err)
		return
	}

	response.NoContent(c)
}

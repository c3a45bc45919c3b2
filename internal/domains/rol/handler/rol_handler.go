package handler

import (
	"github.com/gin-gonic/gin"

	"giit-backend/internal/domains/rol/model"
	"giit-backend/internal/domains/rol/service"
	"giit-backend/internal/shared/response"
	"giit-backend/internal/shared/utils"
)

// RolHandler handles HTTP requests for /roles
type RolHandler struct {
	service service.Service
}

func NewRolHandler(service service.Service) *RolHandler {
	return &RolHandler{service: service}
}

// CreateRol handles POST /roles/
func (h *RolHandler) CreateRol(c *gin.Context) {
	var req model.RolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.InvalidPayload(c, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.InvalidPayload(c, err)
		return
	}

	rol, err := h.service.CreateRol(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Created(c, rol)
}

// ListRoles handles GET /roles/?skip=&limit=
func (h *RolHandler) ListRoles(c *gin.Context) {
	page, err := utils.ParsePagination(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	roles, err := h.service.ListRoles(c.Request.Context(), page)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.OK(c, roles)
}

// GetRol handles GET /roles/:id
func (h *RolHandler) GetRol(c *gin.Context) {
	id, err := utils.ParseID(c, "id")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	rol, err := h.service.GetRol(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.OK(c, rol)
}

// UpdateRol handles PUT /roles/:id
func (h *RolHandler) UpdateRol(c *gin.Context) {
	id, err := utils.ParseID(c, "id")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var req model.RolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.InvalidPayload(c, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.InvalidPayload(c, err)
		return
	}

	rol, err := h.service.UpdateRol(c.Request.Context(), id, &req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.OK(c, rol)
}

// DeleteRol handles DELETE /roles/:id
func (h *RolHandler) DeleteRol(c *gin.Context) {
	id, err := utils.ParseID(c, "id")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.service.DeleteRol(c.Request.Context(), id); err != nil {
		response.FromError(c, err)
		return
	}

	response.NoContent(c)
}

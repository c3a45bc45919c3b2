package handler

import (
	"github.com/gin-gonic/gin"

	"giit-backend/internal/domains/tipologia/model"
	"giit-backend/internal/domains/tipologia/service"
	"giit-backend/internal/shared/response"
	"giit-backend/internal/shared/utils"
)

type TipologiaHandler struct {
	service service.Service
}

func NewTipologiaHandler(service service.Service) *TipologiaHandler {
	return &TipologiaHandler{service: service}
}

func (h *TipologiaHandler) bind(c *gin.Context) (*model.TipologiaRequest, bool) {
	var req model.TipologiaRequest
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

// CreateTipologia handles POST /tipologias/
func (h *TipologiaHandler) CreateTipologia(c *gin.Context) {
	req, ok := h.bind(c)
	if !ok {
		return
	}

	t, err := h.service.CreateTipologia(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Created(c, t)
}

// ListTipologias handles GET /tipologias/
func (h *TipologiaHandler) ListTipologias(c *gin.Context) {
	page, err := utils.ParsePagination(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	tipologias, err := h.service.ListTipologias(c.Request.Context(), page)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, tipologias)
}

// GetTipologia handles GET /tipologias/:id
func (h *TipologiaHandler) GetTipologia(c *gin.Context) {
	id, err := utils.ParseID(c, "id")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	t, err := h.service.GetTipologia(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, t)
}

// UpdateTipologia handles PUT /tipologias/:id
func (h *TipologiaHandler) UpdateTipologia(c *gin.Context) {
	id, err := utils.ParseID(c, "id")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	req, ok := h.bind(c)
	if !ok {
		return
	}

	t, err := h.service.UpdateTipologia(c.Request.Context(), id, req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, t)
}

// DeleteTipologia handles DELETE /tipologias/:id
func (h *TipologiaHandler) DeleteTipologia(c *gin.Context) {
	id, err := utils.ParseID(c, "id")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.service.DeleteTipologia(c.Request.Context(), id); err != nil {
		response.FromError(c, err)
		return
	}
	response.NoContent(c)
}

package handler

import (
	"github.com/gin-gonic/gin"

	"giit-backend/internal/domains/linea/model"
	"giit-backend/internal/domains/linea/service"
	"giit-backend/internal/shared/response"
	"giit-backend/internal/shared/utils"
)

// LineaHandler handles HTTP requests for /lineas-investigacion
type LineaHandler struct {
	service service.Service
}

func NewLineaHandler(service service.Service) *LineaHandler {
	return &LineaHandler{service: service}
}

func bindLinea(c *gin.Context) (*model.LineaRequest, bool) {
	var req model.LineaRequest
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

// CreateLinea handles POST /lineas-investigacion/
func (h *LineaHandler) CreateLinea(c *gin.Context) {
	req, ok := bindLinea(c)
	if !ok {
		return
	}

	l, err := h.service.CreateLinea(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Created(c, l)
}

// ListLineas handles GET /lineas-investigacion/?skip=&limit=&estado=
func (h *LineaHandler) ListLineas(c *gin.Context) {
	page, err := utils.ParsePagination(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	filter := model.LineaFilter{Estado: utils.QueryString(c, "estado")}
	if err := filter.Validate(); err != nil {
		response.InvalidPayload(c, err)
		return
	}

	lineas, err := h.service.ListLineas(c.Request.Context(), filter, page)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, lineas)
}

// GetLinea handles GET /lineas-investigacion/:id
func (h *LineaHandler) GetLinea(c *gin.Context) {
	id, err := utils.ParseID(c, "id")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	l, err := h.service.GetLinea(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, l)
}

// UpdateLinea handles PUT /lineas-investigacion/:id
func (h *LineaHandler) UpdateLinea(c *gin.Context) {
	id, err := utils.ParseID(c, "id")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	req, ok := bindLinea(c)
	if !ok {
		return
	}

	l, err := h.service.UpdateLinea(c.Request.Context(), id, req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, l)
}

// DeleteLinea handles DELETE /lineas-investigacion/:id
func (h *LineaHandler) DeleteLinea(c *gin.Context) {
	id, err := utils.ParseID(c, "id")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.service.DeleteLinea(c.Request.Context(), id); err != nil {
		response.FromError(c, err)
		return
	}
	response.NoContent(c)
}

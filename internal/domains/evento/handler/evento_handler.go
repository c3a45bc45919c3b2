package handler

import (
	"github.com/gin-gonic/gin"

	"giit-backend/internal/domains/evento/model"
	"giit-backend/internal/domains/evento/service"
	"giit-backend/internal/shared"
	"giit-backend/internal/shared/response"
	"giit-backend/internal/shared/utils"
)

// EventoHandler handles HTTP requests for /eventos
type EventoHandler struct {
	service service.Service
}

func NewEventoHandler(service service.Service) *EventoHandler {
	return &EventoHandler{service: service}
}

func bindEvento(c *gin.Context) (*model.EventoRequest, bool) {
	var req model.EventoRequest
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

func queryDate(c *gin.Context, name string) (*shared.Date, error) {
	raw := utils.QueryString(c, name)
	if raw == nil {
		return nil, nil
	}
	d, err := shared.ParseDate(*raw)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func parseFilter(c *gin.Context) (model.EventoFilter, error) {
	var (
		filter model.EventoFilter
		err    error
	)
	if filter.FechaInicio, err = queryDate(c, "fecha_inicio"); err != nil {
		return filter, err
	}
	if filter.FechaFin, err = queryDate(c, "fecha_fin"); err != nil {
		return filter, err
	}
	if filter.IDCreador, err = utils.QueryInt64(c, "id_creador"); err != nil {
		return filter, err
	}
	filter.TipoEvento = utils.QueryString(c, "tipo_evento")
	return filter, nil
}

// CreateEvento handles POST /eventos/
func (h *EventoHandler) CreateEvento(c *gin.Context) {
	req, ok := bindEvento(c)
	if !ok {
		return
	}

	e, err := h.service.CreateEvento(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Created(c, e)
}

// ListEventos handles GET /eventos/?skip=&limit=&fecha_inicio=&fecha_fin=&tipo_evento=&id_creador=
func (h *EventoHandler) ListEventos(c *gin.Context) {
	page, err := utils.ParsePagination(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	filter, err := parseFilter(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	eventos, err := h.service.ListEventos(c.Request.Context(), filter, page)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, eventos)
}

// GetEvento handles GET /eventos/:id
func (h *EventoHandler) GetEvento(c *gin.Context) {
	id, err := utils.ParseID(c, "id")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	e, err := h.service.GetEvento(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, e)
}

// UpdateEvento handles PUT /eventos/:id
func (h *EventoHandler) UpdateEvento(c *gin.Context) {
	id, err := utils.ParseID(c, "id")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	req, ok := bindEvento(c)
	if !ok {
		return
	}

	e, err := h.service.UpdateEvento(c.Request.Context(), id, req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, e)
}

// DeleteEvento handles DELETE /eventos/:id
func (h *EventoHandler) DeleteEvento(c *gin.Context) {
	id, err := utils.ParseID(c, "id")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.service.DeleteEvento(c.Request.Context(), id); err != nil {
		response.FromError(c, err)
		return
	}
	response.NoContent(c)
}

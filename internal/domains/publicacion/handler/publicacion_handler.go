package handler

import (
	"github.com/gin-gonic/gin"

	"giit-backend/internal/domains/publicacion/model"
	"giit-backend/internal/domains/publicacion/service"
	"giit-backend/internal/shared/response"
	"giit-backend/internal/shared/utils"
)

// PublicacionHandler handles HTTP requests for /publicaciones
type PublicacionHandler struct {
	service service.Service
}

func NewPublicacionHandler(service service.Service) *PublicacionHandler {
	return &PublicacionHandler{service: service}
}

func bindPublicacion(c *gin.Context) (*model.PublicacionRequest, bool) {
	var req model.PublicacionRequest
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

// CreatePublicacion handles POST /publicaciones/
func (h *PublicacionHandler) CreatePublicacion(c *gin.Context) {
	req, ok := bindPublicacion(c)
	if !ok {
		return
	}

	p, err := h.service.CreatePublicacion(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Created(c, p)
}

// ListPublicaciones handles GET /publicaciones/?estado=&id_linea=&id_autor=
func (h *PublicacionHandler) ListPublicaciones(c *gin.Context) {
	page, err := utils.ParsePagination(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	filter := model.PublicacionFilter{Estado: utils.QueryString(c, "estado")}
	if filter.IDLinea, err = utils.QueryInt64(c, "id_linea"); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if filter.IDAutor, err = utils.QueryInt64(c, "id_autor"); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := filter.Validate(); err != nil {
		response.InvalidPayload(c, err)
		return
	}

	publicaciones, err := h.service.ListPublicaciones(c.Request.Context(), filter, page)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, publicaciones)
}

// GetPublicacion handles GET /publicaciones/:id
func (h *PublicacionHandler) GetPublicacion(c *gin.Context) {
	id, err := utils.ParseID(c, "id")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	p, err := h.service.GetPublicacion(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, p)
}

// UpdatePublicacion handles PUT /publicaciones/:id
func (h *PublicacionHandler) UpdatePublicacion(c *gin.Context) {
	id, err := utils.ParseID(c, "id")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	req, ok := bindPublicacion(c)
	if !ok {
		return
	}

	p, err := h.service.UpdatePublicacion(c.Request.Context(), id, req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, p)
}

// DeletePublicacion handles DELETE /publicaciones/:id
func (h *PublicacionHandler) DeletePublicacion(c *gin.Context) {
	id, err := utils.ParseID(c, "id")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.service.DeletePublicacion(c.Request.Context(), id); err != nil {
		response.FromError(c, err)
		return
	}
	response.NoContent(c)
}

// approverParam đọc ?id_aprobador= bắt buộc
func approverParam(c *gin.Context) (int64, bool) {
	approverID, err := utils.QueryInt64(c, "id_aprobador")
	if err != nil {
		response.BadRequest(c, err.Error())
		return 0, false
	}
	if approverID == nil {
		response.BadRequest(c, "id_aprobador is required")
		return 0, false
	}
	return *approverID, true
}

// AprobarPublicacion handles PUT /publicaciones/:id/aprobar?id_aprobador=
func (h *PublicacionHandler) AprobarPublicacion(c *gin.Context) {
	id, err := utils.ParseID(c, "id")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	approverID, ok := approverParam(c)
	if !ok {
		return
	}

	p, err := h.service.AprobarPublicacion(c.Request.Context(), id, approverID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, p)
}

// RechazarPublicacion handles PUT /publicaciones/:id/rechazar?id_aprobador=
func (h *PublicacionHandler) RechazarPublicacion(c *gin.Context) {
	id, err := utils.ParseID(c, "id")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	approverID, ok := approverParam(c)
	if !ok {
		return
	}

	p, err := h.service.RechazarPublicacion(c.Request.Context(), id, approverID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, p)
}

// UpdateEstado handles PUT /publicaciones/:id/estado
func (h *PublicacionHandler) UpdateEstado(c *gin.Context) {
	id, err := utils.ParseID(c, "id")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var req model.EstadoUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.InvalidPayload(c, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.InvalidPayload(c, err)
		return
	}

	resp, err := h.service.UpdateEstado(c.Request.Context(), id, &req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, resp)
}

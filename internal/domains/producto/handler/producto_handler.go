package handler

import (
	"github.com/gin-gonic/gin"

	"giit-backend/internal/domains/producto/model"
	"giit-backend/internal/domains/producto/service"
	"giit-backend/internal/shared/response"
	"giit-backend/internal/shared/utils"
)

// ProductoHandler handles HTTP requests for /productos
type ProductoHandler struct {
	service service.Service
}

func NewProductoHandler(service service.Service) *ProductoHandler {
	return &ProductoHandler{service: service}
}

func bindProducto(c *gin.Context) (*model.ProductoRequest, bool) {
	var req model.ProductoRequest
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

// CreateProducto handles POST /productos/
func (h *ProductoHandler) CreateProducto(c *gin.Context) {
	req, ok := bindProducto(c)
	if !ok {
		return
	}

	p, err := h.service.CreateProducto(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Created(c, p)
}

func parseFilter(c *gin.Context) (model.ProductoFilter, error) {
	filter := model.ProductoFilter{
		EstadoDesarrollo: utils.QueryString(c, "estado_desarrollo"),
		EstadoAprobacion: utils.QueryString(c, "estado_aprobacion"),
	}

	var err error
	if filter.IDLinea, err = utils.QueryInt64(c, "id_linea"); err != nil {
		return filter, err
	}
	if filter.IDTipologia, err = utils.QueryInt64(c, "id_tipologia"); err != nil {
		return filter, err
	}
	if filter.IDResponsable, err = utils.QueryInt64(c, "id_responsable"); err != nil {
		return filter, err
	}
	return filter, nil
}

// ListProductos handles GET /productos/
func (h *ProductoHandler) ListProductos(c *gin.Context) {
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
	if err := filter.Validate(); err != nil {
		response.InvalidPayload(c, err)
		return
	}

	productos, err := h.service.ListProductos(c.Request.Context(), filter, page)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, productos)
}

// GetProducto handles GET /productos/:id
func (h *ProductoHandler) GetProducto(c *gin.Context) {
	id, err := utils.ParseID(c, "id")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	p, err := h.service.GetProducto(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, p)
}

// UpdateProducto handles PUT /productos/:id
func (h *ProductoHandler) UpdateProducto(c *gin.Context) {
	id, err := utils.ParseID(c, "id")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	req, ok := bindProducto(c)
	if !ok {
		return
	}

	p, err := h.service.UpdateProducto(c.Request.Context(), id, req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, p)
}

// DeleteProducto handles DELETE /productos/:id
func (h *ProductoHandler) DeleteProducto(c *gin.Context) {
	id, err := utils.ParseID(c, "id")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.service.DeleteProducto(c.Request.Context(), id); err != nil {
		response.FromError(c, err)
		return
	}
	response.NoContent(c)
}

// UpdateEstadoDesarrollo handles PUT /productos/:id/estado?estado=
func (h *ProductoHandler) UpdateEstadoDesarrollo(c *gin.Context) {
	id, err := utils.ParseID(c, "id")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	estado := c.Query("estado")
	if err := model.ValidateDesarrollo(estado); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	p, err := h.service.UpdateEstadoDesarrollo(c.Request.Context(), id, estado)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, p)
}

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

// AprobarProducto handles PUT /productos/:id/aprobar?id_aprobador=
func (h *ProductoHandler) AprobarProducto(c *gin.Context) {
	id, err := utils.ParseID(c, "id")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	approverID, ok := approverParam(c)
	if !ok {
		return
	}

	p, err := h.service.AprobarProducto(c.Request.Context(), id, approverID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, p)
}

// RechazarProducto handles PUT /productos/:id/rechazar?id_aprobador=
func (h *ProductoHandler) RechazarProducto(c *gin.Context) {
	id, err := utils.ParseID(c, "id")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	approverID, ok := approverParam(c)
	if !ok {
		return
	}

	p, err := h.service.RechazarProducto(c.Request.Context(), id, approverID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, p)
}

// UpdateEstadoAprobacion handles PUT /productos/:id/estado-aprobacion
func (h *ProductoHandler) UpdateEstadoAprobacion(c *gin.Context) {
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

	resp, err := h.service.UpdateEstadoAprobacion(c.Request.Context(), id, &req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, resp)
}

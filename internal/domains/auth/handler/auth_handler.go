package handler

import (
	"github.com/gin-gonic/gin"

	"giit-backend/internal/domains/auth/model"
	"giit-backend/internal/domains/auth/service"
	"giit-backend/internal/shared/response"
)

type AuthHandler struct {
	service service.Service
}

func NewAuthHandler(service service.Service) *AuthHandler {
	return &AuthHandler{service: service}
}

// Login handles POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.InvalidPayload(c, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.InvalidPayload(c, err)
		return
	}

	resp, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, resp)
}

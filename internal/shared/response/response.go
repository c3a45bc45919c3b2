package response

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"giit-backend/internal/shared/apperror"
)

// Response là envelope cho error responses.
// Success responses trả thẳng resource để giữ contract với client cũ.
type Response struct {
	Success bool   `json:"success"`
	Error   *Error `json:"error,omitempty"`
}

type Error struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// Message là body dạng {"message": "..."}
type Message struct {
	Message string `json:"message"`
}

// Success responses
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error responses
func ErrorResponse(c *gin.Context, statusCode int, code, message string) {
	c.JSON(statusCode, Response{
		Success: false,
		Error: &Error{
			Code:    code,
			Message: message,
		},
	})
}

func ErrorWithDetails(c *gin.Context, statusCode int, code, message string, details interface{}) {
	c.JSON(statusCode, Response{
		Success: false,
		Error: &Error{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

// FromError maps err to its status and writes the error envelope.
// Internal causes are logged, never sent.
func FromError(c *gin.Context, err error) {
	appErr := apperror.From(err)
	status := apperror.HTTPStatus(appErr)

	if status >= http.StatusInternalServerError {
		log.Error().
			Err(err).
			Str("request_id", c.GetString("request_id")).
			Str("code", appErr.Code).
			Msg("request failed")
	}

	ErrorResponse(c, status, appErr.Code, appErr.Message)
}

// Common error responses
func BadRequest(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusBadRequest, "BAD_REQUEST", message)
}

// InvalidPayload reports bind or validation failures. ozzo validation.Errors
// marshal to a field => message map, anything else to its string.
func InvalidPayload(c *gin.Context, err error) {
	var details interface{} = err.Error()
	if m, ok := err.(json.Marshaler); ok {
		details = m
	}
	ErrorWithDetails(c, http.StatusBadRequest, "INVALID_PAYLOAD", "Datos de entrada inválidos", details)
}

func NotFound(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusNotFound, "NOT_FOUND", message)
}

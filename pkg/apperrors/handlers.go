package apperrors

import (
	"log"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the standard error body.
type ErrorResponse struct {
	Error *AppError `json:"error"`
}

// GinErrorHandler writes AppErrors out through gin.
type GinErrorHandler struct {
	Debug bool
}

func (h *GinErrorHandler) HandleGinError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
		if !h.Debug {
			// Never leak internal detail to the client.
			appErr.Message = "Erro interno do servidor"
			appErr.Details = nil
		}
	}

	if appErr.HTTPCode >= 500 {
		log.Printf("Server error: %v", appErr.Unwrap())
	}

	c.JSON(appErr.HTTPCode, ErrorResponse{Error: appErr})
}

// HandleError is the shorthand used by handlers and middleware.
func HandleError(c *gin.Context, err error) {
	handler := &GinErrorHandler{Debug: gin.Mode() != gin.ReleaseMode}
	handler.HandleGinError(c, err)
}

// AsAppError tries to unwrap an error into *AppError.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

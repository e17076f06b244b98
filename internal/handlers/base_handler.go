package handlers

import (
	"mime/multipart"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"membrostotal_backend/internal/config"
	"membrostotal_backend/internal/logger"
	"membrostotal_backend/internal/middleware"
	"membrostotal_backend/internal/validator"
	"membrostotal_backend/pkg/apperrors"
	"membrostotal_backend/pkg/pagination"

	"github.com/gin-gonic/gin"
)

type BaseHandler struct {
	validator *validator.Validator
}

func NewBaseHandler(v *validator.Validator) *BaseHandler {
	return &BaseHandler{validator: v}
}

func (h *BaseHandler) BindAndValidateJSON(c *gin.Context, obj interface{}) bool {
	ctx := c.Request.Context()

	if err := c.ShouldBindJSON(obj); err != nil {
		logger.CtxWithError(ctx, "failed to bind request body", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.NewBadRequestError("Corpo da requisição inválido"))
		return false
	}

	if err := h.validator.Validate(obj); err != nil {
		if vErr, ok := err.(*validator.ValidationError); ok {
			logger.CtxWarn(ctx, "validation failed", "errors", vErr.Errors, "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.ValidationError(vErr.Errors))
		} else {
			logger.CtxWithError(ctx, "internal validator error", err, "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.InternalError(err))
		}
		return false
	}
	return true
}

func (h *BaseHandler) BindAndValidateQuery(c *gin.Context, obj interface{}) bool {
	ctx := c.Request.Context()

	if err := c.ShouldBindQuery(obj); err != nil {
		logger.CtxWithError(ctx, "failed to bind query params", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.NewBadRequestError("Parâmetros de consulta inválidos"))
		return false
	}

	if err := h.validator.Validate(obj); err != nil {
		if vErr, ok := err.(*validator.ValidationError); ok {
			logger.CtxWarn(ctx, "validation failed", "errors", vErr.Errors, "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.ValidationError(vErr.Errors))
		} else {
			logger.CtxWithError(ctx, "internal validator error", err, "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.InternalError(err))
		}
		return false
	}
	return true
}

func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	ctx := c.Request.Context()

	if appErr, ok := apperrors.AsAppError(err); ok {
		logger.CtxWarn(ctx, "service error",
			"error", appErr.Message,
			"code", appErr.Code,
			"path", c.Request.URL.Path,
		)
		apperrors.HandleError(c, appErr)
		return
	}

	logger.CtxWithError(ctx, "internal server error", err, "path", c.Request.URL.Path)
	apperrors.HandleError(c, apperrors.InternalError(err))
}

// GetAndAuthorizeUserID reads the authenticated user id set by the auth
// middleware. A missing id means the route was wired without it.
func (h *BaseHandler) GetAndAuthorizeUserID(c *gin.Context) (uint, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		logger.CtxWarn(c.Request.Context(), "unauthorized access: userID not found in context",
			"path", c.Request.URL.Path,
			"ip", c.ClientIP(),
		)
		apperrors.HandleError(c, apperrors.NewUnauthorizedError("Usuário não autenticado"))
		return 0, false
	}
	return userID, true
}

func ParseParamID(c *gin.Context, key string) (uint, error) {
	valueStr := c.Param(key)
	value, err := strconv.ParseUint(valueStr, 10, 64)
	if err != nil || value == 0 {
		return 0, apperrors.NewBadRequestError("Parâmetro inválido: " + key)
	}
	return uint(value), nil
}

func ParseQueryInt(c *gin.Context, key string, defaultValue int) int {
	valueStr := c.Query(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func ParseQueryUint(c *gin.Context, key string) uint {
	value, err := strconv.ParseUint(c.Query(key), 10, 64)
	if err != nil {
		return 0
	}
	return uint(value)
}

// ParsePagination reads page/per_page with the API-wide defaults.
func ParsePagination(c *gin.Context) pagination.Params {
	page := ParseQueryInt(c, "page", 0)
	perPage := ParseQueryInt(c, "per_page", 0)
	return pagination.NewParams(page, perPage)
}

// ParseQueryDate accepts YYYY-MM-DD.
func ParseQueryDate(c *gin.Context, key string) (*time.Time, error) {
	valueStr := c.Query(key)
	if valueStr == "" {
		return nil, nil
	}
	value, err := time.Parse("2006-01-02", valueStr)
	if err != nil {
		return nil, apperrors.NewBadRequestError("Data inválida em " + key + ", use AAAA-MM-DD")
	}
	return &value, nil
}

// OpenUploadedFile validates and opens the multipart "file" field.
// Returns the open file, its header and the normalized extension.
func (h *BaseHandler) OpenUploadedFile(c *gin.Context) (multipart.File, *multipart.FileHeader, string, bool) {
	cfg := config.GetConfig()

	header, err := c.FormFile("file")
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Arquivo não enviado"))
		return nil, nil, "", false
	}

	if header.Size > cfg.Upload.MaxSize {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Arquivo excede o tamanho máximo permitido"))
		return nil, nil, "", false
	}

	contentType := header.Header.Get("Content-Type")
	allowed := false
	for _, t := range cfg.Upload.AllowedTypes {
		if t == contentType {
			allowed = true
			break
		}
	}
	if !allowed {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Tipo de arquivo não permitido: "+contentType))
		return nil, nil, "", false
	}

	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(header.Filename)), ".")
	if ext == "" {
		ext = extFromContentType(contentType)
	}

	file, err := header.Open()
	if err != nil {
		apperrors.HandleError(c, apperrors.InternalError(err))
		return nil, nil, "", false
	}

	return file, header, ext, true
}

func extFromContentType(contentType string) string {
	switch contentType {
	case "image/jpeg":
		return "jpg"
	case "image/png":
		return "png"
	case "image/webp":
		return "webp"
	case "application/pdf":
		return "pdf"
	default:
		return "bin"
	}
}

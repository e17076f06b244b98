package handlers

import (
	"net/http"

	"membrostotal_backend/internal/middleware"
	"membrostotal_backend/internal/models"
	"membrostotal_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type AutocompleteHandler struct {
	*BaseHandler
	autocompleteService services.AutocompleteService
}

func NewAutocompleteHandler(base *BaseHandler, autocompleteService services.AutocompleteService) *AutocompleteHandler {
	return &AutocompleteHandler{
		BaseHandler:         base,
		autocompleteService: autocompleteService,
	}
}

func (h *AutocompleteHandler) RegisterRoutes(r *gin.RouterGroup) {
	autocomplete := r.Group("/autocomplete")
	autocomplete.Use(middleware.AuthMiddleware(), middleware.RequireProfiles(models.ProfileAdmin))
	{
		autocomplete.GET("", h.Fetch)
	}
}

func (h *AutocompleteHandler) Fetch(c *gin.Context) {
	response, err := h.autocompleteService.Fetch(c.Query("fields"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

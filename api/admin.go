package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mlipatova/airgate/internal/apperr"
	"github.com/mlipatova/airgate/internal/domain"
	"github.com/mlipatova/airgate/internal/service/admin"
)

type AdminHandler struct {
	service admin.ConfigUseCase
}

type updateConfigRequest struct {
	ID string `json:"id"`
	domain.APIConfigUpdate
}

func NewAdminHandler(service admin.ConfigUseCase) *AdminHandler {
	return &AdminHandler{service: service}
}

func (h *AdminHandler) Register(router *gin.RouterGroup) {
	router.GET("/config", h.listConfigs)
	router.PUT("/config", h.updateConfig)
}

func (h *AdminHandler) listConfigs(c *gin.Context) {
	configs, err := h.service.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"configs": configs})
}

func (h *AdminHandler) updateConfig(c *gin.Context) {
	var req updateConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, apperr.InvalidInput("invalid request body"))
		return
	}

	cfg, err := h.service.Update(c.Request.Context(), req.ID, req.APIConfigUpdate)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"config":  cfg,
		"message": "Configuration updated successfully",
	})
}

package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"moodtrip/internal/infra"
)

type HealthController struct {
	engine string
}

func NewHealthController(cfg *infra.Config) *HealthController {
	provider := cfg.Provider
	if provider == "" {
		provider = "gemini"
	}
	return &HealthController{
		engine: fmt.Sprintf("%s + 좌표 검증", provider),
	}
}

func (h *HealthController) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"engine": h.engine,
	})
}

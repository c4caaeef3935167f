package modules

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HealthModule struct{}

func NewHealthModule() *HealthModule { return &HealthModule{} }

func (m *HealthModule) Register(rg *gin.RouterGroup) {
	// Liveness probe; body intentionally empty.
	rg.GET("/health_check", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
}

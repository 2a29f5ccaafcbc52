package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/resumehub/resume-ai/internal/container"
	handlers "github.com/resumehub/resume-ai/internal/interface/http"
	"github.com/resumehub/resume-ai/internal/interface/middleware"
)

type HealthModule struct {
	Handler *handlers.HealthHandler
}

func NewHealthModule(h *handlers.HealthHandler) *HealthModule {
	return &HealthModule{Handler: h}
}

func (m *HealthModule) Register(rg *gin.RouterGroup) {
	rl := middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())
	rg.GET("/health", rl, m.Handler.Check)
}

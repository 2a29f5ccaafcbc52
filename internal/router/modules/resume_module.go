package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/resumehub/resume-ai/internal/container"
	handlers "github.com/resumehub/resume-ai/internal/interface/http"
	"github.com/resumehub/resume-ai/internal/interface/middleware"
	"github.com/resumehub/resume-ai/pkg/helpers"
)

type ResumeModule struct {
	Handler *handlers.ResumeHandler
	JWT     *helpers.JWTManager
}

func NewResumeModule(h *handlers.ResumeHandler, jwt *helpers.JWTManager) *ResumeModule {
	return &ResumeModule{Handler: h, JWT: jwt}
}

func (m *ResumeModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.BearerAuth(m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 30, time.Minute, middleware.KeyByIP(), nil))
	{
		auth.POST("/resume/parse", m.Handler.Parse)
		auth.GET("/resume/search", m.Handler.Search)
	}
}

package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/resumehub/resume-ai/internal/container"
	handlers "github.com/resumehub/resume-ai/internal/interface/http"
	"github.com/resumehub/resume-ai/internal/interface/middleware"
	"github.com/resumehub/resume-ai/pkg/helpers"
)

type ChatModule struct {
	Handler *handlers.ChatHandler
	JWT     *helpers.JWTManager
}

func NewChatModule(h *handlers.ChatHandler, jwt *helpers.JWTManager) *ChatModule {
	return &ChatModule{Handler: h, JWT: jwt}
}

func (m *ChatModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.BearerAuth(m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByIP(), nil))
	{
		auth.POST("/chat", m.Handler.Chat)
	}
}

package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/resumehub/resume-ai/internal/container"
	handlers "github.com/resumehub/resume-ai/internal/interface/http"
	"github.com/resumehub/resume-ai/internal/interface/middleware"
)

type AuthModule struct {
	Handler *handlers.AuthHandler
}

func NewAuthModule(h *handlers.AuthHandler) *AuthModule {
	return &AuthModule{Handler: h}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	// All auth endpoints are public; per-IP limits keep OTP issuance
	// and credential guessing in check.
	registerLimiter := middleware.RateLimit(container.GetRedis(), 5, time.Minute, middleware.KeyByIPAndPath(), nil)
	verifyLimiter := middleware.RateLimit(container.GetRedis(), 30, time.Minute, middleware.KeyByIPAndPath(), nil)
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIP(), nil)

	rg.POST("/auth/register", registerLimiter, m.Handler.Register)
	rg.POST("/auth/verify-otp", verifyLimiter, m.Handler.VerifyOTP)
	rg.POST("/auth/setup-password", verifyLimiter, m.Handler.SetupPassword)
	rg.POST("/auth/login", loginLimiter, m.Handler.Login)
	rg.POST("/auth/resend-otp", registerLimiter, m.Handler.ResendOTP)
}

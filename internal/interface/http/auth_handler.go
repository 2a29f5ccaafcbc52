package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/resumehub/resume-ai/internal/application"
	"github.com/resumehub/resume-ai/pkg/response"
	"github.com/resumehub/resume-ai/pkg/validation"
)

type AuthHandler struct {
	Svc    *application.AuthService
	Logger *logrus.Logger
}

func NewAuthHandler(svc *application.AuthService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

type registerRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type verifyOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
	OTP   string `json:"otp" binding:"required,len=6,numeric"`
}

type setupPasswordRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,pwd"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register POST /api/auth/register {email}
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FailDetails(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	acc, err := h.Svc.Register(c.Request.Context(), req.Email)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrAlreadyRegistered):
			response.Fail(c, http.StatusBadRequest, "Email already registered")
		case errors.Is(err, application.ErrOTPDelivery):
			response.Fail(c, http.StatusInternalServerError, "Failed to send OTP email")
		default:
			h.serverError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "OTP sent successfully",
		"email":       acc.Email,
		"isVerified":  acc.IsVerified,
		"hasPassword": acc.HasPassword,
	})
}

// VerifyOTP POST /api/auth/verify-otp {email, otp}
func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	var req verifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FailDetails(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	acc, err := h.Svc.VerifyOTP(c.Request.Context(), req.Email, req.OTP)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrAccountNotFound):
			response.Fail(c, http.StatusNotFound, "User not found")
		case errors.Is(err, application.ErrInvalidOTP):
			response.Fail(c, http.StatusBadRequest, "Invalid or expired OTP")
		default:
			h.serverError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "OTP verified successfully",
		"hasPassword": acc.HasPassword,
		"isVerified":  true,
	})
}

// SetupPassword POST /api/auth/setup-password {email, password}
func (h *AuthHandler) SetupPassword(c *gin.Context) {
	var req setupPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FailDetails(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	token, err := h.Svc.SetupPassword(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrNotVerified):
			response.Fail(c, http.StatusBadRequest, "User not found or not verified")
		case errors.Is(err, application.ErrPasswordAlreadySet):
			response.Fail(c, http.StatusBadRequest, "Password already set")
		default:
			h.serverError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Password set successfully",
		"token":   token,
	})
}

// Login POST /api/auth/login {email, password}
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FailDetails(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	acc, token, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, application.ErrInvalidCredentials) {
			response.Fail(c, http.StatusUnauthorized, "Invalid credentials")
		} else {
			h.serverError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"email":       acc.Email,
			"isVerified":  acc.IsVerified,
			"hasPassword": acc.HasPassword,
		},
	})
}

// ResendOTP POST /api/auth/resend-otp {email}
func (h *AuthHandler) ResendOTP(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FailDetails(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	acc, err := h.Svc.ResendOTP(c.Request.Context(), req.Email)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrAccountNotFound):
			response.Fail(c, http.StatusNotFound, "User not found")
		case errors.Is(err, application.ErrOTPDelivery):
			response.Fail(c, http.StatusInternalServerError, "Failed to send OTP email")
		default:
			h.serverError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "OTP resent successfully",
		"email":       acc.Email,
		"isVerified":  acc.IsVerified,
		"hasPassword": acc.HasPassword,
	})
}

func (h *AuthHandler) serverError(c *gin.Context, err error) {
	h.Logger.WithError(err).WithField("request_id", c.GetString("request_id")).Error("auth request failed")
	response.FailDetails(c, http.StatusInternalServerError, "Server error", err.Error())
}

package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resumehub/resume-ai/internal/application"
	"github.com/resumehub/resume-ai/internal/domain/entity"
	"github.com/resumehub/resume-ai/internal/domain/repository"
	"github.com/resumehub/resume-ai/pkg/helpers"
	"github.com/resumehub/resume-ai/pkg/validation"
)

type fakeRepo struct {
	byEmail map[string]*entity.Account
}

func (r *fakeRepo) Create(_ context.Context, a *entity.Account) error {
	if _, ok := r.byEmail[a.Email]; ok {
		return repository.ErrDuplicateEmail
	}
	a.ID = uuid.NewString()
	cp := *a
	r.byEmail[a.Email] = &cp
	return nil
}

func (r *fakeRepo) GetByID(_ context.Context, id string) (*entity.Account, error) {
	for _, a := range r.byEmail {
		if a.ID == id {
			cp := *a
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeRepo) GetByEmail(_ context.Context, email string) (*entity.Account, error) {
	a, ok := r.byEmail[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (r *fakeRepo) Update(_ context.Context, a *entity.Account) error {
	if _, ok := r.byEmail[a.Email]; !ok {
		return repository.ErrNotFound
	}
	cp := *a
	r.byEmail[a.Email] = &cp
	return nil
}

type fakeSender struct {
	lastCode string
	fail     bool
}

func (s *fakeSender) SendOTP(_ context.Context, _, code string) error {
	if s.fail {
		return assert.AnError
	}
	s.lastCode = code
	return nil
}

func newAuthRouter(t *testing.T) (*gin.Engine, *fakeRepo, *fakeSender) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	validation.Init()

	repo := &fakeRepo{byEmail: map[string]*entity.Account{}}
	sender := &fakeSender{}
	logger := logrus.New()
	svc := application.NewAuthService(repo, helpers.NewJWTManager("test-secret", time.Hour), sender, logger)
	h := NewAuthHandler(svc, logger)

	r := gin.New()
	auth := r.Group("/api/auth")
	auth.POST("/register", h.Register)
	auth.POST("/verify-otp", h.VerifyOTP)
	auth.POST("/setup-password", h.SetupPassword)
	auth.POST("/login", h.Login)
	auth.POST("/resend-otp", h.ResendOTP)
	return r, repo, sender
}

func doJSON(r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	b, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestRegisterValidation(t *testing.T) {
	r, _, _ := newAuthRouter(t)

	w := doJSON(r, "/api/auth/register", gin.H{"email": "not-an-email"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	body := decode(t, w)
	assert.Equal(t, "invalid payload", body["message"])
	details := body["details"].(map[string]any)
	assert.Contains(t, details, "email")
}

func TestRegistrationFlow(t *testing.T) {
	r, _, sender := newAuthRouter(t)

	w := doJSON(r, "/api/auth/register", gin.H{"email": "Flow@Example.com"})
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "OTP sent successfully", body["message"])
	assert.Equal(t, "flow@example.com", body["email"])
	assert.Equal(t, false, body["isVerified"])
	assert.Equal(t, false, body["hasPassword"])

	// Wrong code first.
	wrong := "000000"
	if sender.lastCode == wrong {
		wrong = "000001"
	}
	w = doJSON(r, "/api/auth/verify-otp", gin.H{"email": "flow@example.com", "otp": wrong})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid or expired OTP", decode(t, w)["message"])

	w = doJSON(r, "/api/auth/verify-otp", gin.H{"email": "flow@example.com", "otp": sender.lastCode})
	require.Equal(t, http.StatusOK, w.Code)
	body = decode(t, w)
	assert.Equal(t, "OTP verified successfully", body["message"])
	assert.Equal(t, true, body["isVerified"])

	w = doJSON(r, "/api/auth/setup-password", gin.H{"email": "flow@example.com", "password": "secret123"})
	require.Equal(t, http.StatusOK, w.Code)
	body = decode(t, w)
	assert.Equal(t, "Password set successfully", body["message"])
	assert.NotEmpty(t, body["token"])

	w = doJSON(r, "/api/auth/login", gin.H{"email": "flow@example.com", "password": "secret123"})
	require.Equal(t, http.StatusOK, w.Code)
	body = decode(t, w)
	assert.NotEmpty(t, body["token"])
	user := body["user"].(map[string]any)
	assert.Equal(t, "flow@example.com", user["email"])
	assert.Equal(t, true, user["isVerified"])
	assert.Equal(t, true, user["hasPassword"])
}

func TestRegisterActiveAccountRejected(t *testing.T) {
	r, repo, _ := newAuthRouter(t)

	hash, _ := helpers.HashPassword("secret123")
	require.NoError(t, repo.Create(context.Background(), &entity.Account{
		Email: "done@example.com", PasswordHash: hash, IsVerified: true, HasPassword: true,
	}))

	w := doJSON(r, "/api/auth/register", gin.H{"email": "done@example.com"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Email already registered", decode(t, w)["message"])
}

func TestRegisterDeliveryFailure(t *testing.T) {
	r, _, sender := newAuthRouter(t)
	sender.fail = true

	w := doJSON(r, "/api/auth/register", gin.H{"email": "a@example.com"})
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Failed to send OTP email", decode(t, w)["message"])
}

func TestVerifyOTPUnknownEmail(t *testing.T) {
	r, _, _ := newAuthRouter(t)

	w := doJSON(r, "/api/auth/verify-otp", gin.H{"email": "nobody@example.com", "otp": "123456"})
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "User not found", decode(t, w)["message"])
}

func TestVerifyOTPShapeValidation(t *testing.T) {
	r, _, _ := newAuthRouter(t)

	for _, otp := range []string{"12345", "1234567", "12345a"} {
		w := doJSON(r, "/api/auth/verify-otp", gin.H{"email": "a@example.com", "otp": otp})
		require.Equal(t, http.StatusBadRequest, w.Code, "otp %q", otp)
		assert.Contains(t, decode(t, w)["details"].(map[string]any), "otp")
	}
}

func TestSetupPasswordErrors(t *testing.T) {
	r, _, sender := newAuthRouter(t)

	// Too short fails binding, never reaching the service.
	w := doJSON(r, "/api/auth/setup-password", gin.H{"email": "a@example.com", "password": "short"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode(t, w)["details"].(map[string]any), "password")

	// Unverified account.
	w = doJSON(r, "/api/auth/setup-password", gin.H{"email": "a@example.com", "password": "secret123"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "User not found or not verified", decode(t, w)["message"])

	doJSON(r, "/api/auth/register", gin.H{"email": "a@example.com"})
	doJSON(r, "/api/auth/verify-otp", gin.H{"email": "a@example.com", "otp": sender.lastCode})
	w = doJSON(r, "/api/auth/setup-password", gin.H{"email": "a@example.com", "password": "secret123"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, "/api/auth/setup-password", gin.H{"email": "a@example.com", "password": "other456"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Password already set", decode(t, w)["message"])
}

func TestLoginNonDisclosureBodies(t *testing.T) {
	r, _, sender := newAuthRouter(t)

	doJSON(r, "/api/auth/register", gin.H{"email": "a@example.com"})
	doJSON(r, "/api/auth/verify-otp", gin.H{"email": "a@example.com", "otp": sender.lastCode})
	doJSON(r, "/api/auth/setup-password", gin.H{"email": "a@example.com", "password": "secret123"})

	unknown := doJSON(r, "/api/auth/login", gin.H{"email": "nobody@example.com", "password": "secret123"})
	wrongPwd := doJSON(r, "/api/auth/login", gin.H{"email": "a@example.com", "password": "wrong-password"})

	require.Equal(t, http.StatusUnauthorized, unknown.Code)
	require.Equal(t, http.StatusUnauthorized, wrongPwd.Code)
	assert.Equal(t, unknown.Body.String(), wrongPwd.Body.String(),
		"responses must not reveal whether the email is registered")
}

func TestResendOTP(t *testing.T) {
	r, _, sender := newAuthRouter(t)

	w := doJSON(r, "/api/auth/resend-otp", gin.H{"email": "nobody@example.com"})
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "User not found", decode(t, w)["message"])

	doJSON(r, "/api/auth/register", gin.H{"email": "a@example.com"})

	w = doJSON(r, "/api/auth/resend-otp", gin.H{"email": "a@example.com"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OTP resent successfully", decode(t, w)["message"])

	// The resent code is the one that now verifies.
	w = doJSON(r, "/api/auth/verify-otp", gin.H{"email": "a@example.com", "otp": sender.lastCode})
	require.Equal(t, http.StatusOK, w.Code)
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resumehub/resume-ai/pkg/helpers"
)

func newProtectedRouter(jwt *helpers.JWTManager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", BearerAuth(jwt), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"accountID": c.GetString(CtxAccountIDKey)})
	})
	return r
}

func get(r *gin.Engine, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestBearerAuthMissingHeader(t *testing.T) {
	r := newProtectedRouter(helpers.NewJWTManager("secret", time.Hour))

	assert.Equal(t, http.StatusUnauthorized, get(r, "").Code)
	assert.Equal(t, http.StatusUnauthorized, get(r, "Basic abc").Code)
	assert.Equal(t, http.StatusUnauthorized, get(r, "Bearer").Code)
}

func TestBearerAuthInvalidToken(t *testing.T) {
	jwt := helpers.NewJWTManager("secret", time.Hour)
	r := newProtectedRouter(jwt)

	assert.Equal(t, http.StatusUnauthorized, get(r, "Bearer not-a-token").Code)

	other := helpers.NewJWTManager("different", time.Hour)
	token, _, err := other.Generate("account-1")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, get(r, "Bearer "+token).Code)
}

func TestBearerAuthValidToken(t *testing.T) {
	jwt := helpers.NewJWTManager("secret", time.Hour)
	r := newProtectedRouter(jwt)

	token, _, err := jwt.Generate("account-1")
	require.NoError(t, err)

	w := get(r, "Bearer "+token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "account-1")

	// Scheme matching is case-insensitive.
	assert.Equal(t, http.StatusOK, get(r, "bearer "+token).Code)
}

package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resumehub/resume-ai/internal/application"
)

type stubGenerator struct {
	reply string
	err   error
	calls int
}

func (g *stubGenerator) GenerateContent(_ context.Context, _ string) (string, error) {
	g.calls++
	return g.reply, g.err
}

func newChatRouter(gen application.Generator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := logrus.New()
	h := NewChatHandler(application.NewChatService(gen, logger), logger)

	r := gin.New()
	r.POST("/api/chat", h.Chat)
	return r
}

func TestChatEmptyPrompt(t *testing.T) {
	gen := &stubGenerator{reply: "hi"}
	r := newChatRouter(gen)

	for _, payload := range []any{gin.H{}, gin.H{"prompt": ""}, "not json"} {
		w := doJSON(r, "/api/chat", payload)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Prompt is required", decode(t, w)["error"])
	}
	assert.Zero(t, gen.calls, "generator must not be called without a prompt")
}

func TestChatSuccess(t *testing.T) {
	gen := &stubGenerator{reply: "Here is your resume advice."}
	r := newChatRouter(gen)

	w := doJSON(r, "/api/chat", gin.H{"prompt": "Improve my resume"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Here is your resume advice.", decode(t, w)["response"])
	assert.Equal(t, 1, gen.calls)
}

func TestChatUpstreamFailure(t *testing.T) {
	gen := &stubGenerator{err: errors.New("quota exceeded")}
	r := newChatRouter(gen)

	w := doJSON(r, "/api/chat", gin.H{"prompt": "hello"})
	require.Equal(t, http.StatusInternalServerError, w.Code)

	body := decode(t, w)
	assert.Equal(t, "Something went wrong", body["error"])
	assert.Equal(t, "quota exceeded", body["details"])
}

func TestChatNotConfigured(t *testing.T) {
	r := newChatRouter(nil)

	w := doJSON(r, "/api/chat", gin.H{"prompt": "hello"})
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Something went wrong", decode(t, w)["error"])
}

package mailer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderOTP(t *testing.T) {
	subject, text, html, err := RenderOTP("123456")
	require.NoError(t, err)

	assert.Equal(t, "Email Verification OTP", subject)
	assert.Contains(t, text, "123456")
	assert.Contains(t, text, "expire in 10 minutes")
	assert.Contains(t, html, "123456")
	assert.Contains(t, html, "Email Verification")
}

func TestRenderOTPEscapesCode(t *testing.T) {
	_, _, html, err := RenderOTP("<script>")
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
}

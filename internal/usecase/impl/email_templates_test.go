package impl

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResetCodeEmail(t *testing.T) {
	subject, html, err := resetCodeEmail("Flock", "042917", 10*time.Minute)
	require.NoError(t, err)

	assert.Equal(t, "Flock password reset code", subject)
	assert.Contains(t, html, "042917")
	assert.Contains(t, html, "expires in 10 minutes")
}

func TestResetConfirmationEmail_EscapesName(t *testing.T) {
	_, html, err := resetConfirmationEmail("Flock", "<b>Ruth</b>")
	require.NoError(t, err)

	assert.Contains(t, html, "&lt;b&gt;Ruth&lt;/b&gt;")
	assert.NotContains(t, html, "<b>Ruth</b>")
}

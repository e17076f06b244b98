package email

import (
	"testing"

	"membrostotal_backend/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestExpertRequestBodyEscapesInput(t *testing.T) {
	body := expertRequestBody(`<script>alert("x")</script>`, `"mal"@exemplo.dev`)

	assert.NotContains(t, body, "<script>")
	assert.Contains(t, body, "&lt;script&gt;alert(&#34;x&#34;)&lt;/script&gt;")
	assert.Contains(t, body, "&#34;mal&#34;@exemplo.dev")
}

func TestExpertRequestBodyKeepsPlainValues(t *testing.T) {
	body := expertRequestBody("Maria Silva", "maria@exemplo.dev")

	assert.Contains(t, body, "<b>Nome:</b> Maria Silva")
	assert.Contains(t, body, "<b>E-mail:</b> maria@exemplo.dev")
}

func TestSenderDisabled(t *testing.T) {
	cfg := &config.Config{}
	s := NewSender(cfg)

	assert.False(t, s.Enabled())
	assert.Error(t, s.Send("a@b.c", "assunto", "corpo"))
}

package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_ToHTML(t *testing.T) {
	r := NewRenderer()

	out, err := r.ToHTML("**steps**\n\n<script>alert(1)</script>")
	require.NoError(t, err)
	assert.Contains(t, out, "<strong>steps</strong>")
	assert.NotContains(t, out, "<script>")
}

func TestRenderer_PlainText(t *testing.T) {
	r := NewRenderer()
	assert.Equal(t, "Crash on save", r.PlainText("  <b>Crash</b> on save "))
	assert.Equal(t, "", r.PlainText("<img src=x onerror=alert(1)>"))
	assert.Equal(t, "Fix A & B", r.PlainText("Fix A & B"))
}

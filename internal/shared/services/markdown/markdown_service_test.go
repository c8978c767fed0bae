package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkdownService_Table(t *testing.T) {
	svc := NewMarkdownService()

	out, err := svc.ToHTMLSanitized("| Date | Hours |\n|---|---:|\n| 2026-03-14 | 0.20 |\n")
	require.NoError(t, err)
	assert.Contains(t, out, "<table>")
	assert.Contains(t, out, "<td>2026-03-14</td>")
}

func TestMarkdownService_StripsScripts(t *testing.T) {
	svc := NewMarkdownService()

	out, err := svc.ToHTMLSanitized("**Case:** Acme <script>alert(1)</script>")
	require.NoError(t, err)
	assert.Contains(t, out, "<strong>Case:</strong>")
	assert.NotContains(t, out, "<script>")
}

func TestMarkdownService_DropsEventHandlers(t *testing.T) {
	svc := NewMarkdownService()

	out, err := svc.ToHTMLSanitized(`Client: <img src="x" onerror="alert(1)">`)
	require.NoError(t, err)
	assert.NotContains(t, out, "onerror")
}

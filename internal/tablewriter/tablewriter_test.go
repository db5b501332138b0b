package tablewriter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRenderWithHeaders(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	w.SetHeader([]string{"Field", "Type"})
	w.Append([]string{"customer_id", "INT"})
	w.Append([]string{"email", "VARCHAR(255)"})
	w.Render()

	expected := `+-------------+--------------+
| Field       | Type         |
+-------------+--------------+
| customer_id | INT          |
| email       | VARCHAR(255) |
+-------------+--------------+
`
	require.Equal(t, expected, buf.String())
}

func TestRenderEmpty(t *testing.T) {
	var buf bytes.Buffer
	NewWriter(&buf).Render()
	require.Equal(t, "", buf.String())
}

func TestRenderShortRow(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	w.SetHeader([]string{"A", "B"})
	w.Append([]string{"only"})
	w.Render()

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 5)
	// Every line has the same width.
	for _, line := range lines[1:] {
		require.Equal(t, displayWidth(lines[0]), displayWidth(line))
	}
}

func TestDisplayWidthStripsANSI(t *testing.T) {
	colored := "\x1b[36mcyan\x1b[0m"
	require.Equal(t, 4, displayWidth(colored))
}

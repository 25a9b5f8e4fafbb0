package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func capture(t *testing.T, fn func()) string {
	t.Helper()
	var buf bytes.Buffer
	prev := SetWriter(&buf)
	defer SetWriter(prev)
	fn()
	return buf.String()
}

func TestMessages(t *testing.T) {
	tests := []struct {
		name     string
		fn       func(string)
		expected string
	}{
		{"success", Success, "✔ done"},
		{"error", Error, "✘ done"},
		{"warn", Warn, "⚠ done"},
		{"info", Info, "• done"},
		{"step", Step, "done"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := capture(t, func() { tt.fn("done") })
			assert.Contains(t, got, tt.expected)
		})
	}
}

func TestVerbose(t *testing.T) {
	SetVerbose(false)
	assert.Empty(t, capture(t, func() { Verbose("debug detail") }))

	SetVerbose(true)
	defer SetVerbose(false)
	assert.Contains(t, capture(t, func() { Verbose("debug detail") }), "debug detail")
}

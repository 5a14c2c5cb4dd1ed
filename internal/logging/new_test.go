package logging

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		format   string
		level    string
		wantType any
		wantErr  bool
	}{
		{name: "default is slog text", format: "", level: "", wantType: &SlogLogger{}},
		{name: "json", format: "json", level: "debug", wantType: &SlogLogger{}},
		{name: "zap", format: "zap", level: "warn", wantType: &ZapLogger{}},
		{name: "unknown format", format: "xml", wantErr: true},
		{name: "bad slog level", format: "text", level: "loud", wantErr: true},
		{name: "bad zap level", format: "zap", level: "loud", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l, err := New(&buf, tt.format, tt.level)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.wantType, l)
		})
	}
}

func TestNew_ZapWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(&buf, FormatZap, "info")
	require.NoError(t, err)

	l.Info(context.Background(), "hello", "k", "v")

	assert.Contains(t, buf.String(), `"msg":"hello"`)
	assert.Contains(t, buf.String(), `"k":"v"`)
}

package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextHook_Run(t *testing.T) {
	tests := []struct {
		name      string
		setupCtx  func() context.Context
		wantKeys  []string
		wantEmpty []string
	}{
		{
			name: "run_id and command",
			setupCtx: func() context.Context {
				ctx := WithRunID(context.Background(), "abcd1234")
				return WithCommand(ctx, "remind")
			},
			wantKeys: []string{"run_id", "command"},
		},
		{
			name: "only run_id",
			setupCtx: func() context.Context {
				return WithRunID(context.Background(), "abcd1234")
			},
			wantKeys:  []string{"run_id"},
			wantEmpty: []string{"command"},
		},
		{
			name:      "no context values",
			setupCtx:  context.Background,
			wantEmpty: []string{"run_id", "command"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer

			logger := zerolog.New(&buf).Hook(ContextHook{})
			logger.Info().Ctx(tt.setupCtx()).Msg("test")

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

			for _, key := range tt.wantKeys {
				assert.Contains(t, entry, key)
			}
			for _, key := range tt.wantEmpty {
				assert.NotContains(t, entry, key)
			}
		})
	}
}

func TestComponent(t *testing.T) {
	var buf bytes.Buffer

	l := Component(zerolog.New(&buf), "task-store")
	l.Info().Msg("loaded")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "task-store", entry["component"])
	assert.Equal(t, "loaded", entry["message"])
}

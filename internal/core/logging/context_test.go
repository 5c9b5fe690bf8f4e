package logging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithRunID(t *testing.T) {
	ctx := WithRunID(context.Background(), "k3x9a2b1")
	assert.Equal(t, "k3x9a2b1", GetRunID(ctx))
}

func TestWithCommand(t *testing.T) {
	ctx := WithCommand(context.Background(), "ls")
	assert.Equal(t, "ls", GetCommand(ctx))
}

func TestGetters_EmptyContext(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, GetRunID(ctx))
	assert.Empty(t, GetCommand(ctx))
}

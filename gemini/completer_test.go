package gemini_test

import (
	"context"
	"testing"

	"github.com/fwojciec/provscan"
	"github.com/fwojciec/provscan/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompleter_Complete_ReturnsErrorWhenPromptEmpty(t *testing.T) {
	t.Parallel()

	c := gemini.NewCompleter(nil, "") // nil client ok for this test

	_, err := c.Complete(context.Background(), "")

	require.Error(t, err)
	assert.Equal(t, provscan.EINVALID, provscan.ErrorCode(err))
	assert.Contains(t, provscan.ErrorMessage(err), "prompt required")
}

func TestBuildConfig_SetsTemperature(t *testing.T) {
	t.Parallel()

	config := gemini.BuildConfig()

	require.NotNil(t, config.Temperature)
	assert.InDelta(t, 0.1, float64(*config.Temperature), 0.001)
}

func TestBuildConfig_SetsSystemInstruction(t *testing.T) {
	t.Parallel()

	config := gemini.BuildConfig()

	require.NotNil(t, config.SystemInstruction)
	require.Len(t, config.SystemInstruction.Parts, 1)
	assert.Contains(t, config.SystemInstruction.Parts[0].Text, "JSON object")
}

package audio_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/statecast/pkg/audio"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := audio.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "statecast", cfg.ClientName)
	assert.Equal(t, 2, cfg.Inputs)
	assert.Equal(t, 2, cfg.Outputs)
	assert.Equal(t, 64, cfg.EventBuffer)
}

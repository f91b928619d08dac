package logs

import (
	"bytes"
	"encoding/json"
	"testing"

	"bartile/config"
	"bartile/internal/domain/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(env, level string, pretty bool) *config.Config {
	cfg := &config.Config{}
	cfg.Env.Env = env
	cfg.Env.ServiceName = "bartile"
	cfg.Env.Log.Level = level
	cfg.Env.Log.Pretty = pretty

	return cfg
}

func TestNewLogger_ProductionForcesJSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := newLogger(&buf, testConfig(constants.EnvProduction, "info", true))
	require.NoError(t, err)

	logger.Info("hello")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "bartile", line["service"])
	assert.Equal(t, constants.EnvProduction, line["env"])
}

func TestNewLogger_PrettyInDevelop(t *testing.T) {
	var buf bytes.Buffer
	logger, err := newLogger(&buf, testConfig(constants.EnvDevelop, "debug", true))
	require.NoError(t, err)

	logger.Debug("hello")

	assert.Contains(t, buf.String(), "msg=hello")
	assert.Contains(t, buf.String(), "env=develop")
}

func TestNewLogger_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	logger, err := newLogger(&buf, testConfig(constants.EnvStaging, "warn", false))
	require.NoError(t, err)

	logger.Info("dropped")
	assert.Zero(t, buf.Len())

	logger.Warn("kept")
	assert.Contains(t, buf.String(), "kept")
}

func TestNewLogger_UnknownLevel(t *testing.T) {
	_, err := newLogger(&bytes.Buffer{}, testConfig(constants.EnvDevelop, "chatty", false))
	require.Error(t, err)
}

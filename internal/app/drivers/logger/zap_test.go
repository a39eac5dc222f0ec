package logger

import (
	"booking-service/internal/app/config"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zap.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zap.WarnLevel, parseLevel("warn"))
	assert.Equal(t, zap.ErrorLevel, parseLevel("error"))
	assert.Equal(t, zap.InfoLevel, parseLevel("info"))
	assert.Equal(t, zap.InfoLevel, parseLevel("verbose"))
}

func TestOutputsFor(t *testing.T) {
	cfg := config.Logger{OutputFileName: "app.log", OutputErrorFileName: "app_error.log"}

	out, errOut := outputsFor(cfg, "production")
	assert.Equal(t, []string{"app.log"}, out)
	assert.Equal(t, []string{"stderr", "app_error.log"}, errOut)

	out, errOut = outputsFor(cfg, "development")
	assert.Equal(t, []string{"stdout"}, out)
	assert.Equal(t, []string{"stderr"}, errOut)
}

func TestNewZapLoggerWritesToFileInProduction(t *testing.T) {
	dir := t.TempDir()
	driverConfig := &config.DriverConfig{Logger: config.Logger{
		Level:               "debug",
		OutputFileName:      filepath.Join(dir, "app.log"),
		OutputErrorFileName: filepath.Join(dir, "app_error.log"),
	}}
	internalConfig := &config.InternalConfig{App: config.App{Env: "production", Version: "v1"}}

	logger, err := NewZapLogger(driverConfig, internalConfig)
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zap.DebugLevel))
	logger.Info("hello")
	_ = logger.Sync()

	assert.FileExists(t, filepath.Join(dir, "app.log"))
}

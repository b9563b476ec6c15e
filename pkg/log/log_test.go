package log

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background())

	assert.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))
	assert.Empty(t, GetCorrelationID(context.Background()))
}

func TestSetup_WritesToRotatingFile(t *testing.T) {
	defer SetupTestLogger()
	defer logrus.SetOutput(logrus.StandardLogger().Out)

	file := filepath.Join(t.TempDir(), "dashboard.log")
	closer := Setup(Options{Level: "warning", File: file, MaxSizeMB: 1})
	require.NotNil(t, closer)

	assert.Equal(t, logrus.WarnLevel, logrus.GetLevel())
	L.Warn("fallback acionado")
	require.NoError(t, closer.Close())
	assert.FileExists(t, file)
}

func TestSetup_InvalidLevelFallsBackToInfo(t *testing.T) {
	defer SetupTestLogger()

	closer := Setup(Options{Level: "barulhento"})

	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
	assert.NoError(t, closer.Close())
}

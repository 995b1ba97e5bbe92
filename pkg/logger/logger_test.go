package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewZapLogger(t *testing.T) {
	for _, env := range []string{"production", "development"} {
		log, err := NewZapLogger(env)
		require.NoError(t, err, env)
		require.NotNil(t, log)

		log.With(zap.String("env", env)).Error("boom", errors.New("cause"))
	}
}

func TestNopLoggerAcceptsNilError(t *testing.T) {
	log := NewNop()
	assert.NotPanics(t, func() {
		log.Error("no cause", nil)
		log.Debug("quiet")
		_ = log.Sync()
	})
}

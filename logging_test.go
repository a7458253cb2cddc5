package openpush

import (
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerHelperFields(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()
	level := logrus.GetLevel()
	logrus.SetLevel(logrus.DebugLevel)
	defer logrus.SetLevel(level)

	newLogger("Helper.Register").
		WithProvider("gcm").
		WithError(errors.New("boom")).
		WithField("attempt", 2).
		Warn("Registration failed")

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Equal(t, "Registration failed", entry.Message)
	assert.Equal(t, "Helper.Register", entry.Data["function"])
	assert.Equal(t, "openpush", entry.Data["package"])
	assert.Equal(t, "gcm", entry.Data["provider"])
	assert.Equal(t, "boom", entry.Data["error"])
	assert.Equal(t, 2, entry.Data["attempt"])
}

func TestLoggerHelperNilErrorAndLevels(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()
	level := logrus.GetLevel()
	logrus.SetLevel(logrus.DebugLevel)
	defer logrus.SetLevel(level)

	l := newLogger("f").WithError(nil)
	l.Debug("d")
	l.Info("i")
	l.Error("e")

	entries := hook.AllEntries()
	require.Len(t, entries, 3)
	assert.Equal(t, logrus.DebugLevel, entries[0].Level)
	assert.Equal(t, logrus.InfoLevel, entries[1].Level)
	assert.Equal(t, logrus.ErrorLevel, entries[2].Level)
	_, hasError := entries[2].Data["error"]
	assert.False(t, hasError)
}

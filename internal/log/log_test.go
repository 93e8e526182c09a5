package log

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func TestSetDebug(t *testing.T) {
	var buf bytes.Buffer
	saved := Logger
	Logger = New(&buf)
	defer func() { Logger = saved }()

	Debug("hidden")
	assert.Empty(t, buf.String())

	SetDebug(true)
	assert.Equal(t, log.DebugLevel, Logger.GetLevel())
	Debugf("loaded %d packages", 3)
	assert.Contains(t, buf.String(), "loaded 3 packages")

	SetDebug(false)
	assert.Equal(t, log.InfoLevel, Logger.GetLevel())
}

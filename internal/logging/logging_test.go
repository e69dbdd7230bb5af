package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultLoggerLevels(t *testing.T) {
	var out, errOut bytes.Buffer
	l := NewWithWriters("gizmo", false, &out, &errOut)

	l.Debugf("hidden %d", 1)
	l.Infof("orbit %d", 2)
	l.Warnf("careful")
	l.Errorf("broken: %s", "x")

	assert.NotContains(t, out.String(), "hidden")
	assert.Contains(t, out.String(), "[gizmo] INFO: orbit 2")
	assert.Contains(t, errOut.String(), "[gizmo] WARN: careful")
	assert.Contains(t, errOut.String(), "[gizmo] ERROR: broken: x")

	l.SetDebug(true)
	assert.True(t, l.DebugEnabled())
	l.Debugf("shown %d", 3)
	assert.Contains(t, out.String(), "DEBUG: shown 3")
}

func TestOrNop(t *testing.T) {
	l := OrNop(nil)
	assert.NotNil(t, l)
	assert.False(t, l.DebugEnabled())
	l.Infof("discarded")
}

package utils

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSpinner_StartStop(t *testing.T) {
	var buf bytes.Buffer
	s := NewSpinner(&buf, "resizing...", 5*time.Millisecond, false)
	s.StopMsg = "done\n"

	s.Start()
	s.Start() // no-op
	time.Sleep(20 * time.Millisecond)
	s.Stop()

	out := buf.String()
	assert.Contains(t, out, "resizing...")
	assert.True(t, strings.HasSuffix(out, "done\n"))

	// Stopping an idle spinner does nothing.
	n := buf.Len()
	s.Stop()
	assert.Equal(t, n, buf.Len())
}

func TestSpinner_Restart(t *testing.T) {
	var buf bytes.Buffer
	s := NewSpinner(&buf, "working", time.Millisecond, false)

	for i := 0; i < 3; i++ {
		s.Start()
		time.Sleep(5 * time.Millisecond)
		s.Stop()
	}
	assert.Equal(t, 3, strings.Count(buf.String(), "\r\033[K"))
}

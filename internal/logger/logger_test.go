/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package logger

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() {
		SetOutput(os.Stderr)
		SetVerbose(false)
	})

	Warn("token %s missing in %s mode", "bg/subtle", "dark")
	Info("wrote %s", "tokens.ts")
	Debug("hidden")
	SetVerbose(true)
	Debug("shown")

	assert.Equal(t, "warning: token bg/subtle missing in dark mode\nwrote tokens.ts\ndebug: shown\n", buf.String())

	buf.Reset()
	SetOutput(io.Discard)
	Warn("silent")
	assert.Empty(t, buf.String())
}

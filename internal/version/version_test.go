/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package version

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func withBuild(t *testing.T, version, tag, commit, dirty, module string) {
	t.Helper()
	saved := []string{Version, GitTag, GitCommit, GitDirty}
	savedRead := readBuildInfo
	t.Cleanup(func() {
		Version, GitTag, GitCommit, GitDirty = saved[0], saved[1], saved[2], saved[3]
		readBuildInfo = savedRead
	})

	Version, GitTag, GitCommit, GitDirty = version, tag, commit, dirty
	readBuildInfo = func() (*debug.BuildInfo, bool) {
		return &debug.BuildInfo{Main: debug.Module{Version: module}}, true
	}
}

func TestGet(t *testing.T) {
	tests := []struct {
		name                                string
		version, tag, commit, dirty, module string
		expected                            string
	}{
		{"ldflags", "v1.2.3", "unknown", "unknown", "", "(devel)", "v1.2.3"},
		{"module", "dev", "unknown", "unknown", "", "v0.4.0", "v0.4.0"},
		{"tag and commit", "dev", "v0.4.0", "abcdef123456", "", "(devel)", "v0.4.0-abcdef1"},
		{"dirty", "dev", "v0.4.0", "abcdef1", "dirty", "", "v0.4.0-abcdef1-dirty"},
		{"tag already has commit", "dev", "v0.4.0-abcdef1", "abcdef1", "", "", "v0.4.0-abcdef1"},
		{"nothing known", "dev", "unknown", "unknown", "", "(devel)", "dev"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withBuild(t, tt.version, tt.tag, tt.commit, tt.dirty, tt.module)
			assert.Equal(t, tt.expected, Get())
		})
	}
}

func TestFull(t *testing.T) {
	withBuild(t, "v1.0.0", "v1.0.0", "abc1234", "", "")
	assert.Equal(t, "v1.0.0 (commit: abc1234)", Full())

	withBuild(t, "v1.0.0", "unknown", "unknown", "", "")
	assert.Equal(t, "v1.0.0", Full())
}

func TestInfo(t *testing.T) {
	withBuild(t, "v1.0.0", "v1.0.0", "abc1234", "", "")
	info := Info()
	assert.Equal(t, "v1.0.0", info["version"])
	assert.Equal(t, "abc1234", info["gitCommit"])
}

package version

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromBuildInfo(t *testing.T) {
	vcs := &debug.BuildInfo{
		GoVersion: "go1.24.0",
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0123456789abcdef"},
			{Key: "vcs.time", Value: "2026-03-01T10:20:30Z"},
			{Key: "vcs.modified", Value: "true"},
		},
	}

	tests := []struct {
		name   string
		commit string
		date   string
		bi     *debug.BuildInfo
		want   Info
	}{
		{
			name: "no build info",
			want: Info{Version: "dev"},
		},
		{
			name: "vcs stamps fill the gaps",
			bi:   vcs,
			want: Info{Version: "dev", Commit: "0123456789abcdef", BuildDate: "2026-03-01", GoVersion: "go1.24.0", Modified: true},
		},
		{
			name:   "ldflags win over vcs",
			commit: "feedbee",
			date:   "2026-04-02",
			bi:     vcs,
			want:   Info{Version: "dev", Commit: "feedbee", BuildDate: "2026-04-02", GoVersion: "go1.24.0", Modified: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldCommit, oldDate := BuildCommit, BuildDate
			defer func() { BuildCommit, BuildDate = oldCommit, oldDate }()
			BuildCommit, BuildDate = tt.commit, tt.date

			assert.Equal(t, tt.want, fromBuildInfo(tt.bi))
		})
	}
}

func TestInfo_String(t *testing.T) {
	tests := []struct {
		info Info
		want string
	}{
		{Info{Version: "dev"}, "Cloverfield dev (commit unknown)"},
		{
			Info{Version: "1.2.0", Commit: "0123456789abcdef", BuildDate: "2026-03-01", GoVersion: "go1.24.0"},
			"Cloverfield 1.2.0 (commit 0123456, built 2026-03-01, go1.24.0)",
		},
		{Info{Version: "dev", Commit: "abc", Modified: true}, "Cloverfield dev (commit abc*)"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.info.String())
	}
}

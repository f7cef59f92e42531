package version

import (
	"fmt"
	"runtime/debug"
	"strings"
)

// Проставляются через -ldflags "-X cloverfield-server/internal/version.Version=..."
var (
	Version     = "dev"
	BuildDate   string // YYYY-MM-DD (UTC)
	BuildCommit string
)

// Info - метаданные сборки для /version и стартового лога
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildDate string `json:"buildDate,omitempty"`
	GoVersion string `json:"goVersion,omitempty"`
	Modified  bool   `json:"modified"`
}

// Get собирает метаданные. Чего нет в ldflags, берем из VCS-меток самого бинарника.
func Get() Info {
	bi, _ := debug.ReadBuildInfo()
	return fromBuildInfo(bi)
}

func fromBuildInfo(bi *debug.BuildInfo) Info {
	info := Info{
		Version:   Version,
		Commit:    BuildCommit,
		BuildDate: BuildDate,
	}
	if bi == nil {
		return info
	}

	info.GoVersion = bi.GoVersion
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.Commit == "" {
				info.Commit = s.Value
			}
		case "vcs.time":
			if info.BuildDate == "" && len(s.Value) >= len("2006-01-02") {
				info.BuildDate = s.Value[:len("2006-01-02")]
			}
		case "vcs.modified":
			info.Modified = s.Value == "true"
		}
	}
	return info
}

// String - строка для лога: "Cloverfield dev (commit abc1234*, built 2026-01-02, go1.24.0)"
func String() string {
	return Get().String()
}

func (i Info) String() string {
	commit := shortCommit(i.Commit)
	if i.Modified {
		commit += "*"
	}

	parts := []string{"commit " + commit}
	if i.BuildDate != "" {
		parts = append(parts, "built "+i.BuildDate)
	}
	if i.GoVersion != "" {
		parts = append(parts, i.GoVersion)
	}
	return fmt.Sprintf("Cloverfield %s (%s)", i.Version, strings.Join(parts, ", "))
}

func shortCommit(c string) string {
	switch {
	case c == "":
		return "unknown"
	case len(c) > 7:
		return c[:7]
	default:
		return c
	}
}

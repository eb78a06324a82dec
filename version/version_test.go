package version

import (
	"runtime"
	"strings"
	"testing"
)

func saveAndRestore() func() {
	origVersion, origCommit, origBuildTime := Version, GitCommit, BuildTime
	return func() {
		Version = origVersion
		GitCommit = origCommit
		BuildTime = origBuildTime
	}
}

func TestGet_LinkerValuesWin(t *testing.T) {
	defer saveAndRestore()()
	Version = "1.2.3"
	GitCommit = "abcdef0123456789"
	BuildTime = "2026-01-02T03:04:05Z"

	info := Get()
	if info.Version != "1.2.3" {
		t.Errorf("expected version 1.2.3, got %s", info.Version)
	}
	if info.GitCommit != "abcdef0" {
		t.Errorf("expected commit truncated to 7, got %s", info.GitCommit)
	}
	if info.BuildTime != "2026-01-02T03:04:05Z" {
		t.Errorf("unexpected build time %s", info.BuildTime)
	}
	if info.GoVersion != runtime.Version() {
		t.Errorf("expected %s, got %s", runtime.Version(), info.GoVersion)
	}
}

func TestShort(t *testing.T) {
	defer saveAndRestore()()
	Version = "1.2.3"
	GitCommit = "abcdef0"

	s := Short()
	if !strings.HasPrefix(s, "1.2.3-abcdef0") {
		t.Errorf("expected 1.2.3-abcdef0 prefix, got %s", s)
	}
}

func TestUserAgent(t *testing.T) {
	defer saveAndRestore()()
	Version = "0.9.0"

	ua := UserAgent()
	if !strings.HasPrefix(ua, "slackweb/0.9.0 (") {
		t.Errorf("unexpected user agent %q", ua)
	}
	if !strings.Contains(ua, runtime.GOOS+"/"+runtime.GOARCH) {
		t.Errorf("expected platform in user agent %q", ua)
	}
}

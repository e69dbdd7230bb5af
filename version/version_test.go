package version

import "testing"

func TestGetFullVersion(t *testing.T) {
	defer func(v, c, d string) { Version, GitCommit, BuildDate = v, c, d }(Version, GitCommit, BuildDate)

	if got := GetFullVersion(); got != "dev" {
		t.Errorf("dev build: got %q", got)
	}

	Version, GitCommit, BuildDate = "1.2.0", "abc123", "2026-10-19"
	if got, want := GetFullVersion(), "1.2.0 (abc123, built 2026-10-19)"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if GetVersion() != "1.2.0" {
		t.Errorf("GetVersion() = %q", GetVersion())
	}
}

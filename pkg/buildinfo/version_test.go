package buildinfo

import (
	"strings"
	"testing"
)

func TestLdflagsTakePrecedence(t *testing.T) {
	oldVersion, oldCommit, oldDate := Version, Commit, Date
	t.Cleanup(func() { Version, Commit, Date = oldVersion, oldCommit, oldDate })

	Version, Commit, Date = "v1.2.3", "abc123", "2026-01-02T03:04:05Z"
	i := Get()
	if i.Version != "v1.2.3" || i.Commit != "abc123" || i.Date != "2026-01-02T03:04:05Z" {
		t.Errorf("Get() = %+v, want ldflags values", i)
	}
	if i.GoVersion == "" {
		t.Error("GoVersion is empty")
	}
}

func TestTemplate(t *testing.T) {
	oldVersion := Version
	t.Cleanup(func() { Version = oldVersion })
	Version = "v0.9.0"

	tmpl := Template()
	if !strings.HasPrefix(tmpl, "{{.Name}} version v0.9.0\n") {
		t.Errorf("Template() = %q", tmpl)
	}
	if !strings.Contains(String(), "version: v0.9.0") {
		t.Errorf("String() = %q", String())
	}
}

package cli

import (
	"encoding/json"
	"runtime"
	"strings"
	"testing"
)

func TestVersionJSON(t *testing.T) {
	out, err := execute(t, "version", "--json")
	if err != nil {
		t.Fatalf("version returned error: %v", err)
	}

	var v VersionOutput
	if err := json.Unmarshal([]byte(out), &v); err != nil {
		t.Fatalf("failed to parse JSON output: %v", err)
	}
	if v.Go == "" {
		t.Error("expected a Go version")
	}
	if v.OS != runtime.GOOS {
		t.Errorf("expected OS %s, got %s", runtime.GOOS, v.OS)
	}

	found := false
	for _, code := range v.Locales {
		if code == "en" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected bundled locales to include en, got %v", v.Locales)
	}
}

func TestVersionText(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version returned error: %v", err)
	}
	if !strings.Contains(out, "fairy") {
		t.Errorf("expected the binary name in %q", out)
	}
}

package cli

import (
	"net"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestNetworkDefaultIPv4(t *testing.T) {
	out, err := execute(t, "network", "--seed", "1")
	if err != nil {
		t.Fatalf("network returned error: %v", err)
	}
	addr := strings.TrimSpace(out)
	if ip := net.ParseIP(addr); ip == nil || ip.To4() == nil {
		t.Errorf("expected an IPv4 address, got %q", addr)
	}
}

func TestNetworkUUIDCount(t *testing.T) {
	out, err := execute(t, "network", "uuid", "-n", "4", "--seed", "2")
	if err != nil {
		t.Fatalf("network returned error: %v", err)
	}
	lines := strings.Fields(strings.TrimSpace(out))
	if len(lines) != 4 {
		t.Fatalf("expected 4 UUIDs, got %d", len(lines))
	}
	for _, line := range lines {
		if _, err := uuid.Parse(line); err != nil {
			t.Errorf("%q is not a UUID: %v", line, err)
		}
	}
}

func TestNetworkURL(t *testing.T) {
	out, err := execute(t, "network", "url", "--seed", "3")
	if err != nil {
		t.Fatalf("network returned error: %v", err)
	}
	got := strings.TrimSpace(out)
	if !strings.HasPrefix(got, "http://") && !strings.HasPrefix(got, "https://") {
		t.Errorf("expected a URL, got %q", got)
	}
}

func TestNetworkRejectsUnknownKind(t *testing.T) {
	if _, err := execute(t, "network", "carrierpigeon"); err == nil {
		t.Error("expected an error for an unknown kind")
	}
}

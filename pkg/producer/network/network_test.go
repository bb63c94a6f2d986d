package network

import (
	mathrand "math/rand/v2"
	"net"
	"regexp"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/uuid"

	"github.com/getfairy/fairy/internal/data"
	"github.com/getfairy/fairy/pkg/producer"
)

const netYAML = `
text:
  latinWords: [lorem, ipsum, dolor, amet]
net:
  domainSuffixes: [io, dev]
  schemes:
    http: 1
    https: 9
`

func newProducer(t *testing.T, seed uint64) *Producer {
	t.Helper()
	store, err := data.Load(data.Config{
		FS:     fstest.MapFS{"fairy.yml": {Data: []byte(netYAML)}},
		Prefix: "fairy",
	})
	if err != nil {
		t.Fatalf("loading test data: %v", err)
	}
	return New(producer.NewBase(mathrand.New(mathrand.NewPCG(seed, 0))), store)
}

func TestIPv4(t *testing.T) {
	p := newProducer(t, 1)

	for i := 0; i < 100; i++ {
		addr := p.IPv4()
		ip := net.ParseIP(addr)
		if ip == nil || ip.To4() == nil {
			t.Fatalf("IPv4 produced %q", addr)
		}
	}
}

func TestPrivateIPv4(t *testing.T) {
	p := newProducer(t, 8)

	for i := 0; i < 200; i++ {
		addr := p.PrivateIPv4()
		ip := net.ParseIP(addr)
		if ip == nil || ip.To4() == nil {
			t.Fatalf("PrivateIPv4 produced %q", addr)
		}
		if !ip.IsPrivate() {
			t.Fatalf("PrivateIPv4 produced public address %q", addr)
		}
	}
}

func TestIPv6(t *testing.T) {
	p := newProducer(t, 2)

	for i := 0; i < 100; i++ {
		addr := p.IPv6()
		if net.ParseIP(addr) == nil {
			t.Fatalf("IPv6 produced %q", addr)
		}
		if got := strings.Count(addr, ":"); got != 7 {
			t.Fatalf("IPv6 %q not in full notation", addr)
		}
	}
}

func TestMACAddress(t *testing.T) {
	p := newProducer(t, 3)

	macRe := regexp.MustCompile(`^([0-9A-F]{2}:){5}[0-9A-F]{2}$`)
	for i := 0; i < 100; i++ {
		mac := p.MACAddress()
		if !macRe.MatchString(mac) {
			t.Fatalf("MACAddress produced %q", mac)
		}
	}
}

func TestUUID(t *testing.T) {
	p := newProducer(t, 4)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		s := p.UUID()
		u, err := uuid.Parse(s)
		if err != nil {
			t.Fatalf("UUID produced unparseable %q: %v", s, err)
		}
		if u.Version() != 4 {
			t.Fatalf("UUID %q has version %d", s, u.Version())
		}
		if u.Variant() != uuid.RFC4122 {
			t.Fatalf("UUID %q has variant %v", s, u.Variant())
		}
		if seen[s] {
			t.Fatalf("UUID %q repeated", s)
		}
		seen[s] = true
	}
}

func TestDomain(t *testing.T) {
	p := newProducer(t, 5)

	domainRe := regexp.MustCompile(`^(lorem|ipsum|dolor|amet)\.(io|dev)$`)
	for i := 0; i < 50; i++ {
		d, err := p.Domain()
		if err != nil {
			t.Fatalf("Domain failed: %v", err)
		}
		if !domainRe.MatchString(d) {
			t.Fatalf("Domain produced %q", d)
		}
	}
}

func TestURL(t *testing.T) {
	p := newProducer(t, 6)

	sawHTTPS := false
	sawPath := false
	for i := 0; i < 100; i++ {
		u, err := p.URL()
		if err != nil {
			t.Fatalf("URL failed: %v", err)
		}
		if !strings.HasPrefix(u, "http://") && !strings.HasPrefix(u, "https://") {
			t.Fatalf("URL produced %q", u)
		}
		if strings.HasPrefix(u, "https://") {
			sawHTTPS = true
		}
		if strings.Count(u, "/") > 2 {
			sawPath = true
		}
	}
	// https carries 90% of the weight, it shows up within 100 draws.
	if !sawHTTPS {
		t.Error("https never drawn despite dominant weight")
	}
	if !sawPath {
		t.Error("no URL carried a slug path within 100 draws")
	}
}

func TestSlug(t *testing.T) {
	p := newProducer(t, 7)

	s, err := p.Slug(3)
	if err != nil {
		t.Fatalf("Slug failed: %v", err)
	}
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		t.Fatalf("Slug(3) = %q", s)
	}
	for _, w := range parts {
		if w != "lorem" && w != "ipsum" && w != "dolor" && w != "amet" {
			t.Fatalf("slug word %q not from corpus", w)
		}
	}

	if _, err := p.Slug(0); err == nil {
		t.Error("Slug(0) should fail")
	}
}

func TestNetworkDeterminism(t *testing.T) {
	a := newProducer(t, 42)
	b := newProducer(t, 42)

	if a.UUID() != b.UUID() {
		t.Error("same seed gave different UUIDs")
	}
	if a.IPv4() != b.IPv4() {
		t.Error("same seed gave different IPv4 addresses")
	}
	if a.MACAddress() != b.MACAddress() {
		t.Error("same seed gave different MAC addresses")
	}
	ua, err := a.URL()
	if err != nil {
		t.Fatalf("URL failed: %v", err)
	}
	ub, err := b.URL()
	if err != nil {
		t.Fatalf("URL failed: %v", err)
	}
	if ua != ub {
		t.Error("same seed gave different URLs")
	}
}

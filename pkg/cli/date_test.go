package cli

import (
	"strconv"
	"strings"
	"testing"
	"time"
)

func TestDateDefaultIsPast(t *testing.T) {
	out, err := execute(t, "date", "--seed", "1")
	if err != nil {
		t.Fatalf("date returned error: %v", err)
	}
	got, err := time.Parse(time.RFC3339, strings.TrimSpace(out))
	if err != nil {
		t.Fatalf("output %q is not RFC 3339: %v", out, err)
	}
	if got.After(time.Now()) {
		t.Errorf("default draw %s is in the future", got)
	}
}

func TestDateRange(t *testing.T) {
	out, err := execute(t, "date", "-n", "3", "--seed", "2",
		"--from", "2020-01-01", "--to", "2020-12-31")
	if err != nil {
		t.Fatalf("date returned error: %v", err)
	}

	from := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2020, 12, 31, 0, 0, 0, 0, time.UTC)
	for _, line := range strings.Fields(strings.TrimSpace(out)) {
		got, err := time.Parse(time.RFC3339, line)
		if err != nil {
			t.Fatalf("line %q is not RFC 3339: %v", line, err)
		}
		if got.Before(from) || got.After(to) {
			t.Errorf("%s outside [%s, %s]", got, from, to)
		}
	}
}

func TestDateFuture(t *testing.T) {
	out, err := execute(t, "date", "--future", "2", "--seed", "3")
	if err != nil {
		t.Fatalf("date returned error: %v", err)
	}
	got, err := time.Parse(time.RFC3339, strings.TrimSpace(out))
	if err != nil {
		t.Fatalf("output %q is not RFC 3339: %v", out, err)
	}
	if got.Before(time.Now().Add(-time.Minute)) {
		t.Errorf("future draw %s is in the past", got)
	}
}

func TestDateUnixFormat(t *testing.T) {
	out, err := execute(t, "date", "--format", "unix", "--seed", "4")
	if err != nil {
		t.Fatalf("date returned error: %v", err)
	}
	if _, err := strconv.ParseInt(strings.TrimSpace(out), 10, 64); err != nil {
		t.Errorf("output %q is not a unix timestamp", out)
	}
}

func TestDateFlagValidation(t *testing.T) {
	if _, err := execute(t, "date", "--from", "2020-01-01"); err == nil {
		t.Error("expected an error for --from without --to")
	}
	if _, err := execute(t, "date", "--past", "2", "--future", "2"); err == nil {
		t.Error("expected an error combining --past and --future")
	}
	if _, err := execute(t, "date", "--from", "yesterday", "--to", "today"); err == nil {
		t.Error("expected an error for unparseable bounds")
	}
}

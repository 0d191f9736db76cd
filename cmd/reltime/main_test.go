package main

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func fixedNow() time.Time { return time.Date(2026, time.March, 13, 12, 0, 0, 0, time.UTC) }

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	t.Setenv("RELTIME_DEFAULT_LOCALE", "")
	t.Setenv("RELTIME_CATALOG_DIR", "")
	var out, errb bytes.Buffer
	code := run(args, &out, &errb, fixedNow)
	return code, out.String(), errb.String()
}

func TestRun_Formats(t *testing.T) {
	cases := []struct {
		args []string
		want string
	}{
		{[]string{"2024-03-10T12:00:00Z"}, "2 years ago and 3 days\n"},
		{[]string{"-locale", "fr", "2024-03-10T12:00:00Z"}, "il y a 2 ans et 3 jours\n"},
		{[]string{"-locale", "de-CH, en;q=0.5", "2026-03-13T15:00:00Z"}, "in 3 Stunden\n"},
		{[]string{"2026-03-13T12:00:00Z", "2026-03-13T12:01:30Z"}, "1 minute ago and 30 seconds\n"},
		{[]string{"2026-03-13T12:00:00Z"}, "\n"},
		{[]string{"-empty", "-locale", "fr", "2026-03-13T12:00:00Z"}, "maintenant\n"},
	}
	for _, tc := range cases {
		code, out, errs := runCLI(t, tc.args...)
		if code != 0 || out != tc.want {
			t.Fatalf("run(%q) = %d %q (stderr %q), want %q", tc.args, code, out, errs, tc.want)
		}
	}
}

func TestRun_BadArguments(t *testing.T) {
	for _, args := range [][]string{
		nil,
		{"a", "b", "c"},
		{"yesterday"},
		{"2026-03-13T12:00:00Z", "later"},
		{"-bogus"},
	} {
		code, out, errs := runCLI(t, args...)
		if code != 2 || out != "" || errs == "" {
			t.Fatalf("run(%q) = %d out=%q err=%q", args, code, out, errs)
		}
	}
}

func TestRun_HelpAndVersion(t *testing.T) {
	code, _, errs := runCLI(t, "-h")
	if code != 0 || !strings.Contains(errs, "usage: reltime") {
		t.Fatalf("-h => %d %q", code, errs)
	}
	code, out, _ := runCLI(t, "-version")
	if code != 0 || !strings.HasPrefix(out, "reltime dev") {
		t.Fatalf("-version => %d %q", code, out)
	}
}

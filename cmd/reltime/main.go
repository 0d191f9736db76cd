// Command reltime prints the localized difference between two instants
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"reltime/internal/core/reltime"
	"reltime/internal/core/version"
	"reltime/internal/platform/config"
	"reltime/internal/platform/i18n"
	"reltime/internal/platform/logger"
)

const usage = `usage: reltime [-locale en] [-empty] FROM [TO]

FROM and TO are RFC3339 timestamps; TO defaults to now.
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, time.Now))
}

// run returns the process exit code: 0 ok, 1 setup failure, 2 bad arguments
func run(args []string, stdout, stderr io.Writer, now func() time.Time) int {
	cfg := config.New().Prefix("RELTIME_")

	fs := flag.NewFlagSet("reltime", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fs.PrintDefaults()
	}
	var (
		locale  = fs.String("locale", "", "output locale or Accept-Language list (default RELTIME_DEFAULT_LOCALE)")
		empty   = fs.Bool("empty", false, "print the \"now\" message when the instants are equal")
		showVer = fs.Bool("version", false, "print build information and exit")
	)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if *showVer {
		v := version.Info("reltime")
		fmt.Fprintf(stdout, "%s %s (%s, %s)\n", v.Service, v.Version, v.Commit, v.Date)
		return 0
	}

	pos := fs.Args()
	if len(pos) < 1 || len(pos) > 2 {
		fs.Usage()
		return 2
	}
	from, err := parseInstant("FROM", pos[0])
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	to := now()
	if len(pos) == 2 {
		if to, err = parseInstant("TO", pos[1]); err != nil {
			fmt.Fprintln(stderr, err)
			return 2
		}
	}

	cat, err := i18n.FromConfig(cfg, i18n.WithLogger(logger.Named("reltime")))
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	f := reltime.NewFormatter(cat.For(cat.Match(*locale)))
	text := f.FormatDiff(from, to)
	if *empty {
		text = f.FormatDiffOrEmpty(from, to)
	}
	fmt.Fprintln(stdout, text)
	return 0
}

func parseInstant(name, s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%s must be an RFC3339 timestamp: %q", name, s)
	}
	return t, nil
}

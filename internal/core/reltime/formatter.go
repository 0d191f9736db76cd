package reltime

import (
	"strconv"
	"strings"
	"time"

	perr "reltime/internal/platform/errors"
)

// DefaultDomain is the catalog domain holding the diff.* keys
const DefaultDomain = "time"

// CountParam is the placeholder bound to the unit count in every fragment
const CountParam = "%count%"

// EmptyKey is the message key for a diff with no non-zero unit
const EmptyKey = "diff.empty"

// Translator resolves message keys in a catalog domain
// implementations return the key itself when they have no translation
type Translator interface {
	// TransChoice picks the plural form of key for count and substitutes params
	TransChoice(key string, count int, params map[string]string, domain string) string
	// Trans resolves a key that has no plural forms
	Trans(key string, params map[string]string, domain string) string
}

// Formatter builds relative-time phrases
// it holds no mutable state and is safe for concurrent use
type Formatter struct {
	tr     Translator
	differ Differ
	domain string
}

// Option customizes a Formatter
type Option func(*Formatter)

// WithDiffer replaces the Calendar differ
func WithDiffer(d Differ) Option {
	return func(f *Formatter) {
		if d != nil {
			f.differ = d
		}
	}
}

// WithDomain changes the catalog domain (default "time")
func WithDomain(domain string) Option {
	return func(f *Formatter) {
		if domain != "" {
			f.domain = domain
		}
	}
}

// NewFormatter returns a Formatter that translates through tr
func NewFormatter(tr Translator, opts ...Option) *Formatter {
	if tr == nil {
		panic("reltime: translator is required")
	}
	f := &Formatter{tr: tr, differ: Calendar{}, domain: DefaultDomain}
	for _, o := range opts {
		o(f)
	}
	return f
}

// FormatDiff describes from relative to to, e.g. "2 years ago and 3 days" for a
// from two years and three days before to. A zero difference yields ""
func (f *Formatter) FormatDiff(from, to time.Time) string {
	return strings.Join(f.FormatParts(f.differ.Diff(to, from)), " ")
}

// FormatDiffOrEmpty is FormatDiff, falling back to EmptyDiffMessage when the
// instants are equal at second resolution
func (f *Formatter) FormatDiffOrEmpty(from, to time.Time) string {
	d := f.differ.Diff(to, from)
	if d.IsZero() {
		return f.EmptyDiffMessage()
	}
	return strings.Join(f.FormatParts(d), " ")
}

// FormatParts returns one translated fragment per non-zero unit of d, largest
// unit first. Only the first fragment carries the ago/in direction
func (f *Formatter) FormatParts(d Diff) []string {
	var parts []string
	for _, u := range Units {
		n := d.Magnitude(u)
		if n == 0 {
			continue
		}
		parts = append(parts, f.fragment(n, d.Invert, u, len(parts) > 0))
	}
	return parts
}

const opDiffMessage = "DiffMessage"

// DiffMessage returns the direction-bearing fragment for count units
// count must not be zero and unit must name one of the six units
func (f *Formatter) DiffMessage(count int, invert bool, unit string) (string, error) {
	if count == 0 {
		return "", perr.WithOp(perr.WithField(perr.InvalidArgf("the count must not be zero"), "count"), opDiffMessage)
	}
	u, err := ParseUnit(unit)
	if err != nil {
		return "", perr.WithOp(err, opDiffMessage)
	}
	return f.fragment(count, invert, u, false), nil
}

// EmptyDiffMessage returns the phrase for "no difference"
func (f *Formatter) EmptyDiffMessage() string {
	return f.tr.Trans(EmptyKey, nil, f.domain)
}

func (f *Formatter) fragment(count int, invert bool, u Unit, withoutInvert bool) string {
	params := map[string]string{CountParam: strconv.Itoa(count)}
	return f.tr.TransChoice(MessageKey(u, invert, withoutInvert), count, params, f.domain)
}

// MessageKey returns diff.<ago|in|and>.<unit>
func MessageKey(u Unit, invert, withoutInvert bool) string {
	dir := "in"
	switch {
	case withoutInvert:
		dir = "and"
	case invert:
		dir = "ago"
	}
	return "diff." + dir + "." + u.String()
}

// Package reltime turns the distance between two instants into localized
// phrases such as "2 years 3 days ago", delegating wording and plural
// selection to a Translator
package reltime

import (
	"strings"

	perr "reltime/internal/platform/errors"
)

// Unit is a calendar unit, ordered from largest to smallest
type Unit uint8

const (
	// Year is the largest unit
	Year Unit = iota
	Month
	Day
	Hour
	Minute
	// Second is the smallest unit
	Second
)

// Units lists every unit in emission order (largest first)
var Units = [...]Unit{Year, Month, Day, Hour, Minute, Second}

var unitNames = [...]string{
	Year:   "year",
	Month:  "month",
	Day:    "day",
	Hour:   "hour",
	Minute: "minute",
	Second: "second",
}

// String returns the lowercase unit name used in message keys
func (u Unit) String() string {
	if int(u) < len(unitNames) {
		return unitNames[u]
	}
	return "unknown"
}

// ParseUnit resolves a unit name in any ASCII letter casing
// the returned error names the folded value that was tested; non-ASCII
// letters are echoed unchanged
func ParseUnit(s string) (Unit, error) {
	name := strings.Map(foldASCII, s)
	for _, u := range Units {
		if unitNames[u] == name {
			return u, nil
		}
	}
	return 0, perr.WithField(perr.InvalidArgf("the unit '%s' is not supported", name), "unit")
}

func foldASCII(r rune) rune {
	if 'A' <= r && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}

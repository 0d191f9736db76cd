package reltime

import "time"

// Diff is a calendar decomposition of the distance between two instants
// Magnitudes are never negative, direction lives in Invert
type Diff struct {
	Years   int `json:"years"`
	Months  int `json:"months"`
	Days    int `json:"days"`
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
	Seconds int `json:"seconds"`

	// Invert is set when the second instant given to Differ.Diff is before the first
	Invert bool `json:"invert"`
}

// Magnitude returns the component of d for unit u
func (d Diff) Magnitude(u Unit) int {
	switch u {
	case Year:
		return d.Years
	case Month:
		return d.Months
	case Day:
		return d.Days
	case Hour:
		return d.Hours
	case Minute:
		return d.Minutes
	case Second:
		return d.Seconds
	default:
		return 0
	}
}

// IsZero reports whether every component is zero
func (d Diff) IsZero() bool {
	for _, u := range Units {
		if d.Magnitude(u) != 0 {
			return false
		}
	}
	return true
}

// Differ computes the calendar difference of b relative to a
type Differ interface {
	Diff(a, b time.Time) Diff
}

// DifferFunc adapts a plain function to Differ
type DifferFunc func(a, b time.Time) Diff

// Diff calls f(a, b)
func (f DifferFunc) Diff(a, b time.Time) Diff { return f(a, b) }

// Calendar is the default Differ
// both instants are read at the UTC offset the earlier one has in a's
// location, then wall-clock fields are subtracted with borrowing; Jan 31 ->
// Mar 1 of a common year is 29 days, not 1 month 1 day
type Calendar struct{}

// Diff returns b relative to a; Invert is true when b is before a
func (Calendar) Diff(a, b time.Time) Diff {
	lo, hi := a, b
	invert := b.Before(a)
	if invert {
		lo, hi = b, a
	}

	// a single fixed offset keeps hi's clock from running behind lo's across
	// a DST transition in a named location
	_, off := lo.In(a.Location()).Zone()
	zone := time.FixedZone("", off)
	lo, hi = lo.In(zone), hi.In(zone)

	ly, lmo, ld := lo.Date()
	lh, lmi, ls := lo.Clock()
	hy, hmo, hd := hi.Date()
	hh, hmi, hs := hi.Clock()

	d := Diff{
		Years:   hy - ly,
		Months:  int(hmo) - int(lmo),
		Days:    hd - ld,
		Hours:   hh - lh,
		Minutes: hmi - lmi,
		Seconds: hs - ls,
		Invert:  invert,
	}

	// sub-second remainder never rounds up
	if hi.Nanosecond() < lo.Nanosecond() {
		d.Seconds--
	}

	if d.Seconds < 0 {
		d.Seconds += 60
		d.Minutes--
	}
	if d.Minutes < 0 {
		d.Minutes += 60
		d.Hours--
	}
	if d.Hours < 0 {
		d.Hours += 24
		d.Days--
	}

	// borrow whole months walking back from the month before hi
	by, bm := hy, hmo
	for d.Days < 0 {
		bm--
		if bm < time.January {
			bm = time.December
			by--
		}
		d.Days += daysIn(by, bm)
		d.Months--
	}

	for d.Months < 0 {
		d.Months += 12
		d.Years--
	}

	return d
}

// daysIn returns the number of days in month m of year y
func daysIn(y int, m time.Month) int {
	return time.Date(y, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

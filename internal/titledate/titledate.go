// Package titledate derives sortable calendar dates from the free-text
// titles administrators give sermons and bulletins. The derived values are
// ordering keys only; they never replace a record's stored timestamps.
package titledate

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// legacyYear is the year assumed for bare MMDD bulletin prefixes, which
// predate the convention of including a year. Titles from another year with
// a 4-digit prefix will mis-sort under this assumption.
const legacyYear = 2025

var dottedDate = regexp.MustCompile(`(\d{4})\.(\d{2})\.(\d{2})`)

var leadingDigits = regexp.MustCompile(`^\d+`)

// FromTitle extracts the first YYYY.MM.DD occurrence in title as a UTC date.
// The zero time and false are returned when no such pattern is present, so
// unmatched titles sort last in a newest-first ordering.
func FromTitle(title string) (time.Time, bool) {
	m := dottedDate.FindStringSubmatch(title)
	if m == nil {
		return time.Time{}, false
	}
	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), true
}

// DisplayDate normalizes the title's YYYY.MM.DD occurrence to YYYY-MM-DD for
// rendering next to the title. Empty string when the title carries no date.
func DisplayDate(title string) string {
	m := dottedDate.FindStringSubmatch(title)
	if m == nil {
		return ""
	}
	return fmt.Sprintf("%s-%s-%s", m[1], m[2], m[3])
}

// BulletinKey turns the leading digit run of a bulletin title into a
// comparable YYYYMMDD-style integer:
//
//	4 digits  → MMDD of the fixed legacy year
//	6 digits  → YYMMDD with the century prefixed
//	otherwise → the run taken literally
//
// Titles with no leading digits key to 0 and therefore sort last in a
// newest-first ordering. Total over all inputs; never errors.
func BulletinKey(title string) int {
	run := leadingDigits.FindString(title)
	if run == "" {
		return 0
	}
	n, err := strconv.Atoi(run)
	if err != nil {
		// Digit runs beyond int range carry no plausible date.
		return 0
	}
	switch len(run) {
	case 4:
		return legacyYear*10000 + n
	case 6:
		return 20000000 + n
	default:
		return n
	}
}

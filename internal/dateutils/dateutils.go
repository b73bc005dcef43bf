// Package dateutils provides the date normalization used by the statement
// ingestion engine: policy-driven parsing of ambiguous bank-export dates into
// plain calendar dates.
package dateutils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Policy disambiguates numeric date strings where the month/day order is not
// self-evident.
type Policy string

const (
	// PolicyAuto infers the component order heuristically.
	PolicyAuto Policy = "auto"
	// PolicyMDY reads A/B/YEAR as month/day/year.
	PolicyMDY Policy = "mdy"
	// PolicyDMY reads A/B/YEAR as day/month/year.
	PolicyDMY Policy = "dmy"
	// PolicyYMD reads the first component as a 4-digit year.
	PolicyYMD Policy = "ymd"
)

// ParsePolicy converts user input into a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch Policy(strings.ToLower(strings.TrimSpace(s))) {
	case PolicyAuto:
		return PolicyAuto, nil
	case PolicyMDY, Policy("month-day-year"):
		return PolicyMDY, nil
	case PolicyDMY, Policy("day-month-year"):
		return PolicyDMY, nil
	case PolicyYMD, Policy("year-month-day"):
		return PolicyYMD, nil
	}
	return "", fmt.Errorf("unknown date format policy %q (want 'auto', 'mdy', 'dmy' or 'ymd')", s)
}

// Common date format constants used throughout the application
const (
	DateLayoutISO       = "2006-01-02"
	DateLayoutEuropean  = "02.01.2006"
	DateLayoutUS        = "01/02/2006"
	DateLayoutFull      = "2006-01-02 15:04:05"
	DateLayoutWithMonth = "2-Jan-2006"
)

// FallbackFormats is the list of layouts tried by the generic parse when none
// of the structured numeric syntaxes match.
var FallbackFormats = []string{
	DateLayoutISO,
	DateLayoutFull,
	DateLayoutISO + "T15:04:05Z",
	DateLayoutISO + "T15:04:05-07:00",
	DateLayoutWithMonth,
	"Jan 2, 2006",
	"January 2, 2006",
	"2 January 2006",
	"02 Jan 2006",
}

var (
	isoLikeRe  = regexp.MustCompile(`^(\d{4})[-/](\d{1,2})[-/](\d{1,2})$`)
	yearLastRe = regexp.MustCompile(`^(\d{1,2})[-/](\d{1,2})[-/](\d{4})$`)
	dottedRe   = regexp.MustCompile(`^(\d{1,4})\.(\d{1,4})\.(\d{1,4})$`)
)

// CleanDateString removes unwanted characters and normalizes a date string
func CleanDateString(dateStr string) string {
	dateStr = strings.TrimSpace(dateStr)

	re := regexp.MustCompile(`\s+`)
	dateStr = re.ReplaceAllString(dateStr, " ")

	return dateStr
}

// NormalizeDate parses raw bank-export date text into a plain calendar date
// (midnight UTC, no time-of-day). The second return is false when the text is
// not a valid calendar date under the given policy.
//
// Syntaxes are tried in order: ISO-like YYYY[-/]M[-/]D, numeric N[-/]N[-/]YYYY
// resolved per policy, dot-separated three-part dates resolved per policy, and
// finally the generic layout list in FallbackFormats.
func NormalizeDate(raw string, policy Policy) (time.Time, bool) {
	s := CleanDateString(raw)
	if s == "" {
		return time.Time{}, false
	}

	if m := isoLikeRe.FindStringSubmatch(s); m != nil {
		return makeDate(atoi(m[1]), atoi(m[2]), atoi(m[3]))
	}

	if m := yearLastRe.FindStringSubmatch(s); m != nil {
		if d, ok := resolveYearLast(m[1], m[2], atoi(m[3]), policy); ok {
			return d, true
		}
		// Fall through to the generic parse when the policy rejects the shape.
	}

	if m := dottedRe.FindStringSubmatch(s); m != nil {
		if len(m[1]) == 4 {
			return makeDate(atoi(m[1]), atoi(m[2]), atoi(m[3]))
		}
		if len(m[3]) == 4 {
			if d, ok := resolveYearLast(m[1], m[2], atoi(m[3]), policy); ok {
				return d, true
			}
		}
	}

	for _, layout := range FallbackFormats {
		if t, err := time.Parse(layout, s); err == nil {
			// Truncate any time-of-day component.
			return makeDate(t.Year(), int(t.Month()), t.Day())
		}
	}

	return time.Time{}, false
}

// resolveYearLast assigns month/day for an ambiguous A/B/YEAR triple. The
// first two components are passed as strings so the ymd policy can check for
// a 4-digit leading year.
func resolveYearLast(a, b string, year int, policy Policy) (time.Time, bool) {
	av, bv := atoi(a), atoi(b)

	switch policy {
	case PolicyYMD:
		// Only applies when the first component is 4 digits; a year-last
		// triple never satisfies that, so this policy does not match here.
		return time.Time{}, false
	case PolicyDMY:
		return makeDate(year, bv, av)
	case PolicyMDY:
		return makeDate(year, av, bv)
	default: // PolicyAuto
		// A value above 12 cannot be a month. Genuinely ambiguous pairs
		// default to month/day/year; there is no correct general answer
		// without knowing the source bank's locale.
		if av > 12 && bv <= 12 {
			return makeDate(year, bv, av)
		}
		return makeDate(year, av, bv)
	}
}

// makeDate builds a UTC calendar date and rejects calendar-invalid components.
// time.Date silently rolls over out-of-range values (Feb 30 becomes Mar 1), so
// the reconstructed date must reproduce the inputs exactly.
func makeDate(year, month, day int) (time.Time, bool) {
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}

// ToISODate formats a time.Time value as an ISO date (YYYY-MM-DD)
func ToISODate(date time.Time) string {
	return date.Format(DateLayoutISO)
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

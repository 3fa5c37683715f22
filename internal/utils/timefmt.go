package utils

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

const isoDateLayout = "2006-01-02"

var timeRE = regexp.MustCompile(`^(\d{2}):(\d{2})$`)
var spaceRE = regexp.MustCompile(`\s+`)

// IsValidDate reports whether s is a zero-padded ISO date naming a real
// calendar day. time.Parse normalizes out-of-range components, so the
// value must survive a format round-trip unchanged.
func IsValidDate(s string) bool {
	t, err := time.Parse(isoDateLayout, s)
	if err != nil {
		return false
	}
	return t.Format(isoDateLayout) == s
}

// IsValidTime reports whether s is a 24h "HH:MM" wall time.
func IsValidTime(s string) bool {
	_, ok := TimeToMinutes(s)
	return ok
}

// TimeToMinutes converts "HH:MM" to minutes past midnight.
func TimeToMinutes(s string) (int, bool) {
	m := timeRE.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	if hour > 23 || minute > 59 {
		return 0, false
	}
	return hour*60 + minute, true
}

// CompareTimes orders two wall times. Any malformed input compares equal
// to everything; callers must not rely on ordering of invalid times.
func CompareTimes(a, b string) int {
	ma, okA := TimeToMinutes(a)
	mb, okB := TimeToMinutes(b)
	if !okA || !okB {
		return 0
	}
	switch {
	case ma < mb:
		return -1
	case ma > mb:
		return 1
	}
	return 0
}

// NormalizeText prepares a string for case-insensitive matching.
func NormalizeText(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// NormalizeCategoryName trims and collapses interior whitespace,
// preserving case.
func NormalizeCategoryName(s string) string {
	return spaceRE.ReplaceAllString(strings.TrimSpace(s), " ")
}

// TodayISO returns the current local date as "YYYY-MM-DD".
func TodayISO() string {
	return time.Now().Format(isoDateLayout)
}

// FormatDateLabel renders a stored date for display, e.g. "Fri, May 10".
// Invalid input is returned untouched.
func FormatDateLabel(s string) string {
	if !IsValidDate(s) {
		return s
	}
	t, _ := time.Parse(isoDateLayout, s)
	return t.Format("Mon, Jan 2")
}

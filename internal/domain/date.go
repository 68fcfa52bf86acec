package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// NormalizedDate is a year-agnostic calendar key in DD.MM form.
// Equality is exact string match.
type NormalizedDate string

// NewDate formats day and month as a zero-padded DD.MM key. It does not check
// the day against the month length.
func NewDate(day, month int) NormalizedDate {
	return NormalizedDate(fmt.Sprintf("%02d.%02d", day, month))
}

// ParseDate accepts "D.M", "DD.MM" and variants with surrounding spaces.
// Day must be 1..31 and month 1..12.
func ParseDate(s string) (NormalizedDate, error) {
	dayPart, monthPart, ok := strings.Cut(strings.TrimSpace(s), ".")
	if !ok {
		return "", fmt.Errorf("%q: missing '.' separator: %w", s, ErrInvalidDate)
	}

	day, err := parseComponent(dayPart)
	if err != nil {
		return "", fmt.Errorf("%q: day: %w", s, err)
	}
	month, err := parseComponent(monthPart)
	if err != nil {
		return "", fmt.Errorf("%q: month: %w", s, err)
	}

	if day < 1 || day > 31 {
		return "", fmt.Errorf("%q: day %d out of range: %w", s, day, ErrInvalidDate)
	}
	if month < 1 || month > 12 {
		return "", fmt.Errorf("%q: month %d out of range: %w", s, month, ErrInvalidDate)
	}
	return NewDate(day, month), nil
}

func parseComponent(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidDate
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, ErrInvalidDate
		}
	}
	return strconv.Atoi(s)
}

// Day returns the day component, or 0 when the key is malformed.
func (d NormalizedDate) Day() int {
	day, _, ok := d.split()
	if !ok {
		return 0
	}
	return day
}

// Month returns the month component, or 0 when the key is malformed.
func (d NormalizedDate) Month() int {
	_, month, ok := d.split()
	if !ok {
		return 0
	}
	return month
}

func (d NormalizedDate) split() (int, int, bool) {
	a, b, ok := strings.Cut(string(d), ".")
	if !ok {
		return 0, 0, false
	}
	day, err := strconv.Atoi(a)
	if err != nil {
		return 0, 0, false
	}
	month, err := strconv.Atoi(b)
	if err != nil {
		return 0, 0, false
	}
	return day, month, true
}

// WellFormed reports whether d has the two-digit DD.MM shape NewDate produces
// for one- and two-digit components. Values are not range-checked.
func (d NormalizedDate) WellFormed() bool {
	if len(d) != 5 || d[2] != '.' {
		return false
	}
	for _, i := range []int{0, 1, 3, 4} {
		if d[i] < '0' || d[i] > '9' {
			return false
		}
	}
	return true
}

func (d NormalizedDate) String() string { return string(d) }

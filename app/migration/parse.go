package migration

import (
	"strconv"
	"strings"
	"time"
)

// placeholders that operators type into cells to mean "no value".
var placeholderText = map[string]bool{
	"none": true,
	"null": true,
	"n/a":  true,
	"-":    true,
	"na":   true,
	"nan":  true,
}

// SanitizeText trims the cell and maps placeholder text to empty.
func SanitizeText(s string) string {
	t := strings.TrimSpace(s)
	if placeholderText[strings.ToLower(t)] {
		return ""
	}
	return t
}

// dateLayouts tried after the two primary formats. Spreadsheet tools
// re-format date cells freely, so a generic fallback list is kept.
var dateLayouts = []string{
	"02/01/2006",
	"2006/01/02",
	"02.01.2006",
	"2-1-2006",
	"2 Jan 2006",
	"Jan 2, 2006",
	time.RFC3339,
}

// ParseDate parses a cell as a date: DD-MM-YYYY first, then YYYY-MM-DD,
// then a generic fallback list. Returns nil when nothing matches; callers
// surface that as a validation error instead of failing the row.
func ParseDate(s string) *time.Time {
	s = SanitizeText(s)
	if s == "" {
		return nil
	}
	if t, err := time.Parse("02-01-2006", s); err == nil {
		return &t
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return &t
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

// ValidDate reports whether the cell parses as a date. Empty cells are
// not valid dates; required-field checks run before format checks.
func ValidDate(s string) bool {
	return ParseDate(s) != nil
}

// ParseAmount parses a money cell, falling back to 0 for blank or
// unparseable values so NaN never reaches a persisted amount. Required
// amount columns are checked for presence before this fallback applies.
func ParseAmount(s string) float64 {
	s = SanitizeText(s)
	if s == "" {
		return 0
	}
	s = strings.ReplaceAll(s, ",", "")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// ParseMonth parses a month number cell, defaulting to 1.
func ParseMonth(s string) int {
	s = SanitizeText(s)
	if s == "" {
		return 1
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > 12 {
		return 1
	}
	return n
}

// ParseRollNumber parses an optional roll number; nil when blank or not
// a number.
func ParseRollNumber(s string) *int {
	s = SanitizeText(s)
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}

// CleanSection extracts the section from a "Class-Section" composite
// (e.g. "Class 5-A" -> "A"). Cells without the separator pass through
// trimmed.
func CleanSection(s string) string {
	s = SanitizeText(s)
	if i := strings.LastIndex(s, "-"); i >= 0 {
		return strings.TrimSpace(s[i+1:])
	}
	return s
}

// CleanRouteCode extracts the code from a "Code: Name" composite
// (e.g. "R01: North Loop" -> "R01").
func CleanRouteCode(s string) string {
	s = SanitizeText(s)
	if i := strings.Index(s, ":"); i >= 0 {
		return strings.TrimSpace(s[:i])
	}
	return s
}

// CleanStopName extracts the stop from a "Route - Stop" composite
// (e.g. "R01 - Main Gate" -> "Main Gate").
func CleanStopName(s string) string {
	s = SanitizeText(s)
	if i := strings.LastIndex(s, " - "); i >= 0 {
		return strings.TrimSpace(s[i+3:])
	}
	return s
}

// ValidPhone reports whether the cell is a 10-15 digit phone number.
func ValidPhone(s string) bool {
	if len(s) < 10 || len(s) > 15 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// ValidAadhar reports whether the cell looks like a 12-digit Aadhar number.
func ValidAadhar(s string) bool {
	if len(s) != 12 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

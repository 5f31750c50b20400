package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/jinzhu/now"
)

const DateLayout = "2006-01-02"

var durationDaysPattern = regexp.MustCompile(`(\d+)\s*[dD]`)

// dateParser only knows full calendar dates and RFC3339 timestamps, so
// partial inputs such as "12" or "2024-03" never resolve against today.
var dateParser = &now.Config{
	TimeLocation: time.UTC,
	TimeFormats:  []string{DateLayout, time.RFC3339},
}

// ParseInt converts string to int with default value
func ParseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	if result < 1 {
		return defaultValue
	}

	return result
}

// ParseDate accepts plain calendar dates ("2024-03-01") as well as RFC3339
// timestamps ("2024-03-01T10:00:00Z") and resolves them in UTC.
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}

	t, err := dateParser.Parse(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", value, err)
	}

	return t.UTC(), nil
}

// FormatDate renders the calendar date part of t (UTC)
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// ParseDurationDays extracts the day count from texts like "7D/6N"
func ParseDurationDays(durationText string) (int, bool) {
	m := durationDaysPattern.FindStringSubmatch(durationText)
	if m == nil {
		return 0, false
	}

	days, err := strconv.Atoi(m[1])
	if err != nil || days < 1 {
		return 0, false
	}

	return days, true
}

// DurationText builds the default "{days}D/{nights}N" label
func DurationText(days int) string {
	nights := days - 1
	if nights < 0 {
		nights = 0
	}
	return fmt.Sprintf("%dD/%dN", days, nights)
}

// SplitCSV splits "a, b ,c" into trimmed non-empty parts
func SplitCSV(value string) []string {
	parts := []string{}
	for _, p := range strings.Split(value, ",") {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}

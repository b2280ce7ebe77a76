package templates

import (
	"strings"
	"time"
)

// FormatDate renders a month-precision date as "Jan 2006". Empty input
// yields an empty string, as does anything unparseable: a bad date must
// never break rendering. A full date is accepted with its day ignored; the
// absence of a day is treated as the first of the month.
func FormatDate(date string) string {
	date = strings.TrimSpace(date)
	if date == "" {
		return ""
	}
	for _, layout := range []string{"2006-01", "2006-01-02"} {
		if t, err := time.Parse(layout, date); err == nil {
			return t.Format("Jan 2006")
		}
	}
	return ""
}

// FormatRange renders "start - end" for an entry's date span. Open-ended
// entries use openLabel ("Present" for jobs, "Ongoing" for projects) in
// place of the end date. Missing halves collapse rather than leaving a
// dangling separator.
func FormatRange(start, end string, open bool, openLabel string) string {
	s := FormatDate(start)
	e := FormatDate(end)
	if open {
		e = openLabel
	}
	switch {
	case s == "" && e == "":
		return ""
	case e == "":
		return s
	case s == "":
		return e
	default:
		return s + " - " + e
	}
}

package utils

import "time"

// FormatDisplayDate turns a "2006-01-02" schedule key into the human
// form shown on tickets ("January 2, 2006"). Unparseable input is
// returned unchanged rather than erroring, the ticket still renders.
func FormatDisplayDate(dateStr string) string {
	t, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return dateStr
	}
	return t.Format("January 2, 2006")
}

// FormatTimestamp renders a booking timestamp for tickets and emails
func FormatTimestamp(t time.Time) string {
	return t.Format("January 2, 2006 3:04 PM")
}

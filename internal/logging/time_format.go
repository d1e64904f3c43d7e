package logging

import "time"

// consoleTimeLayout is second precision in local time; JSON output keeps UTC RFC3339.
const consoleTimeLayout = "2006-01-02 15:04:05"

func consoleTimestamp(ts time.Time) string {
	if ts.IsZero() {
		return ""
	}
	return ts.Local().Format(consoleTimeLayout)
}

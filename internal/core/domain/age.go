package domain

import (
	"fmt"
	"time"
)

// NotStarted is displayed as the duration of a job that has not started.
const NotStarted = "~"

// HumanDuration formats d with a single unit, switching unit at twice its size:
// seconds below 2m, minutes below 2h, hours below 2d, days beyond.
func HumanDuration(d time.Duration) string {
	seconds := int64(d / time.Second)
	if seconds < 0 {
		seconds = 0
	}

	switch {
	case seconds < 2*60:
		return fmt.Sprintf("%ds", seconds)
	case seconds < 2*3600:
		return fmt.Sprintf("%dm", seconds/60)
	case seconds < 2*24*3600:
		return fmt.Sprintf("%dh", seconds/3600)
	default:
		return fmt.Sprintf("%dd", seconds/(24*3600))
	}
}

// Age returns the time elapsed since t, relative to now.
func Age(t, now time.Time) string {
	return HumanDuration(now.Sub(t))
}

// AgeOrNow is Age for optional dates; a missing date reads as zero.
func AgeOrNow(t *time.Time, now time.Time) string {
	if t == nil {
		return Age(now, now)
	}
	return Age(*t, now)
}

// JobDuration is the run time of a job: ended minus started, or now minus
// started while the job is still running.
func JobDuration(started, ended *time.Time, now time.Time) string {
	if started == nil {
		return NotStarted
	}
	if ended == nil {
		return HumanDuration(now.Sub(*started))
	}
	return HumanDuration(ended.Sub(*started))
}

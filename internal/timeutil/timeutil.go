// Package timeutil provides utility functions for working with the
// whole-second durations focuswatch counts in.
package timeutil

import "fmt"

const (
	secondsInAMinute = 60
	minutesInAnHour  = 60
)

// SecsToMinsAndSecs splits a number of seconds into whole minutes and the
// remaining seconds. Negative input is treated as zero.
func SecsToMinsAndSecs(secs int) (mins, rem int) {
	if secs < 0 {
		secs = 0
	}

	return secs / secondsInAMinute, secs % secondsInAMinute
}

// MinsToHoursAndMins expresses a minutes value in hours and mins.
func MinsToHoursAndMins(val int) (hrs, mins int) {
	return val / minutesInAnHour, val % minutesInAnHour
}

// Clock formats secs as "MM:SS", or "H:MM:SS" from one hour upwards.
func Clock(secs int) string {
	mins, s := SecsToMinsAndSecs(secs)
	if mins < minutesInAnHour {
		return fmt.Sprintf("%02d:%02d", mins, s)
	}

	h, m := MinsToHoursAndMins(mins)

	return fmt.Sprintf("%d:%02d:%02d", h, m, s)
}

// MinutesToSeconds converts whole minutes to whole seconds.
func MinutesToSeconds(mins int) int {
	return mins * secondsInAMinute
}

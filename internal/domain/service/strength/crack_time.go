package strength

import (
	"math"
	"strconv"
)

const (
	guessesPerSecond = 1000
	centuriesAfter   = 1000 // years

	secondsPerMinute = 60
	minutesPerHour   = 60
	hoursPerDay      = 24
	daysPerYear      = 365
)

const (
	LabelCenturies = "Centuries"
	LabelInstant   = "Instant"
)

// TimeToCrackBits estimates how long a brute-force attack at a fixed rate of
// 1000 guesses per second needs to exhaust 2^bits guesses. The label uses
// the coarsest unit whose value is at least one. Negative and NaN input fall
// through to Instant.
func TimeToCrackBits(bits float64) string {
	seconds := math.Pow(2, bits) / guessesPerSecond
	minutes := seconds / secondsPerMinute
	hours := minutes / minutesPerHour
	days := hours / hoursPerDay
	years := days / daysPerYear

	switch {
	case years > centuriesAfter:
		return LabelCenturies
	case years >= 1:
		return roundedUnit(years, "years")
	case days >= 1:
		return roundedUnit(days, "days")
	case hours >= 1:
		return roundedUnit(hours, "hours")
	case minutes >= 1:
		return roundedUnit(minutes, "minutes")
	case seconds >= 1:
		return roundedUnit(seconds, "seconds")
	default:
		return LabelInstant
	}
}

// roundedUnit keeps the plural unit even for 1 ("1 seconds"), clients match
// on these labels.
func roundedUnit(v float64, unit string) string {
	return strconv.FormatFloat(math.Round(v), 'f', 0, 64) + " " + unit
}

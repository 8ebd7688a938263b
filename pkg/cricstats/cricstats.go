package cricstats

import (
	"math"
	"strconv"
)

// Average is the batting average: runs per completed innings. A player who
// has never been out has no average and gets "0.00".
func Average(runs, matches, notOuts float64) string {
	outs := matches - notOuts
	if outs <= 0 {
		return "0.00"
	}
	return format(runs / outs)
}

// StrikeRate is runs scored per hundred balls faced.
func StrikeRate(runs, ballsFaced float64) string {
	if ballsFaced <= 0 {
		return "0.00"
	}
	return format(runs / ballsFaced * 100)
}

// Economy is runs conceded per over bowled.
func Economy(runsConceded, overs float64) string {
	if overs <= 0 {
		return "0.00"
	}
	return format(runsConceded / overs)
}

// Coerce parses a form value the way the admin forms do: anything that
// does not parse as a number becomes 0.
func Coerce(value string) float64 {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}
	return f
}

// format rounds halves away from zero, so an exact tie like 0.125 becomes
// "0.13" rather than the banker's "0.12".
func format(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', 2, 64)
}

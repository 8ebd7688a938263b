package cricstats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAverage(t *testing.T) {
	cases := []struct {
		runs, matches, notOuts float64
		want                   string
	}{
		{1200, 45, 5, "30.00"},
		{100, 3, 0, "33.33"},
		{50, 2, 1, "50.00"},
		{0, 10, 0, "0.00"},
		{100, 5, 5, "0.00"},  // never out
		{100, 3, 10, "0.00"}, // more not-outs than matches
		{0, 0, 0, "0.00"},
		{1, 8, 0, "0.13"}, // exact tie rounds up, not to even
	}

	for _, c := range cases {
		assert.Equal(t, c.want, Average(c.runs, c.matches, c.notOuts))
	}
}

func TestStrikeRate(t *testing.T) {
	cases := []struct {
		runs, ballsFaced float64
		want             string
	}{
		{150, 100, "150.00"},
		{50, 75, "66.67"},
		{0, 30, "0.00"},
		{100, 0, "0.00"},
		{1, 800, "0.13"}, // 0.125 exact tie
	}

	for _, c := range cases {
		assert.Equal(t, c.want, StrikeRate(c.runs, c.ballsFaced))
	}
}

func TestEconomy(t *testing.T) {
	cases := []struct {
		runsConceded, overs float64
		want                string
	}{
		{120, 20, "6.00"},
		{45, 10, "4.50"},
		{37, 4.1, "9.02"},
		{50, 0, "0.00"},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, Economy(c.runsConceded, c.overs))
	}
}

func TestCoerce(t *testing.T) {
	assert.Equal(t, 42.0, Coerce("42"))
	assert.Equal(t, 6.25, Coerce("6.25"))
	assert.Equal(t, 0.0, Coerce(""))
	assert.Equal(t, 0.0, Coerce("not a number"))
}

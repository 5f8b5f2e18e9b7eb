package countdown

import (
	"fmt"
	"math"
	"time"

	"rbay-web/internal/models"
)

// Placeholder is rendered when the closing time could not be parsed
const Placeholder = "--"

// Ended is rendered once the closing time is now or past
const Ended = "Ended"

type unit struct {
	name    string
	seconds float64
}

// Largest unit whose threshold the remaining seconds meet wins; seconds is
// the fallback.
var units = []unit{
	{"day", 86400},
	{"hour", 3600},
	{"minute", 60},
	{"second", 1},
}

// Label formats how far away an auction's closing time is, relative to now.
// 90000 remaining seconds round within the day unit to "1 day".
func Label(endingAt models.FlexTime, now time.Time) string {
	if !endingAt.Valid() {
		return Placeholder
	}

	remaining := math.Floor(endingAt.Time().Sub(now).Seconds())
	if remaining <= 0 {
		return Ended
	}

	for _, u := range units {
		if remaining >= u.seconds || u.name == "second" {
			delta := int(math.Round(remaining / u.seconds))
			if delta == 1 {
				return fmt.Sprintf("1 %s", u.name)
			}
			return fmt.Sprintf("%d %ss", delta, u.name)
		}
	}

	return Placeholder
}

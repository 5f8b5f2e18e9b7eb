package countdown

import (
	"testing"
	"time"

	"rbay-web/internal/models"

	"github.com/stretchr/testify/require"
)

func TestLabel(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		remaining time.Duration
		want      string
	}{
		{name: "ninety_thousand_seconds_rounds_to_one_day", remaining: 90000 * time.Second, want: "1 day"},
		{name: "two_days", remaining: 48 * time.Hour, want: "2 days"},
		{name: "one_hour", remaining: time.Hour, want: "1 hour"},
		{name: "ninety_minutes_rounds_to_two_hours", remaining: 90 * time.Minute, want: "2 hours"},
		{name: "ninety_seconds_rounds_to_two_minutes", remaining: 90 * time.Second, want: "2 minutes"},
		{name: "one_minute", remaining: 60 * time.Second, want: "1 minute"},
		{name: "forty_five_seconds", remaining: 45 * time.Second, want: "45 seconds"},
		{name: "one_second", remaining: time.Second, want: "1 second"},
		{name: "exactly_now_is_ended", remaining: 0, want: Ended},
		{name: "past_is_ended", remaining: -time.Hour, want: Ended},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			endingAt := models.NewFlexTime(now.Add(tt.remaining))
			require.Equal(t, tt.want, Label(endingAt, now))
		})
	}
}

func TestLabel_UnparsableRendersPlaceholder(t *testing.T) {
	var invalid models.FlexTime
	require.Equal(t, Placeholder, Label(invalid, time.Now()))
}

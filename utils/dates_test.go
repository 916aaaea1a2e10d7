package utils_test

import (
	"testing"
	"time"

	"movecrm-backend/utils"

	"github.com/stretchr/testify/require"
)

func TestParseDateTime(t *testing.T) {
	cases := []struct {
		input string
		want  time.Time
	}{
		{"2025-04-14T14:00:00", time.Date(2025, 4, 14, 14, 0, 0, 0, time.UTC)},
		{"2025-04-14T14:00:00Z", time.Date(2025, 4, 14, 14, 0, 0, 0, time.UTC)},
		{"2025-04-14T14:00:00+03:00", time.Date(2025, 4, 14, 14, 0, 0, 0, time.FixedZone("", 3*3600))},
		{"2025-04-14 14:00:00", time.Date(2025, 4, 14, 14, 0, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		got, err := utils.ParseDateTime(tc.input)
		require.NoError(t, err, tc.input)
		require.True(t, got.Equal(tc.want), "%s parsed to %s", tc.input, got)
	}

	_, err := utils.ParseDateTime("14.04.2025")
	require.Error(t, err)
	_, err = utils.ParseDateTime("")
	require.Error(t, err)
}

func TestRelativeDay(t *testing.T) {
	now := time.Date(2025, 4, 20, 12, 0, 0, 0, time.UTC)

	require.Equal(t, "Today", utils.RelativeDay(now, now))
	require.Equal(t, "Yesterday", utils.RelativeDay(now.AddDate(0, 0, -1), now))
	require.Equal(t, "3 days ago", utils.RelativeDay(now.AddDate(0, 0, -3), now))
	require.Equal(t, "01.04.2025", utils.RelativeDay(time.Date(2025, 4, 1, 8, 0, 0, 0, time.UTC), now))
	// Future job dates render as today
	require.Equal(t, "Today", utils.RelativeDay(now.AddDate(0, 0, 2), now))
}

func TestDaysBetween(t *testing.T) {
	start := time.Date(2025, 4, 14, 23, 50, 0, 0, time.UTC)
	end := time.Date(2025, 4, 15, 0, 10, 0, 0, time.UTC)
	require.Equal(t, 1, utils.DaysBetween(start, end))
}

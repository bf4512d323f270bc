package timerange

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/jgirmay/forgelog/internal/common/apperr"
)

var noon = time.Date(2025, 3, 10, 12, 34, 56, 0, time.UTC)

func TestResolve_Today(t *testing.T) {
	start, end, err := Resolve(Today, noon)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 3, 10, 23, 59, 59, 999999000, time.UTC), end)
}

func TestResolve_WeekCoversCurrentDayPlusSixPreceding(t *testing.T) {
	start, end, err := Resolve(Week, noon)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 3, 10, 23, 59, 59, 999999000, time.UTC), end)
}

func TestResolve_FixedDayCounts(t *testing.T) {
	cases := []struct {
		token string
		days  int
	}{
		{Today, 1},
		{Week, 7},
		{Month, 30},
		{Year, 365},
	}
	for _, tc := range cases {
		start, _, err := Resolve(tc.token, noon)
		require.NoError(t, err, tc.token)
		wantStart := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -(tc.days - 1))
		assert.Equal(t, wantStart, start, tc.token)
	}
}

func TestResolve_UnknownToken(t *testing.T) {
	_, _, err := Resolve("fortnight", noon)
	require.Error(t, err)
	assert.True(t, apperr.IsRange(err))
}

func TestResolveDays_RejectsNonPositive(t *testing.T) {
	for _, days := range []int{0, -1} {
		_, _, err := ResolveDays(days, noon)
		require.Error(t, err)
		assert.True(t, apperr.IsRange(err))
	}
}

func TestResolve_NonUTCInputIsNormalized(t *testing.T) {
	loc := time.FixedZone("UTC+11", 11*3600)
	// 2025-03-11 02:00 +11:00 is 2025-03-10 15:00 UTC.
	local := time.Date(2025, 3, 11, 2, 0, 0, 0, loc)

	start, _, err := Resolve(Today, local)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), start)
}

func TestResolveDays_Properties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		days := rapid.IntRange(1, 4000).Draw(t, "days")
		sec := rapid.Int64Range(0, 4102444800).Draw(t, "unixSec") // through 2100
		now := time.Unix(sec, 0).UTC()

		start, end, err := ResolveDays(days, now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !start.Before(end) {
			t.Fatalf("start %v not before end %v", start, end)
		}
		if h, m, s := start.Clock(); h+m+s != 0 {
			t.Fatalf("start %v is not midnight", start)
		}
		if end.Before(now.Truncate(time.Second)) {
			t.Fatalf("end %v precedes now %v", end, now)
		}
		// The window spans exactly `days` calendar days.
		span := end.Sub(start) + time.Microsecond
		if span != time.Duration(days)*24*time.Hour {
			t.Fatalf("window spans %v, want %d days", span, days)
		}
	})
}

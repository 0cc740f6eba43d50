package bamboohr

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, err := time.Parse(dateFormat, s)
	if err != nil {
		panic(err)
	}
	return t
}

func hoursOf(days []DayAllocation) []int {
	hours := make([]int, 0, len(days))
	for _, d := range days {
		hours = append(hours, d.Hours)
	}
	return hours
}

func TestAllocateDays(t *testing.T) {
	// 2024-03-04 is a Monday.
	tests := []struct {
		name         string
		start        string
		end          string
		startHalfDay bool
		endHalfDay   bool
		holidays     []string
		want         []int
	}{
		{
			name:  "single weekday",
			start: "2024-03-04",
			end:   "2024-03-04",
			want:  []int{8},
		},
		{
			name:  "single saturday",
			start: "2024-03-09",
			end:   "2024-03-09",
			want:  []int{0},
		},
		{
			name:         "single day with both half days",
			start:        "2024-03-05",
			end:          "2024-03-05",
			startHalfDay: true,
			endHalfDay:   true,
			want:         []int{4},
		},
		{
			name:     "holiday midweek",
			start:    "2024-03-04",
			end:      "2024-03-08",
			holidays: []string{"2024-03-06"},
			want:     []int{8, 8, 0, 8, 8},
		},
		{
			name:         "half days at both ends",
			start:        "2024-03-04",
			end:          "2024-03-08",
			startHalfDay: true,
			endHalfDay:   true,
			want:         []int{4, 8, 8, 8, 4},
		},
		{
			name:         "half day on a holiday is zero",
			start:        "2024-03-04",
			end:          "2024-03-05",
			startHalfDay: true,
			holidays:     []string{"2024-03-04"},
			want:         []int{0, 8},
		},
		{
			name:       "half day on a weekend is zero",
			start:      "2024-03-07",
			end:        "2024-03-09",
			endHalfDay: true,
			want:       []int{8, 8, 0},
		},
		{
			name:  "across a weekend",
			start: "2024-03-08",
			end:   "2024-03-11",
			want:  []int{8, 0, 0, 8},
		},
		{
			name:  "start after end",
			start: "2024-03-08",
			end:   "2024-03-04",
			want:  []int{},
		},
	}

	for _, test := range tests {
		tt := test
		t.Run(tt.name, func(t *testing.T) {
			var holidays []time.Time
			for _, h := range tt.holidays {
				holidays = append(holidays, day(h))
			}

			got := AllocateDays(day(tt.start), day(tt.end), tt.startHalfDay, tt.endHalfDay, holidays)
			require.Equal(t, tt.want, hoursOf(got))
		})
	}
}

func TestAllocateDays_OneEntryPerDay(t *testing.T) {
	start := time.Date(2023, time.December, 20, 15, 30, 0, 0, time.UTC)
	end := time.Date(2024, time.January, 10, 1, 0, 0, 0, time.UTC)

	got := AllocateDays(start, end, false, false, nil)
	require.Len(t, got, 22)
	require.Equal(t, day("2023-12-20"), got[0].Date)
	require.Equal(t, day("2024-01-10"), got[len(got)-1].Date)
	for i := 1; i < len(got); i++ {
		require.Equal(t, got[i-1].Date.AddDate(0, 0, 1), got[i].Date)
	}
}

func TestAllocateDays_IgnoresTimeOfDay(t *testing.T) {
	sydney := time.FixedZone("AEDT", 11*60*60)
	start := time.Date(2024, time.March, 4, 23, 59, 0, 0, sydney)
	holiday := time.Date(2024, time.March, 5, 9, 0, 0, 0, sydney)

	got := AllocateDays(start, start.AddDate(0, 0, 1), false, false, []time.Time{holiday})
	require.Equal(t, []DayAllocation{
		{Date: day("2024-03-04"), Hours: 8},
		{Date: day("2024-03-05"), Hours: 0},
	}, got)
}

func TestDatesXML(t *testing.T) {
	days := AllocateDays(day("2024-03-08"), day("2024-03-11"), true, false, nil)
	require.Equal(t,
		`<date ymd="2024-03-08" amount="4"/><date ymd="2024-03-09" amount="0"/>`+
			`<date ymd="2024-03-10" amount="0"/><date ymd="2024-03-11" amount="8"/>`,
		DatesXML(days))
}

func TestDatesXML_RoundTrip(t *testing.T) {
	days := AllocateDays(day("2024-02-26"), day("2024-03-15"), true, true, []time.Time{day("2024-03-01")})

	got, err := ParseDatesXML(DatesXML(days))
	require.NoError(t, err)
	require.Equal(t, days, got)
}

func TestParseDatesXML_InvalidDate(t *testing.T) {
	_, err := ParseDatesXML(`<date ymd="2024-13-01" amount="8"/>`)
	require.Error(t, err)
}

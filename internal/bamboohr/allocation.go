package bamboohr

import (
	"encoding/xml"
	"fmt"
	"strings"
	"time"
)

const (
	fullDayHours = 8
	halfDayHours = 4
)

// DayAllocation is the number of hours booked on one calendar day.
type DayAllocation struct {
	Date  time.Time
	Hours int
}

// AllocateDays books every calendar day from start to end inclusive.
// Holidays and weekends are zero hours even when they fall on a half day.
// When both half day flags are set on a single day request the day is four
// hours. A start after the end allocates nothing.
func AllocateDays(start time.Time, end time.Time, startHalfDay bool, endHalfDay bool, holidays []time.Time) []DayAllocation {
	first, last := truncateDay(start), truncateDay(end)
	days := []DayAllocation{}
	if first.After(last) {
		return days
	}

	off := make(map[time.Time]bool, len(holidays))
	for _, h := range holidays {
		off[truncateDay(h)] = true
	}

	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		hours := fullDayHours
		switch {
		case off[d]:
			hours = 0
		case d.Weekday() == time.Saturday || d.Weekday() == time.Sunday:
			hours = 0
		case d.Equal(first) && startHalfDay:
			hours = halfDayHours
		case d.Equal(last) && endHalfDay:
			hours = halfDayHours
		}
		days = append(days, DayAllocation{Date: d, Hours: hours})
	}
	return days
}

// truncateDay drops the time of day, keeping the calendar date as written in
// t's own location.
func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type dateXML struct {
	YMD    string `xml:"ymd,attr"`
	Amount int    `xml:"amount,attr"`
}

type datesXML struct {
	Dates []dateXML `xml:"date"`
}

// DatesXML renders the allocation as the day list of a time off request.
func DatesXML(days []DayAllocation) string {
	var sb strings.Builder
	for _, day := range days {
		fmt.Fprintf(&sb, `<date ymd="%s" amount="%d"/>`, day.Date.Format(dateFormat), day.Hours)
	}
	return sb.String()
}

// ParseDatesXML reads a day list rendered by DatesXML.
func ParseDatesXML(fragment string) ([]DayAllocation, error) {
	var list datesXML
	if err := xml.Unmarshal([]byte("<dates>"+fragment+"</dates>"), &list); err != nil {
		return nil, err
	}

	days := make([]DayAllocation, 0, len(list.Dates))
	for _, d := range list.Dates {
		date, err := time.Parse(dateFormat, d.YMD)
		if err != nil {
			return nil, fmt.Errorf("invalid ymd %q: %w", d.YMD, err)
		}
		days = append(days, DayAllocation{Date: date, Hours: d.Amount})
	}
	return days, nil
}

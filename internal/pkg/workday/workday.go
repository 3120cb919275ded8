package workday

import "time"

// IST is the fixed UTC+05:30 offset every calendar-day boundary is
// computed in, regardless of the server's timezone.
var IST = time.FixedZone("IST", (5*60+30)*60)

// Day is a calendar day in IST, formatted "2006-01-02". It is a distinct
// type from time.Time so a timestamp never leaks into a uniqueness key.
type Day string

const layout = "2006-01-02"

// FromTime converts an absolute timestamp to its IST calendar day.
func FromTime(t time.Time) Day {
	return Day(t.In(IST).Format(layout))
}

// Today returns the current IST calendar day.
func Today() Day {
	return FromTime(time.Now())
}

// Parse validates a "YYYY-MM-DD" string and returns it as a Day.
func Parse(s string) (Day, error) {
	t, err := time.Parse(layout, s)
	if err != nil {
		return "", err
	}
	return Day(t.Format(layout)), nil
}

func (d Day) String() string {
	return string(d)
}

// Bounds returns the absolute instants where the IST day begins and
// ends, for range queries over timestamp columns. A Day that did not
// come from Parse or FromTime may fail here.
func (d Day) Bounds() (start, end time.Time, err error) {
	t, err := time.ParseInLocation(layout, string(d), IST)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return t, t.Add(24 * time.Hour), nil
}

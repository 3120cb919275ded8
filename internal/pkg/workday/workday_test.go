package workday

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFromTime_RollsPastMidnightIST(t *testing.T) {
	t.Parallel()

	// 20:00 UTC is 01:30 IST the next day
	late := time.Date(2024, 1, 1, 20, 0, 0, 0, time.UTC)
	assert.Equal(t, Day("2024-01-02"), FromTime(late))

	// 18:29 UTC is still 23:59 IST the same day
	edge := time.Date(2024, 1, 1, 18, 29, 0, 0, time.UTC)
	assert.Equal(t, Day("2024-01-01"), FromTime(edge))
}

func TestFromTime_IgnoresServerTimezone(t *testing.T) {
	t.Parallel()

	utc := time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)
	ny := utc.In(time.FixedZone("EDT", -4*60*60))
	assert.Equal(t, FromTime(utc), FromTime(ny))
}

func TestBounds(t *testing.T) {
	t.Parallel()

	start, end, err := Day("2024-01-02").Bounds()
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 1, 18, 30, 0, 0, time.UTC).Unix(), start.Unix())
	assert.Equal(t, 24*time.Hour, end.Sub(start))
	assert.Equal(t, Day("2024-01-02"), FromTime(start))
	assert.Equal(t, Day("2024-01-03"), FromTime(end))

	_, _, err = Day("not-a-day").Bounds()
	assert.Error(t, err)
}

func TestParse(t *testing.T) {
	t.Parallel()

	d, err := Parse("2024-03-09")
	assert.NoError(t, err)
	assert.Equal(t, Day("2024-03-09"), d)

	_, err = Parse("09-03-2024")
	assert.Error(t, err)

	_, err = Parse("")
	assert.Error(t, err)
}

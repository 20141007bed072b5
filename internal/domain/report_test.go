package domain

import (
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "0:0:0"},
		{time.Hour, "1:0:0"},
		{59 * time.Second, "0:0:59"},
		{25*time.Hour + 3*time.Minute + 7*time.Second, "25:3:7"},
		{1500 * time.Millisecond, "0:0:1"},
		{-time.Minute, "0:0:0"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDuration(tt.in))
	}
}

func TestReport_AddSumsAndOrders(t *testing.T) {
	d1 := civil.Date{Year: 2023, Month: time.January, Day: 1}
	d2 := civil.Date{Year: 2023, Month: time.January, Day: 2}
	r := NewReport(d1, d2)

	r.Add(d2, "B-1-1", time.Minute)
	r.Add(d1, "B-1-1", time.Hour)
	r.Add(d1, "A-1-1", 30*time.Minute)
	r.Add(d1, "A-1-1", 30*time.Minute)
	r.Add(d1, "C-1-1", 0)
	r.Add(d1, "C-1-1", -time.Hour)

	days := r.Days()
	require.Len(t, days, 2)
	assert.Equal(t, "2023-01-01", days[0].Date)
	require.Len(t, days[0].Entries, 2)
	assert.Equal(t, "A-1-1", days[0].Entries[0].Code)
	assert.Equal(t, time.Hour, days[0].Entries[0].Duration)
	assert.Equal(t, "1:0:0", days[0].Entries[0].Elapsed)
	assert.Equal(t, int64(3600), days[0].Entries[0].Seconds)
	assert.Equal(t, "B-1-1", days[0].Entries[1].Code)
	assert.Equal(t, "2023-01-02", days[1].Date)
}

package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDateStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "valid date", input: "15-10-2025", wantErr: false},
		{name: "valid leap day", input: "29-02-2024", wantErr: false},
		{name: "first of january", input: "01-01-2024", wantErr: false},
		{name: "empty string", input: "", wantErr: true},
		{name: "iso format rejected", input: "2025-10-15", wantErr: true},
		{name: "no leading zeros rejected", input: "5-1-2024", wantErr: true},
		{name: "slash separator rejected", input: "15/10/2025", wantErr: true},
		{name: "nonexistent date", input: "31-02-2024", wantErr: true},
		{name: "leap day in non-leap year", input: "29-02-2023", wantErr: true},
		{name: "garbage", input: "not-a-date", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewDateStringFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidDateString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, got.String())
		})
	}
}

func TestNewDateString(t *testing.T) {
	d := NewDateString(time.Date(2025, time.October, 15, 23, 59, 0, 0, time.UTC))
	assert.Equal(t, DateString("15-10-2025"), d)
}

func TestDateString_Comparisons(t *testing.T) {
	earlier := DateString("14-10-2025")
	later := DateString("15-10-2025")

	assert.True(t, earlier.Before(later))
	assert.False(t, later.Before(earlier))
	assert.True(t, later.After(earlier))
	assert.True(t, earlier.Equal(earlier))
	assert.False(t, earlier.Equal(later))
}

func TestDateString_AddDays(t *testing.T) {
	tests := []struct {
		name string
		date DateString
		days int
		want DateString
	}{
		{name: "same month", date: "10-06-2024", days: 5, want: "15-06-2024"},
		{name: "month boundary", date: "30-06-2024", days: 1, want: "01-07-2024"},
		{name: "year boundary", date: "31-12-2024", days: 1, want: "01-01-2025"},
		{name: "leap february", date: "28-02-2024", days: 1, want: "29-02-2024"},
		{name: "zero days", date: "10-06-2024", days: 0, want: "10-06-2024"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.date.AddDays(tt.days))
		})
	}
}

func TestDateString_Time(t *testing.T) {
	d := DateString("15-10-2025")
	parsed := d.Time()

	assert.Equal(t, 2025, parsed.Year())
	assert.Equal(t, time.October, parsed.Month())
	assert.Equal(t, 15, parsed.Day())
	assert.Equal(t, time.UTC, parsed.Location())

	assert.True(t, DateString("garbage").Time().IsZero())
}

func TestDateString_IsZero(t *testing.T) {
	assert.True(t, DateString("").IsZero())
	assert.False(t, DateString("15-10-2025").IsZero())
}

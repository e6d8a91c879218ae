package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalTimeToUTC(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		date   string
		clock  string
		offset float64
		want   time.Time
	}{
		{
			name:   "sao paulo morning",
			date:   "2024-05-01",
			clock:  "09:00",
			offset: -3,
			want:   time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		},
		{
			name:   "utc is identity",
			date:   "2024-05-01",
			clock:  "09:00",
			offset: 0,
			want:   time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC),
		},
		{
			name:   "east of utc subtracts",
			date:   "2024-05-01",
			clock:  "09:00",
			offset: 2,
			want:   time.Date(2024, 5, 1, 7, 0, 0, 0, time.UTC),
		},
		{
			name:   "fractional offset",
			date:   "2024-05-01",
			clock:  "09:00",
			offset: 5.5,
			want:   time.Date(2024, 5, 1, 3, 30, 0, 0, time.UTC),
		},
		{
			name:   "crosses midnight",
			date:   "2024-05-01",
			clock:  "23:00",
			offset: -3,
			want:   time.Date(2024, 5, 2, 2, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := LocalTimeToUTC(tt.date, tt.clock, tt.offset)
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %v, want %v", got, tt.want)
		})
	}
}

func TestLocalTimeToUTCInvalid(t *testing.T) {
	t.Parallel()

	_, err := LocalTimeToUTC("2024-13-01", "09:00", 0)
	assert.Error(t, err)

	_, err = LocalTimeToUTC("2024-05-01", "25:00", 0)
	assert.Error(t, err)

	_, err = LocalTimeToUTC("", "", 0)
	assert.Error(t, err)
}

package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/montagezeit/reminder-engine/internal/domain"
)

func TestNewClockTime(t *testing.T) {
	tests := []struct {
		name    string
		hour    int
		minute  int
		wantErr bool
	}{
		{name: "midnight", hour: 0, minute: 0},
		{name: "last minute of the day", hour: 23, minute: 59},
		{name: "negative hour", hour: -1, minute: 0, wantErr: true},
		{name: "hour 24", hour: 24, minute: 0, wantErr: true},
		{name: "minute 60", hour: 12, minute: 60, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ct, err := domain.NewClockTime(tt.hour, tt.minute)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidClockTime)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.hour, ct.Hour())
			assert.Equal(t, tt.minute, ct.Minute())
		})
	}
}

func TestClockTimeFromString(t *testing.T) {
	ct, err := domain.ClockTimeFromString("06:30")
	require.NoError(t, err)
	assert.Equal(t, 6, ct.Hour())
	assert.Equal(t, 30, ct.Minute())
	assert.Equal(t, "06:30", ct.String())

	_, err = domain.ClockTimeFromString("25:00")
	assert.ErrorIs(t, err, domain.ErrInvalidClockTime)

	_, err = domain.ClockTimeFromString("630")
	assert.ErrorIs(t, err, domain.ErrInvalidClockTime)
}

func TestClockTimeOrderingAndSub(t *testing.T) {
	six := domain.MustClockTime(6, 0)
	thirteen := domain.MustClockTime(13, 0)

	assert.True(t, six.Before(thirteen))
	assert.False(t, thirteen.Before(six))
	assert.False(t, six.Before(six))
	assert.Equal(t, 7*time.Hour, thirteen.Sub(six))
	assert.Equal(t, -7*time.Hour, six.Sub(thirteen))
}

func TestClockTimeOf(t *testing.T) {
	instant := time.Date(2025, 11, 3, 9, 45, 12, 0, time.UTC)
	ct := domain.ClockTimeOf(instant)

	assert.Equal(t, 9, ct.Hour())
	assert.Equal(t, 45, ct.Minute())
}

package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/montagezeit/reminder-engine/internal/domain"
)

func TestNewReminderType(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    domain.ReminderType
		wantErr bool
	}{
		{name: "morning", input: "morning", want: domain.ReminderMorning},
		{name: "evening", input: "evening", want: domain.ReminderEvening},
		{name: "fallback", input: "fallback", want: domain.ReminderFallback},
		{name: "daily", input: "daily", want: domain.ReminderDaily},
		{name: "unknown value", input: "weekly", wantErr: true},
		{name: "empty value", input: "", wantErr: true},
		{name: "case sensitive", input: "MORNING", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.NewReminderType(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidReminderType)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReminderTypeJobNames(t *testing.T) {
	assert.Equal(t, "morning_reminder_work", domain.ReminderMorning.JobName())
	assert.Equal(t, "fallback_reminder_work", domain.ReminderFallback.JobName())
	assert.Equal(t, "evening_reminder_postpone", domain.ReminderEvening.PostponeJobName())
}

func TestAllReminderTypes(t *testing.T) {
	types := domain.AllReminderTypes()

	require.Len(t, types, 4)
	assert.Equal(t, domain.ReminderMorning, types[0])
	assert.Equal(t, domain.ReminderDaily, types[3])
}

//go:build unit

package workflow_test

import (
	"testing"
	"time"

	"meeting-scheduler/internal/domain/workflow"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func step(t *testing.T, timing workflow.Timing, minutes int, action string) workflow.Step {
	t.Helper()
	s, err := workflow.NewStep(uuid.New(), timing, minutes, action)
	require.NoError(t, err)
	return s
}

func TestNewStep(t *testing.T) {
	_, err := workflow.NewStep(uuid.New(), "during", 10, "send_reminder")
	require.ErrorIs(t, err, workflow.ErrInvalidTiming)

	_, err = workflow.NewStep(uuid.New(), workflow.TimingBefore, -1, "send_reminder")
	require.ErrorIs(t, err, workflow.ErrInvalidMinutes)
}

func TestSchedule(t *testing.T) {
	start := time.Date(2030, 3, 11, 10, 0, 0, 0, time.UTC)
	end := start.Add(30 * time.Minute)

	dayBefore := step(t, workflow.TimingBefore, 24*60, "send_reminder")
	hourBefore := step(t, workflow.TimingBefore, 60, "send_reminder")
	atStart := step(t, workflow.TimingBefore, 0, "send_sms")
	afterEnd := step(t, workflow.TimingAfter, 15, "send_follow_up")
	steps := []workflow.Step{dayBefore, hourBefore, atStart, afterEnd}

	testCases := []struct {
		name     string
		now      time.Time
		expected []workflow.Scheduled
	}{
		{
			name: "booked well ahead: every step is due later",
			now:  start.Add(-48 * time.Hour),
			expected: []workflow.Scheduled{
				{Step: dayBefore, RunAt: start.Add(-24 * time.Hour)},
				{Step: hourBefore, RunAt: start.Add(-time.Hour)},
				{Step: atStart, RunAt: start},
				{Step: afterEnd, RunAt: end.Add(15 * time.Minute)},
			},
		},
		{
			name: "booked on short notice: past send times are skipped",
			now:  start.Add(-2 * time.Hour),
			expected: []workflow.Scheduled{
				{Step: hourBefore, RunAt: start.Add(-time.Hour)},
				{Step: atStart, RunAt: start},
				{Step: afterEnd, RunAt: end.Add(15 * time.Minute)},
			},
		},
		{
			name: "send time equal to now is skipped",
			now:  start.Add(-time.Hour),
			expected: []workflow.Scheduled{
				{Step: atStart, RunAt: start},
				{Step: afterEnd, RunAt: end.Add(15 * time.Minute)},
			},
		},
		{
			name:     "meeting already over",
			now:      end.Add(time.Hour),
			expected: []workflow.Scheduled{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual := workflow.Schedule(steps, start, end, tc.now)
			if diff := cmp.Diff(tc.expected, actual); diff != "" {
				t.Errorf("scheduled steps mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

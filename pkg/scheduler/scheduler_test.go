package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartStop(t *testing.T) {
	s := NewEventScheduler()
	assert.False(t, s.IsRunning())

	s.Start()
	assert.True(t, s.IsRunning())

	s.Stop()
	assert.False(t, s.IsRunning())
}

func TestAddJob(t *testing.T) {
	s := NewEventScheduler()

	require.NoError(t, s.AddJob("log-pruning", "0 3 * * *", func() {}))

	jobs := s.ListJobs()
	require.Contains(t, jobs, "log-pruning")
	assert.Equal(t, "0 3 * * *", jobs["log-pruning"].CronExpr)
	assert.True(t, jobs["log-pruning"].IsActive)
}

func TestAddJob_DuplicateID(t *testing.T) {
	s := NewEventScheduler()

	require.NoError(t, s.AddJob("log-pruning", "0 3 * * *", func() {}))
	assert.Error(t, s.AddJob("log-pruning", "0 3 * * *", func() {}))
}

func TestAddJob_InvalidCronExpression(t *testing.T) {
	s := NewEventScheduler()
	assert.Error(t, s.AddJob("broken", "not a cron expression", func() {}))
}

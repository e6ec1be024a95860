package workerpool

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_RunJobs(t *testing.T) {
	pool := New(5)

	var jobs []Job
	var completed int32
	for i := 0; i < 15; i++ {
		jobs = append(jobs, func() error {
			time.Sleep(10 * time.Millisecond)
			atomic.AddInt32(&completed, 1)
			return nil
		})
	}

	pool.Add(jobs)
	require.NoError(t, pool.Wait())
	require.EqualValues(t, len(jobs), completed, "expected all jobs to be completed")
}

func Test_StopWait(t *testing.T) {
	pool := New(2)

	var jobs []Job
	var completed int32
	for i := 0; i < 15; i++ {
		jobs = append(jobs, func() error {
			time.Sleep(50 * time.Millisecond)
			atomic.AddInt32(&completed, 1)
			return nil
		})
	}

	pool.Add(jobs)
	<-time.After(10 * time.Millisecond)
	pool.Stop()
	pool.Wait()
	assert.True(t, atomic.LoadInt32(&completed) < 15, "expected some jobs to be discarded")
}

func Test_WaitReturnsJobError(t *testing.T) {
	pool := New(3)

	pool.Add([]Job{
		func() error { return nil },
		func() error { return assert.AnError },
		func() error { return nil },
	})

	assert.Equal(t, assert.AnError, pool.Wait())
}

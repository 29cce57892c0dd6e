package cron

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestScheduler_RunOnceExecutesAllJobs(t *testing.T) {
	s := NewScheduler()

	var intervalRuns, dailyRuns atomic.Int32
	s.AddJob("interval", time.Hour, func(ctx context.Context) error {
		intervalRuns.Add(1)
		return nil
	})
	s.AddDailyJob("daily", 19, nil, func(ctx context.Context) error {
		dailyRuns.Add(1)
		return nil
	})

	s.RunOnce(context.Background())

	assert.EqualValues(t, 1, intervalRuns.Load())
	assert.EqualValues(t, 1, dailyRuns.Load(), "RunOnce bypasses the daily hour gate")
}

func TestScheduler_RunOnceContinuesPastFailures(t *testing.T) {
	s := NewScheduler()

	var ran atomic.Bool
	s.AddJob("failing", time.Hour, func(ctx context.Context) error {
		return errors.New("boom")
	})
	s.AddJob("after", time.Hour, func(ctx context.Context) error {
		ran.Store(true)
		return nil
	})

	s.RunOnce(context.Background())

	assert.True(t, ran.Load())
}

func TestScheduler_StartRunsIntervalJobImmediately(t *testing.T) {
	s := NewScheduler()

	done := make(chan struct{})
	s.AddJob("startup", time.Hour, func(ctx context.Context) error {
		close(done)
		return nil
	})

	s.Start()
	defer s.Stop()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("interval job did not run on start")
	}
}

func TestScheduler_DailyJobDoesNotRunOnStart(t *testing.T) {
	s := NewScheduler()

	var runs atomic.Int32
	s.AddDailyJob("daily", 3, time.UTC, func(ctx context.Context) error {
		runs.Add(1)
		return nil
	})

	s.Start()
	time.Sleep(50 * time.Millisecond)
	s.Stop()

	assert.EqualValues(t, 0, runs.Load())
}

func TestScheduler_StopWaitsForJobs(t *testing.T) {
	s := NewScheduler()
	s.AddJob("noop", time.Hour, func(ctx context.Context) error { return nil })

	s.Start()

	stopped := make(chan struct{})
	go func() {
		s.Stop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop did not return")
	}
}

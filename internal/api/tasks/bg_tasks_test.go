package tasks

import (
	"context"
	"log/slog"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRun(t *testing.T) {
	bgTasks := New(slog.Default(), 3, 10)
	bgTasks.Run()
	var taskRunned atomic.Bool
	task := func() {
		t.Log("task")
		taskRunned.Store(true)
	}
	bgTasks.Add(task)
	bgTasks.Shutdown(context.Background())
	assert.True(t, taskRunned.Load())
}

func TestShutdownDrainsQueue(t *testing.T) {
	bgTasks := New(slog.Default(), 2, 10)
	bgTasks.Run()
	var counter atomic.Int32
	for i := 0; i < 5; i++ {
		bgTasks.Add(func() { counter.Add(1) })
	}
	err := bgTasks.Shutdown(context.Background())
	assert.NoError(t, err)
	assert.EqualValues(t, 5, counter.Load())
	assert.True(t, bgTasks.IsEmpty())
}

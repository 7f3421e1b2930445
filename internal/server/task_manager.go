package server

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sanonone/wordgraph/pkg/engine"
)

// ErrTaskNotFound is returned when no task has the requested ID.
var ErrTaskNotFound = errors.New("task not found")

// TaskStatus defines the possible states of a task.
type TaskStatus string

const (
	TaskStatusRunning   TaskStatus = "running"
	TaskStatusCompleted TaskStatus = "completed"
	TaskStatusCancelled TaskStatus = "cancelled"
	TaskStatusFailed    TaskStatus = "failed"
)

// Task is an asynchronous random walk.
type Task struct {
	ID        string
	Status    TaskStatus
	Result    *engine.WalkResult
	Error     string
	StartedAt time.Time
	EndedAt   time.Time

	cancel context.CancelFunc
	mu     sync.RWMutex
}

// TaskView is the JSON representation of a Task at a point in time.
type TaskView struct {
	ID        string             `json:"id"`
	Status    TaskStatus         `json:"status"`
	Result    *engine.WalkResult `json:"result,omitempty"`
	Message   string             `json:"message,omitempty"`
	Error     string             `json:"error,omitempty"`
	StartedAt time.Time          `json:"started_at"`
	EndedAt   *time.Time         `json:"ended_at,omitempty"`
}

// DefaultTaskRetention is how long a finished task stays queryable.
const DefaultTaskRetention = 15 * time.Minute

// TaskManager tracks asynchronous walk tasks. Finished tasks are forgotten
// once they are older than the retention period; running tasks are never removed.
type TaskManager struct {
	tasks     map[string]*Task
	retention time.Duration
	now       func() time.Time
	mu        sync.RWMutex
	wg        sync.WaitGroup
}

// NewTaskManager creates a new task manager. A retention <= 0 selects DefaultTaskRetention.
func NewTaskManager(retention time.Duration) *TaskManager {
	if retention <= 0 {
		retention = DefaultTaskRetention
	}
	return &TaskManager{
		tasks:     make(map[string]*Task),
		retention: retention,
		now:       time.Now,
	}
}

// Start registers a task and runs fn in its own goroutine with a cancellable context.
// fn's result completes the task; a cancelled walk ends as TaskStatusCancelled.
func (tm *TaskManager) Start(fn func(ctx context.Context) (engine.WalkResult, error)) *Task {
	ctx, cancel := context.WithCancel(context.Background())

	task := &Task{
		ID:        uuid.New().String(),
		Status:    TaskStatusRunning,
		StartedAt: tm.now(),
		cancel:    cancel,
	}

	tm.mu.Lock()
	tm.pruneLocked()
	tm.tasks[task.ID] = task
	tm.mu.Unlock()

	tm.wg.Add(1)
	go func() {
		defer tm.wg.Done()
		defer cancel()

		res, err := fn(ctx)
		if err != nil {
			task.fail(err, tm.now())
			return
		}
		task.complete(res, tm.now())
	}()

	return task
}

// GetTask safely retrieves a task by its ID.
func (tm *TaskManager) GetTask(id string) (*Task, bool) {
	tm.mu.RLock()
	defer tm.mu.RUnlock()
	task, found := tm.tasks[id]
	return task, found
}

// Cancel raises the cancellation signal of a task. Finished tasks are unaffected.
func (tm *TaskManager) Cancel(id string) (*Task, error) {
	task, ok := tm.GetTask(id)
	if !ok {
		return nil, ErrTaskNotFound
	}
	task.cancel()
	return task, nil
}

// CancelAll cancels every task.
func (tm *TaskManager) CancelAll() {
	tm.mu.RLock()
	defer tm.mu.RUnlock()
	for _, task := range tm.tasks {
		task.cancel()
	}
}

// Prune forgets the finished tasks older than the retention period and
// returns how many were removed.
func (tm *TaskManager) Prune() int {
	tm.mu.Lock()
	defer tm.mu.Unlock()
	return tm.pruneLocked()
}

func (tm *TaskManager) pruneLocked() int {
	cutoff := tm.now().Add(-tm.retention)
	removed := 0
	for id, task := range tm.tasks {
		if task.endedBefore(cutoff) {
			delete(tm.tasks, id)
			removed++
		}
	}
	return removed
}

// Wait blocks until every started task has finished.
func (tm *TaskManager) Wait() {
	tm.wg.Wait()
}

// --- Methods for updating a Task ---

func (t *Task) complete(res engine.WalkResult, at time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.Result = &res
	t.EndedAt = at
	if res.Stop == engine.StopCancelled {
		t.Status = TaskStatusCancelled
	} else {
		t.Status = TaskStatusCompleted
	}
}

// fail marks the task as failed and records the error message.
func (t *Task) fail(err error, at time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.Status = TaskStatusFailed
	t.Error = err.Error()
	t.EndedAt = at
}

// endedBefore reports whether the task has finished before cutoff.
func (t *Task) endedBefore(cutoff time.Time) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return !t.EndedAt.IsZero() && t.EndedAt.Before(cutoff)
}

// View returns a consistent copy of the task for serialization.
func (t *Task) View() TaskView {
	t.mu.RLock()
	defer t.mu.RUnlock()

	v := TaskView{
		ID:        t.ID,
		Status:    t.Status,
		Result:    t.Result,
		Error:     t.Error,
		StartedAt: t.StartedAt,
	}
	if t.Result != nil {
		v.Message = t.Result.String()
	}
	if !t.EndedAt.IsZero() {
		ended := t.EndedAt
		v.EndedAt = &ended
	}
	return v
}

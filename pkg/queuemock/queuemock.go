// Package queuemock provides a task-queue stand-in. Dispatch methods
// return fixed identifier/state pairs synchronously; nothing is scheduled
// and no worker ever runs.
package queuemock

import "github.com/google/uuid"

// State is the reported lifecycle state of a simulated task handle.
type State string

// StatePending is the only state canned handles report.
const StatePending State = "PENDING"

// Fixed handle identifiers returned by the default task.
const (
	DelayTaskID = "task-123"
	AsyncTaskID = "task-456"
)

// AsyncResult simulates a queued task handle.
type AsyncResult struct {
	ID    string
	State State
}

// SyncResult simulates an eagerly executed task result.
type SyncResult struct {
	Value string
}

// Task simulates an asynchronous task entry point.
type Task struct {
	generateIDs bool
	dispatches  int
}

// Option customizes a Task.
type Option func(*Task)

// WithGeneratedIDs makes each dispatch return a distinct uuid handle
// instead of the fixed identifiers, for tests that need to tell handles
// apart.
func WithGeneratedIDs() Option {
	return func(t *Task) { t.generateIDs = true }
}

// NewTask returns a task stand-in.
func NewTask(opts ...Option) *Task {
	task := &Task{}
	for _, opt := range opts {
		opt(task)
	}
	return task
}

// Delay simulates enqueueing the task with positional arguments. The
// arguments are accepted and ignored.
func (t *Task) Delay(args ...interface{}) AsyncResult {
	t.dispatches++
	return AsyncResult{ID: t.id(DelayTaskID), State: StatePending}
}

// ApplyAsync simulates enqueueing with explicit args and options.
func (t *Task) ApplyAsync(args []interface{}, kwargs map[string]interface{}) AsyncResult {
	t.dispatches++
	return AsyncResult{ID: t.id(AsyncTaskID), State: StatePending}
}

// Apply simulates eager in-process execution.
func (t *Task) Apply(args ...interface{}) SyncResult {
	t.dispatches++
	return SyncResult{Value: "Task completed"}
}

// Dispatches returns how many dispatch calls were made.
func (t *Task) Dispatches() int {
	return t.dispatches
}

func (t *Task) id(fixed string) string {
	if t.generateIDs {
		return uuid.NewString()
	}
	return fixed
}

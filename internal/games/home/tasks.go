package home

import (
	"fmt"

	"github.com/vovakirdan/homebound/internal/config"
)

// Task is one entry of the fixed household task sequence.
type Task struct {
	Label        string
	Object       string
	Completion   config.Completion
	Instructions []string
}

// NeedsCode reports whether the task is completed on the keypad instead of by holding.
func (t Task) NeedsCode() bool {
	return t.Completion == config.CompletionCode
}

// TaskSequencer owns the ordered list of pending tasks. Only the head task
// can be completed; it is popped on the tick after the player's completion
// flag is raised.
type TaskSequencer struct {
	pending []Task
	objects map[string]string // label -> required object type
	total   int
}

// NewTaskSequencer builds the sequence. Every task must name an object type
// present in known, otherwise the task could never be completed.
func NewTaskSequencer(tasks []config.TaskConfig, known map[string]bool) (*TaskSequencer, error) {
	s := &TaskSequencer{
		pending: make([]Task, 0, len(tasks)),
		objects: make(map[string]string, len(tasks)),
		total:   len(tasks),
	}
	for _, tc := range tasks {
		if !known[tc.Object] {
			return nil, fmt.Errorf("task %q: object %q is not placed on the map", tc.Label, tc.Object)
		}
		if _, dup := s.objects[tc.Label]; dup {
			return nil, fmt.Errorf("task %q listed twice", tc.Label)
		}
		s.objects[tc.Label] = tc.Object
		completion := tc.Completion
		if completion == "" {
			completion = config.CompletionHold
		}
		s.pending = append(s.pending, Task{
			Label:        tc.Label,
			Object:       tc.Object,
			Completion:   completion,
			Instructions: append([]string(nil), tc.Instructions...),
		})
	}
	return s, nil
}

// Current returns the head task, or false once every task is done.
func (s *TaskSequencer) Current() (Task, bool) {
	if len(s.pending) == 0 {
		return Task{}, false
	}
	return s.pending[0], true
}

// RequiredObject returns the object type a task label needs. Labels are
// validated at construction, so an unknown label is a programming error.
func (s *TaskSequencer) RequiredObject(label string) string {
	obj, ok := s.objects[label]
	if !ok {
		panic(fmt.Sprintf("home: unknown task label %q", label))
	}
	return obj
}

// Advance pops the head task if the completion flag is raised and clears
// the flag. It returns the completed task.
func (s *TaskSequencer) Advance(flag *bool) (Task, bool) {
	if !*flag {
		return Task{}, false
	}
	*flag = false
	if len(s.pending) == 0 {
		return Task{}, false
	}
	done := s.pending[0]
	s.pending = s.pending[1:]
	return done, true
}

// AllComplete reports whether the sequence is exhausted.
func (s *TaskSequencer) AllComplete() bool {
	return len(s.pending) == 0
}

// Completed returns how many tasks have been popped.
func (s *TaskSequencer) Completed() int {
	return s.total - len(s.pending)
}

// Total returns the sequence length.
func (s *TaskSequencer) Total() int {
	return s.total
}

// Remaining returns a copy of the pending tasks, head first.
func (s *TaskSequencer) Remaining() []Task {
	return append([]Task(nil), s.pending...)
}

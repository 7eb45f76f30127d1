package engine

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrNotWorking is returned when an operation needs an active session
	ErrNotWorking = errors.New("not working on any task")

	// ErrNoTaskName is returned when start gets no name and there is no
	// previous session to borrow one from
	ErrNoTaskName = errors.New("no task name given and no previous task to reuse")
)

// ErrAlreadyWorking is returned when starting while a session is active
type ErrAlreadyWorking struct {
	Name string
}

func (e ErrAlreadyWorking) Error() string {
	return fmt.Sprintf("already working on %s", e.Name)
}

// ErrEndsBeforeStart is returned when a stop time precedes the session start
type ErrEndsBeforeStart struct {
	Name  string
	Start time.Time
}

func (e ErrEndsBeforeStart) Error() string {
	return fmt.Sprintf("cannot stop %s before it started at %s", e.Name, e.Start.Format(time.RFC3339))
}

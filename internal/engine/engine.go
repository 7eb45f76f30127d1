// Package engine implements the work session state machine: starting and
// stopping sessions, nested interrupts with LIFO resumption, tags and notes.
//
// Every mutating operation is a single load-mutate-save cycle on the
// injected store, so an operation is either fully applied or not at all.
package engine

import (
	"context"
	"time"

	"github.com/aki/ti/internal/logger"
	"github.com/aki/ti/internal/sheet"
)

// Clock returns the current instant
type Clock func() time.Time

// Engine runs session operations against a store
type Engine struct {
	store sheet.Store
	clock Clock
}

// Option configures an Engine
type Option func(*Engine)

// WithClock overrides the clock used for status reports
func WithClock(clock Clock) Option {
	return func(e *Engine) {
		e.clock = clock
	}
}

// New creates an engine backed by store
func New(store sheet.Store, opts ...Option) *Engine {
	e := &Engine{
		store: store,
		clock: time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// loggerFrom returns the logger carried by ctx, grouped under "engine"
func loggerFrom(ctx context.Context) logger.Logger {
	return logger.FromContext(ctx).WithGroup("engine")
}

// StartResult describes a started session
type StartResult struct {
	Name string
	// ReusedName is set when the name was taken from the previous session
	ReusedName bool
}

// StopResult describes a stopped session and any resumption
type StopResult struct {
	Stopped string
	// Resumed is the name of the session popped off the interrupt stack
	Resumed string
	// Depth is the interrupt stack depth after resuming. Only meaningful
	// when Resumed is set.
	Depth int
}

// DidResume reports whether an interrupted session was resumed
func (r *StopResult) DidResume() bool {
	return r.Resumed != ""
}

// InterruptResult describes an interruption
type InterruptResult struct {
	Suspended string
	Started   string
	Depth     int
}

// TagResult describes a tagging operation
type TagResult struct {
	Name      string
	Requested int
	Added     int
	Tags      []string
}

// NoteResult describes a noting operation
type NoteResult struct {
	Name string
}

// Status describes the active session
type Status struct {
	Working bool
	Name    string
	Start   time.Time
	Elapsed time.Duration
}

// Start begins a session named name at the given time
func (e *Engine) Start(ctx context.Context, name string, at time.Time) (*StartResult, error) {
	var result *StartResult
	err := e.store.Update(ctx, func(sh *sheet.Sheet) error {
		r, err := start(sh, name, at)
		if err != nil {
			return err
		}
		result = r
		return nil
	})
	if err != nil {
		return nil, err
	}

	loggerFrom(ctx).Debug("started", "name", result.Name, "at", sheet.FormatTimestamp(at))
	return result, nil
}

// Stop ends the active session at the given time. With resume set and a
// non-empty interrupt stack, the most recently interrupted task is started
// again at the same instant.
func (e *Engine) Stop(ctx context.Context, at time.Time, resume bool) (*StopResult, error) {
	var result *StopResult
	err := e.store.Update(ctx, func(sh *sheet.Sheet) error {
		r, err := stop(sh, at, resume)
		if err != nil {
			return err
		}
		result = r
		return nil
	})
	if err != nil {
		return nil, err
	}

	loggerFrom(ctx).Debug("stopped", "name", result.Stopped, "resumed", result.Resumed, "depth", result.Depth)
	return result, nil
}

// Interrupt suspends the active session onto the interrupt stack and starts
// name, marked as an interruption, at the given time.
func (e *Engine) Interrupt(ctx context.Context, name string, at time.Time) (*InterruptResult, error) {
	var result *InterruptResult
	err := e.store.Update(ctx, func(sh *sheet.Sheet) error {
		if !sh.IsWorking() {
			return ErrNotWorking
		}

		stopped, err := stop(sh, at, false)
		if err != nil {
			return err
		}
		sh.Push(sh.Last().Clone())

		started, err := start(sh, name+sheet.InterruptMarker, at)
		if err != nil {
			return err
		}

		result = &InterruptResult{
			Suspended: stopped.Stopped,
			Started:   started.Name,
			Depth:     sh.Depth(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	loggerFrom(ctx).Debug("interrupted", "suspended", result.Suspended, "started", result.Started, "depth", result.Depth)
	return result, nil
}

// Tag adds tags to the active session
func (e *Engine) Tag(ctx context.Context, tags []string) (*TagResult, error) {
	var result *TagResult
	err := e.store.Update(ctx, func(sh *sheet.Sheet) error {
		current := sh.Current()
		if current == nil {
			return ErrNotWorking
		}

		added := current.Tags.Union(tags...)
		result = &TagResult{
			Name:      current.Name,
			Requested: len(tags),
			Added:     added,
			Tags:      current.Tags.Values(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Note appends text to the active session's notes
func (e *Engine) Note(ctx context.Context, text string) (*NoteResult, error) {
	var result *NoteResult
	err := e.store.Update(ctx, func(sh *sheet.Sheet) error {
		current := sh.Current()
		if current == nil {
			return ErrNotWorking
		}

		current.Notes = append(current.Notes, text)
		result = &NoteResult{Name: current.Name}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Status reports the active session. Not working is not an error.
func (e *Engine) Status(ctx context.Context) (*Status, error) {
	sh, err := e.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	current := sh.Current()
	if current == nil {
		return &Status{}, nil
	}

	return &Status{
		Working: true,
		Name:    current.Name,
		Start:   current.Start,
		Elapsed: e.clock().Sub(current.Start),
	}, nil
}

func start(sh *sheet.Sheet, name string, at time.Time) (*StartResult, error) {
	if current := sh.Current(); current != nil {
		return nil, ErrAlreadyWorking{Name: current.Name}
	}

	result := &StartResult{Name: name}
	if name == "" {
		last := sh.Last()
		if last == nil {
			return nil, ErrNoTaskName
		}
		result.Name = last.Name
		result.ReusedName = true
	}

	sh.Append(&sheet.Session{Name: result.Name, Start: at.UTC()})
	return result, nil
}

func stop(sh *sheet.Sheet, at time.Time, resume bool) (*StopResult, error) {
	current := sh.Current()
	if current == nil {
		return nil, ErrNotWorking
	}

	end := at.UTC()
	if end.Before(current.Start) {
		return nil, ErrEndsBeforeStart{Name: current.Name, Start: current.Start}
	}
	current.End = &end
	result := &StopResult{Stopped: current.Name}

	if !resume {
		return result, nil
	}

	suspended := sh.Pop()
	if suspended == nil {
		return result, nil
	}

	if _, err := start(sh, suspended.Name, at); err != nil {
		return nil, err
	}
	result.Resumed = suspended.Name
	result.Depth = sh.Depth()
	return result, nil
}

// Package sheet holds the work log document: the sessions a user has worked
// on, the stack of interrupted sessions, and the stores that persist them.
package sheet

import (
	"fmt"
	"time"
)

// InterruptMarker is appended to the name of a session started by an interrupt
const InterruptMarker = "<i>"

// Session is one interval of claimed work on a named task
type Session struct {
	Name  string
	Start time.Time
	// End is nil while the session is active
	End   *time.Time
	Notes []string
	Tags  TagSet
}

// Active reports whether the session has not been stopped yet
func (s *Session) Active() bool {
	return s.End == nil
}

// EndOr returns the end of the session, or now when it is still active
func (s *Session) EndOr(now time.Time) time.Time {
	if s.End == nil {
		return now
	}
	return *s.End
}

// Clone returns a deep copy of the session
func (s *Session) Clone() *Session {
	c := &Session{
		Name:  s.Name,
		Start: s.Start,
		Tags:  s.Tags.Clone(),
	}
	if s.End != nil {
		end := *s.End
		c.End = &end
	}
	if s.Notes != nil {
		c.Notes = append([]string{}, s.Notes...)
	}
	return c
}

// Sheet is the persisted aggregate of the work log and the interrupt stack.
// Work is in chronological start order and only its last entry may be open.
type Sheet struct {
	Work           []*Session `json:"work" yaml:"work"`
	InterruptStack []*Session `json:"interrupt_stack" yaml:"interrupt_stack"`
}

// New returns an empty sheet
func New() *Sheet {
	return &Sheet{
		Work:           []*Session{},
		InterruptStack: []*Session{},
	}
}

// normalize replaces nil slices so empty sheets encode as [] rather than null
func (sh *Sheet) normalize() {
	if sh.Work == nil {
		sh.Work = []*Session{}
	}
	if sh.InterruptStack == nil {
		sh.InterruptStack = []*Session{}
	}
}

// Last returns the most recently started session, or nil for an empty log
func (sh *Sheet) Last() *Session {
	if len(sh.Work) == 0 {
		return nil
	}
	return sh.Work[len(sh.Work)-1]
}

// Current returns the active session, or nil when nothing is being worked on
func (sh *Sheet) Current() *Session {
	if last := sh.Last(); last != nil && last.Active() {
		return last
	}
	return nil
}

// IsWorking reports whether a session is active
func (sh *Sheet) IsWorking() bool {
	return sh.Current() != nil
}

// Append adds a session to the end of the work log
func (sh *Sheet) Append(s *Session) {
	sh.Work = append(sh.Work, s)
}

// Push suspends a closed session onto the interrupt stack
func (sh *Sheet) Push(s *Session) {
	sh.InterruptStack = append(sh.InterruptStack, s)
}

// Pop removes and returns the top of the interrupt stack, or nil when empty
func (sh *Sheet) Pop() *Session {
	n := len(sh.InterruptStack)
	if n == 0 {
		return nil
	}
	top := sh.InterruptStack[n-1]
	sh.InterruptStack = sh.InterruptStack[:n-1]
	return top
}

// Depth returns the number of suspended sessions
func (sh *Sheet) Depth() int {
	return len(sh.InterruptStack)
}

// Sessions returns the work log followed by the interrupt stack
func (sh *Sheet) Sessions() []*Session {
	all := make([]*Session, 0, len(sh.Work)+len(sh.InterruptStack))
	all = append(all, sh.Work...)
	return append(all, sh.InterruptStack...)
}

// Validate checks the structural invariants of the sheet
func (sh *Sheet) Validate() error {
	for i, s := range sh.Work {
		if s == nil {
			return fmt.Errorf("work entry %d is empty", i)
		}
		if s.Name == "" {
			return fmt.Errorf("work entry %d has no name", i)
		}
		if s.Active() && i != len(sh.Work)-1 {
			return fmt.Errorf("work entry %d (%s) has no end but is not the last entry", i, s.Name)
		}
		if s.End != nil && s.End.Before(s.Start) {
			return fmt.Errorf("work entry %d (%s) ends before it starts", i, s.Name)
		}
	}
	for i, s := range sh.InterruptStack {
		if s == nil {
			return fmt.Errorf("interrupt stack entry %d is empty", i)
		}
		if s.Name == "" {
			return fmt.Errorf("interrupt stack entry %d has no name", i)
		}
		if s.Active() {
			return fmt.Errorf("interrupt stack entry %d (%s) has no end", i, s.Name)
		}
	}
	return nil
}

// Clone returns a deep copy of the sheet
func (sh *Sheet) Clone() *Sheet {
	c := &Sheet{
		Work:           make([]*Session, 0, len(sh.Work)),
		InterruptStack: make([]*Session, 0, len(sh.InterruptStack)),
	}
	for _, s := range sh.Work {
		c.Work = append(c.Work, s.Clone())
	}
	for _, s := range sh.InterruptStack {
		c.InterruptStack = append(c.InterruptStack, s.Clone())
	}
	return c
}

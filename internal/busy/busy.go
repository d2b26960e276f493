// Package busy provides scoped busy indicators. Begin hands out a release
// function; callers defer it so the indicator is cleared on every exit path.
package busy

import (
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/briandowns/spinner"
)

// Indicator signals that a long running operation is in progress
type Indicator interface {
	Begin(label string) (release func())
}

// Flag is an in-process busy flag. The last Begin or release wins, matching
// a single operator driving one bulk action at a time.
type Flag struct {
	busy     atomic.Bool
	mu       sync.RWMutex
	label    string
	onChange func(busy bool, label string)
}

// NewFlag creates a flag; onChange may be nil
func NewFlag(onChange func(busy bool, label string)) *Flag {
	return &Flag{onChange: onChange}
}

// Begin sets the flag and returns an idempotent release function
func (f *Flag) Begin(label string) func() {
	f.set(true, label)
	var once sync.Once
	return func() {
		once.Do(func() { f.set(false, "") })
	}
}

// Busy reports the current state
func (f *Flag) Busy() bool {
	return f.busy.Load()
}

// Label returns the label passed to the most recent Begin while busy
func (f *Flag) Label() string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.label
}

func (f *Flag) set(busy bool, label string) {
	f.mu.Lock()
	f.label = label
	f.mu.Unlock()
	f.busy.Store(busy)
	if f.onChange != nil {
		f.onChange(busy, label)
	}
}

// Spinner shows a terminal spinner while busy
type Spinner struct {
	w io.Writer
}

// NewSpinner creates a spinner indicator writing to w
func NewSpinner(w io.Writer) *Spinner {
	return &Spinner{w: w}
}

// Begin starts the spinner with label as suffix
func (s *Spinner) Begin(label string) func() {
	sp := spinner.New(spinner.CharSets[9], 100*time.Millisecond, spinner.WithWriter(s.w))
	sp.Suffix = " " + label
	sp.Start()
	var once sync.Once
	return func() {
		once.Do(sp.Stop)
	}
}

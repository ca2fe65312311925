package playback

import (
	"sync"
	"time"
)

// CompletionSignal reports that the segment it was armed for is over.
// Both advancement sources (a video surface's native media clock and
// the wall-clock timer used for still images) are expressed as
// completion signals so the sequencer's transition logic is identical
// regardless of source.
//
// Done is closed on natural completion and on Cancel, so a waiter is
// always released; the sequencer tells the two apart with its
// generation counter. Cancel and Complete are both idempotent.
type CompletionSignal interface {
	// Done is closed once the segment finished or the signal was
	// disarmed
	Done() <-chan struct{}

	// Cancel disarms the signal and releases any waiter
	Cancel()
}

// ManualSignal is a completion signal fired by its owner, typically a
// visual surface translating its native progress/ended events.
type ManualSignal struct {
	done chan struct{}
	once sync.Once
}

// NewManualSignal creates an unfired manual signal
func NewManualSignal() *ManualSignal {
	return &ManualSignal{done: make(chan struct{})}
}

// Complete fires the signal; only the first call has effect
func (s *ManualSignal) Complete() {
	s.once.Do(func() {
		close(s.done)
	})
}

// Done is closed once the segment finished or the signal was disarmed
func (s *ManualSignal) Done() <-chan struct{} {
	return s.done
}

// Cancel disarms the signal and releases any waiter
func (s *ManualSignal) Cancel() {
	s.once.Do(func() {
		close(s.done)
	})
}

// timerSignal completes after a fixed wall-clock duration. Used for
// image segments, which have no native progress signal.
type timerSignal struct {
	done  chan struct{}
	timer *time.Timer
	once  sync.Once
}

// NewTimerSignal arms a wall-clock completion signal
func NewTimerSignal(d time.Duration) CompletionSignal {
	s := &timerSignal{done: make(chan struct{})}
	s.timer = time.AfterFunc(d, func() {
		s.once.Do(func() {
			close(s.done)
		})
	})
	return s
}

// Done is closed once the timer elapsed or the signal was disarmed
func (s *timerSignal) Done() <-chan struct{} {
	return s.done
}

// Cancel stops the timer and releases any waiter
func (s *timerSignal) Cancel() {
	s.timer.Stop()
	s.once.Do(func() {
		close(s.done)
	})
}

package ui

import (
	"fyne.io/fyne/v2"
)

// loopScheduler holds functions until the application has started its event loop
// and then hands them to do. Once started, later functions go straight to do.
// It takes over the lifecycle's OnStarted hook.
type loopScheduler struct {
	do      func(func())
	started bool
	pending []func()
}

func newLoopScheduler(lifecycle fyne.Lifecycle, do func(func())) *loopScheduler {
	s := &loopScheduler{do: do}
	lifecycle.SetOnStarted(s.start)
	return s
}

// Schedule runs fn on a turn of the event loop after the current one
func (s *loopScheduler) Schedule(fn func()) {
	if s.started {
		s.do(fn)
		return
	}
	s.pending = append(s.pending, fn)
}

func (s *loopScheduler) start() {
	s.started = true

	pending := s.pending
	s.pending = nil
	for _, fn := range pending {
		s.do(fn)
	}
}

package state

import (
	"sync"
	"time"

	"github.com/bep/debounce"
)

// Scheduler keeps one pending trailing-edge callback per event source.
// Scheduling a source again replaces its pending callback.
type Scheduler struct {
	lock    sync.Mutex
	slots   map[string]*slot
	stopped bool
}

type slot struct {
	after     time.Duration
	debounced func(func())
	seq       uint64
	pending   bool
}

func CreateScheduler() *Scheduler {
	return &Scheduler{
		slots: make(map[string]*slot),
	}
}

func (s *Scheduler) Schedule(source string, after time.Duration, cb func()) {
	s.lock.Lock()
	defer s.lock.Unlock()

	if s.stopped {
		return
	}

	sl, ok := s.slots[source]

	if ok && sl.after != after {
		s.cancel(sl)
		ok = false
	}

	if !ok {
		sl = &slot{
			after:     after,
			debounced: debounce.New(after),
		}
		s.slots[source] = sl
	}

	sl.seq++
	sl.pending = true
	seq := sl.seq

	sl.debounced(func() {
		s.lock.Lock()

		if s.stopped || sl.seq != seq {
			s.lock.Unlock()
			return
		}

		sl.pending = false
		s.lock.Unlock()

		cb()
	})
}

func (s *Scheduler) Cancel(source string) {
	s.lock.Lock()
	defer s.lock.Unlock()

	if sl, ok := s.slots[source]; ok {
		s.cancel(sl)
	}
}

func (s *Scheduler) Pending(source string) bool {
	s.lock.Lock()
	defer s.lock.Unlock()

	sl, ok := s.slots[source]

	return ok && sl.pending
}

// Stop cancels every pending callback and ignores later schedules.
func (s *Scheduler) Stop() {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.stopped = true

	for _, sl := range s.slots {
		s.cancel(sl)
	}
}

func (s *Scheduler) cancel(sl *slot) {
	sl.seq++
	sl.pending = false
	sl.debounced(func() {})
}


package bee

// Scheduler runs one-shot callbacks after a number of simulation ticks.
// It replaces wall-clock timers so that runs stay deterministic and pausing
// freezes pending effects.
type Scheduler struct {
	now    int
	nextID int
	timers []timer
}

type timer struct {
	id  int
	due int
	fn  func()
}

// After schedules fn to run on the ticks-th call to Advance from now and
// returns an id for Cancel. ticks below 1 are treated as 1.
func (s *Scheduler) After(ticks int, fn func()) int {
	if ticks < 1 {
		ticks = 1
	}
	s.nextID++
	s.timers = append(s.timers, timer{id: s.nextID, due: s.now + ticks, fn: fn})
	return s.nextID
}

// Cancel drops a pending callback. Returns false if it already ran or never
// existed.
func (s *Scheduler) Cancel(id int) bool {
	for i, t := range s.timers {
		if t.id == id {
			s.timers = append(s.timers[:i], s.timers[i+1:]...)
			return true
		}
	}
	return false
}

// Remaining returns the ticks left before the callback runs, or 0 if it is
// not pending.
func (s *Scheduler) Remaining(id int) int {
	for _, t := range s.timers {
		if t.id == id {
			return t.due - s.now
		}
	}
	return 0
}

// Pending returns the number of scheduled callbacks.
func (s *Scheduler) Pending() int {
	return len(s.timers)
}

// Advance moves time forward by one tick and runs every due callback in
// scheduling order.
func (s *Scheduler) Advance() {
	s.now++

	var due []timer
	pending := s.timers[:0]
	for _, t := range s.timers {
		if t.due <= s.now {
			due = append(due, t)
		} else {
			pending = append(pending, t)
		}
	}
	s.timers = pending

	for _, t := range due {
		t.fn()
	}
}

// Reset drops every pending callback.
func (s *Scheduler) Reset() {
	s.now = 0
	s.timers = nil
}

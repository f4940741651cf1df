package lui

import (
	"cmp"
	"slices"
)

// Timer is a callback scheduled on a Main's clock. Timers fire during Loop,
// after event dispatch, at most once per Loop each.
type Timer struct {
	id       uint64
	due      float64
	interval float64
	repeat   bool
	stopped  bool
	fn       func()
}

// After schedules fn to run once, delay seconds of loop time from now.
func (m *Main) After(delay float64, fn func()) *Timer {
	return m.schedule(delay, 0, false, fn)
}

// Every schedules fn to run every interval seconds of loop time. An
// interval of zero runs fn on every Loop. Missed ticks are dropped.
func (m *Main) Every(interval float64, fn func()) *Timer {
	return m.schedule(interval, interval, true, fn)
}

func (m *Main) schedule(delay, interval float64, repeat bool, fn func()) *Timer {
	delay = max(delay, 0)
	m.nextID++
	t := &Timer{
		id:       m.nextID,
		due:      m.clock + delay,
		interval: max(interval, 0),
		repeat:   repeat,
		fn:       fn,
	}
	if fn == nil {
		t.stopped = true
		return t
	}
	m.timers = append(m.timers, t)
	return t
}

// Stop cancels the timer. It reports whether the timer was still pending.
func (t *Timer) Stop() bool {
	if t == nil || t.stopped {
		return false
	}
	t.stopped = true
	return true
}

// Active reports whether the timer will fire again.
func (t *Timer) Active() bool { return t != nil && !t.stopped }

func (m *Main) runTimers() {
	due := m.dueBuf[:0]
	for _, t := range m.timers {
		if !t.stopped && t.due <= m.clock {
			due = append(due, t)
		}
	}
	slices.SortStableFunc(due, func(a, b *Timer) int {
		if c := cmp.Compare(a.due, b.due); c != 0 {
			return c
		}
		return cmp.Compare(a.id, b.id)
	})
	for _, t := range due {
		if t.stopped || m.state == stateStopped {
			continue
		}
		if t.repeat {
			t.due += t.interval
			if t.due <= m.clock && t.interval > 0 {
				t.due = m.clock + t.interval
			}
		} else {
			t.stopped = true
		}
		m.rep.call("lui.Timer", t.fn)
	}
	clear(due)
	m.dueBuf = due[:0]

	live := m.timers[:0]
	for _, t := range m.timers {
		if !t.stopped {
			live = append(live, t)
		}
	}
	clear(m.timers[len(live):])
	m.timers = live
}

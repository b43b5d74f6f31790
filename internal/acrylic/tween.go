package acrylic

// tween moves a value linearly toward a target over a fixed duration.
// Starting a new tween from the current value replaces the running one.
type tween struct {
	from, to  float64
	duration  float64
	elapsed   float64
	finished  bool
	hasTarget bool
}

func (t *tween) value() float64 {
	if !t.hasTarget || t.finished || t.duration <= 0 {
		return t.to
	}
	k := t.elapsed / t.duration
	return t.from + (t.to-t.from)*k
}

func (t *tween) start(to, duration float64) {
	from := t.value()
	*t = tween{from: from, to: to, duration: duration, hasTarget: true}
	if duration <= 0 || from == to {
		t.finished = true
	}
}

// advance moves the tween forward by dt seconds and reports whether it is
// still running.
func (t *tween) advance(dt float64) bool {
	if t.finished || !t.hasTarget {
		return false
	}
	t.elapsed += dt
	if t.elapsed >= t.duration {
		t.elapsed = t.duration
		t.finished = true
		return false
	}
	return true
}

package gui

// repeater turns a held key into repeated presses: one on the initial press, then
// roughly one every rate seconds once the key has been down for delay seconds. It
// fires at most once per step.
type repeater struct {
	delay float64
	rate  float64
	held  float64
}

// step advances by dt seconds and reports whether a press fires.
func (r *repeater) step(justPressed, down bool, dt float64) bool {
	switch {
	case justPressed:
		r.held = 0
		return true
	case !down:
		r.held = 0
		return false
	}

	r.held += dt
	if r.held > r.delay {
		r.held -= r.rate
		return true
	}
	return false
}

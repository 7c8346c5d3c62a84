// Package splash models the landing-page countdown. The page shows a video
// with a countdown that redirects to the home page when it reaches zero; the
// countdown waits for the video and pauses while an admin is editing.
package splash

// State is one phase of the splash page lifecycle.
type State string

const (
	// StateLoading is the initial phase before the page has mounted.
	StateLoading State = "loading"
	// StateVideoPending waits for the background video to become playable.
	StateVideoPending State = "video-pending"
	// StateReadyCounting decrements the countdown once per tick.
	StateReadyCounting State = "ready-counting"
	// StatePaused holds the countdown while any pause cause is active.
	StatePaused State = "paused"
	// StateRedirecting is terminal: the countdown reached zero.
	StateRedirecting State = "redirecting"
)

// PauseCause identifies why the countdown is held. Any active cause forces
// Paused; the countdown resumes only when every cause is cleared.
type PauseCause string

const (
	CauseAdminMode  PauseCause = "admin_mode"
	CauseModalOpen  PauseCause = "modal_open"
	CauseEditorOpen PauseCause = "editor_open"
)

// Machine drives the splash countdown. It is not safe for concurrent use;
// each request builds its own machine from the splash config and session
// state.
type Machine struct {
	state     State
	remaining int
	causes    map[PauseCause]bool
	// resume is the state to return to when the last pause cause clears.
	resume State
}

// NewMachine starts a machine in Loading with the configured countdown.
// A non-positive countdown still passes through ReadyCounting and redirects
// on the first tick.
func NewMachine(countdownSeconds int) *Machine {
	return &Machine{
		state:     StateLoading,
		remaining: countdownSeconds,
		causes:    make(map[PauseCause]bool),
	}
}

// State returns the current state.
func (m *Machine) State() State { return m.state }

// Remaining returns the seconds left on the countdown.
func (m *Machine) Remaining() int { return m.remaining }

// Loaded moves Loading → VideoPending. No-op in any other state.
func (m *Machine) Loaded() {
	if m.state == StateLoading {
		m.state = StateVideoPending
	}
}

// VideoReady moves VideoPending → ReadyCounting. If the machine is paused
// when the video becomes ready, the countdown starts only after the pause
// causes clear.
func (m *Machine) VideoReady() {
	switch m.state {
	case StateVideoPending:
		m.state = StateReadyCounting
	case StatePaused:
		if m.resume == StateVideoPending || m.resume == StateLoading {
			m.resume = StateReadyCounting
		}
	}
}

// Tick advances the countdown by one second. Only ReadyCounting decrements;
// reaching zero transitions to Redirecting. Every other state ignores ticks,
// so a paused countdown resumes with the same remaining time.
func (m *Machine) Tick() {
	if m.state != StateReadyCounting {
		return
	}
	if m.remaining > 0 {
		m.remaining--
	}
	if m.remaining <= 0 {
		m.state = StateRedirecting
	}
}

// SetPause activates a pause cause. Any cause forces Paused regardless of
// remaining time; the pre-pause state is kept so Resume knows where to
// return. Redirecting is terminal and cannot be paused.
func (m *Machine) SetPause(cause PauseCause) {
	if m.state == StateRedirecting {
		return
	}
	if m.state != StatePaused {
		m.resume = m.state
		m.state = StatePaused
	}
	m.causes[cause] = true
}

// ClearPause deactivates a pause cause. When the last cause clears, the
// machine returns to the state it paused from, countdown intact.
func (m *Machine) ClearPause(cause PauseCause) {
	delete(m.causes, cause)
	if m.state == StatePaused && len(m.causes) == 0 {
		m.state = m.resume
	}
}

// Paused reports whether any pause cause is active.
func (m *Machine) Paused() bool { return m.state == StatePaused }

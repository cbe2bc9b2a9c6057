// Package animation provides the small visibility state machine chart
// subsystems (tooltips, branding) use to fade in and out.
package animation

import (
	"fmt"
	"time"
)

// Status represents the current state of a visibility transition.
//
// The status follows this state machine:
//
//	           Show()                    Show()/Finish()
//	Hidden ──────────────► Showing ──────────────────────► Shown
//	   ▲                                                     │
//	   │                    Hide()/Finish()        Hide()    │
//	   └──────────────────── Hiding ◄────────────────────────┘
//
// A zero-duration transition completes synchronously, skipping the
// transitional status entirely.
type Status int

const (
	// Hidden means the object is fully invisible.
	Hidden Status = iota
	// Hiding means a hide transition is in progress.
	Hiding
	// Showing means a show transition is in progress.
	Showing
	// Shown means the object is fully visible.
	Shown
)

// String returns a human-readable representation of the status.
func (s Status) String() string {
	switch s {
	case Hidden:
		return "hidden"
	case Hiding:
		return "hiding"
	case Showing:
		return "showing"
	case Shown:
		return "shown"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Visibility tracks the shown/hidden state of a visual object through timed
// transitions. Transitions with a nonzero duration stay in their
// transitional status until Finish is called by the event queue; callers in
// this core never block on them.
type Visibility struct {
	status          Status
	duration        time.Duration
	statusListeners map[int]func(Status)
	nextListenerID  int

	showCalls int
	hideCalls int
}

// NewVisibility creates a visibility machine in the given initial status.
func NewVisibility(initial Status) *Visibility {
	return &Visibility{
		status:          initial,
		statusListeners: make(map[int]func(Status)),
	}
}

// Status returns the current status.
func (v *Visibility) Status() Status { return v.status }

// IsHidden reports whether the object is fully hidden.
func (v *Visibility) IsHidden() bool { return v.status == Hidden }

// IsHiding reports whether a hide transition is in progress.
func (v *Visibility) IsHiding() bool { return v.status == Hiding }

// IsShown reports whether the object is fully visible.
func (v *Visibility) IsShown() bool { return v.status == Shown }

// Show starts a show transition of the given duration. A zero duration
// completes synchronously.
func (v *Visibility) Show(duration time.Duration) {
	v.showCalls++
	v.duration = duration
	if duration == 0 {
		v.setStatus(Shown)
		return
	}
	v.setStatus(Showing)
}

// Hide starts a hide transition of the given duration. A zero duration
// completes synchronously.
func (v *Visibility) Hide(duration time.Duration) {
	v.hideCalls++
	v.duration = duration
	if duration == 0 {
		v.setStatus(Hidden)
		return
	}
	v.setStatus(Hiding)
}

// Finish completes a pending transition. No-op when no transition is in
// progress. Real embeddings call this from the animation tick; tests call
// it directly.
func (v *Visibility) Finish() {
	switch v.status {
	case Showing:
		v.setStatus(Shown)
	case Hiding:
		v.setStatus(Hidden)
	}
}

// ShowCalls returns how many times Show has been invoked.
func (v *Visibility) ShowCalls() int { return v.showCalls }

// HideCalls returns how many times Hide has been invoked.
func (v *Visibility) HideCalls() int { return v.hideCalls }

// AddStatusListener registers a listener invoked on every status change.
// It returns an id for RemoveStatusListener.
func (v *Visibility) AddStatusListener(fn func(Status)) int {
	id := v.nextListenerID
	v.nextListenerID++
	v.statusListeners[id] = fn
	return id
}

// RemoveStatusListener removes a previously registered listener.
func (v *Visibility) RemoveStatusListener(id int) {
	delete(v.statusListeners, id)
}

func (v *Visibility) setStatus(status Status) {
	if v.status == status {
		return
	}
	v.status = status
	for _, fn := range v.statusListeners {
		fn(status)
	}
}

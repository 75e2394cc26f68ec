// Package state holds the UI's plain data types: the intro phase machine
// and the menu selection. Nothing here depends on the terminal runtime, so
// the whole package is testable with bare values.
package state

import (
	"fmt"
	"time"
)

// MaxIntroStep is the last numbered step of the intro sequence.
const MaxIntroStep = 6

// StepInterval is the minimum dwell time of a single intro step.
const StepInterval = 500 * time.Millisecond

// ReplayDelay is how long the idle screen sits still before the tail of the
// intro replays as a decorative pulse.
const ReplayDelay = 2 * time.Second

type phaseKind int

const (
	kindIntroStart phaseKind = iota
	kindIntroStep
	kindIntroIdle
	kindActive
)

// Phase is the current stage of the intro/animation sequence. Values are
// comparable; the step payload only carries meaning for intro steps.
type Phase struct {
	kind phaseKind
	step int
}

// IntroStart is the phase a fresh application starts in.
func IntroStart() Phase { return Phase{kind: kindIntroStart} }

// IntroStep returns the numbered intro phase for step k.
func IntroStep(k int) Phase { return Phase{kind: kindIntroStep, step: k} }

// IntroIdle is the fixed point the intro settles into.
func IntroIdle() Phase { return Phase{kind: kindIntroIdle} }

// Active is the interactive menu phase.
func Active() Phase { return Phase{kind: kindActive} }

// Step reports the intro step number, and whether the phase carries one.
func (p Phase) Step() (int, bool) {
	if p.kind != kindIntroStep {
		return 0, false
	}
	return p.step, true
}

// IsActive reports whether the menu owns the input stream.
func (p Phase) IsActive() bool { return p.kind == kindActive }

// IsIntroIdle reports whether the intro has settled on the idle screen.
func (p Phase) IsIntroIdle() bool { return p.kind == kindIntroIdle }

// Next yields the successor phase. The intro only moves forward; IntroIdle
// and Active are fixed points.
func (p Phase) Next() Phase {
	switch p.kind {
	case kindIntroStart:
		return IntroStep(0)
	case kindIntroStep:
		if p.step < MaxIntroStep {
			return IntroStep(p.step + 1)
		}
		return IntroIdle()
	default:
		return p
	}
}

func (p Phase) String() string {
	switch p.kind {
	case kindIntroStart:
		return "intro-start"
	case kindIntroStep:
		return fmt.Sprintf("intro-step:%d", p.step)
	case kindIntroIdle:
		return "intro-idle"
	default:
		return "active"
	}
}

// Machine advances the phase against a wall clock. The timestamps use ≥
// comparisons and are restamped on every transition.
type Machine struct {
	Phase     Phase
	Finalized bool
	LastAt    time.Time
}

// NewMachine returns a machine at IntroStart stamped with now.
func NewMachine(now time.Time) *Machine {
	return &Machine{Phase: IntroStart(), LastAt: now}
}

// Advance applies the tick rules at time now and reports whether anything
// changed. Reaching the idle fixed point sets Finalized; once Finalized,
// sitting on the idle screen for ReplayDelay loops back to the tail of the
// intro so the pulse repeats until a key arrives.
func (m *Machine) Advance(now time.Time) bool {
	changed := false
	if !m.Finalized && now.Sub(m.LastAt) >= StepInterval {
		next := m.Phase.Next()
		if next == m.Phase {
			m.Finalized = true
		}
		m.Phase = next
		m.LastAt = now
		changed = true
	}
	if m.Finalized && m.Phase.IsIntroIdle() && now.Sub(m.LastAt) >= ReplayDelay {
		m.Phase = IntroStep(MaxIntroStep - 1)
		m.Finalized = false
		m.LastAt = now
		changed = true
	}
	return changed
}

// Skip jumps straight to the menu. Any key during the intro lands here.
func (m *Machine) Skip() {
	m.Finalized = true
	m.Phase = Active()
}

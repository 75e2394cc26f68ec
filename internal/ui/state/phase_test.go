package state

import (
	"testing"
	"time"
)

func TestNextReachesIdleFixedPoint(t *testing.T) {
	for start := 0; start <= MaxIntroStep; start++ {
		p := IntroStep(start)
		for i := 0; i < 2*MaxIntroStep; i++ {
			p = p.Next()
		}
		if !p.IsIntroIdle() {
			t.Fatalf("starting at step %d, expected intro-idle, got %s", start, p)
		}
		if p.Next() != p {
			t.Fatalf("intro-idle is not a fixed point: next is %s", p.Next())
		}
	}
}

func TestNextFromStart(t *testing.T) {
	p := IntroStart().Next()
	step, ok := p.Step()
	if !ok || step != 0 {
		t.Fatalf("expected intro-step:0 after start, got %s", p)
	}
}

func TestActiveIsFixedPoint(t *testing.T) {
	if Active().Next() != Active() {
		t.Fatalf("active phase must not advance")
	}
}

func TestAdvanceWalksIntroOnSpacedTicks(t *testing.T) {
	now := time.Unix(0, 0)
	m := NewMachine(now)

	// 7 spaced ticks: start -> step 0..6.
	for i := 0; i <= MaxIntroStep; i++ {
		now = now.Add(StepInterval)
		if !m.Advance(now) {
			t.Fatalf("tick %d: expected a transition", i)
		}
		step, ok := m.Phase.Step()
		if !ok || step != i {
			t.Fatalf("tick %d: expected intro-step:%d, got %s", i, i, m.Phase)
		}
	}

	// One more tick lands on idle, a further one finalizes.
	now = now.Add(StepInterval)
	m.Advance(now)
	if !m.Phase.IsIntroIdle() {
		t.Fatalf("expected intro-idle, got %s", m.Phase)
	}
	if m.Finalized {
		t.Fatalf("should not finalize on the tick that reaches idle")
	}
	now = now.Add(StepInterval)
	m.Advance(now)
	if !m.Finalized {
		t.Fatalf("expected finalized after the idle fixed point repeats")
	}
}

func TestAdvanceIgnoresFastTicks(t *testing.T) {
	now := time.Unix(0, 0)
	m := NewMachine(now)
	if m.Advance(now.Add(StepInterval - time.Millisecond)) {
		t.Fatalf("tick under the step interval must not transition")
	}
	if !m.Advance(now.Add(StepInterval)) {
		t.Fatalf("elapsed == interval must transition (comparison is >=)")
	}
}

func TestIdleReplayLoopsBackToTail(t *testing.T) {
	now := time.Unix(0, 0)
	m := &Machine{Phase: IntroIdle(), Finalized: true, LastAt: now}

	if m.Advance(now.Add(ReplayDelay - time.Millisecond)) {
		t.Fatalf("replay must wait the full delay")
	}
	if !m.Advance(now.Add(ReplayDelay)) {
		t.Fatalf("expected replay transition at the delay boundary")
	}
	step, ok := m.Phase.Step()
	if !ok || step != MaxIntroStep-1 {
		t.Fatalf("expected intro-step:%d, got %s", MaxIntroStep-1, m.Phase)
	}
	if m.Finalized {
		t.Fatalf("replay must clear the finalized flag")
	}
}

func TestReplayNeverFiresOnceActive(t *testing.T) {
	now := time.Unix(0, 0)
	m := &Machine{Phase: Active(), Finalized: true, LastAt: now}
	if m.Advance(now.Add(time.Hour)) {
		t.Fatalf("active phase must not loop back into the intro")
	}
	if !m.Phase.IsActive() {
		t.Fatalf("phase regressed to %s", m.Phase)
	}
}

func TestSkipJumpsToActive(t *testing.T) {
	m := NewMachine(time.Unix(0, 0))
	m.Skip()
	if !m.Phase.IsActive() || !m.Finalized {
		t.Fatalf("skip must finalize and activate, got %s finalized=%v", m.Phase, m.Finalized)
	}
}

package snapshot

import (
	"fmt"
	"time"

	"github.com/vovakirdan/button-smasher/internal/core"
	"github.com/vovakirdan/button-smasher/internal/games/smasher"
)

// maxDemoTicks bounds how long Stage waits for a run to end.
const maxDemoTicks = 60 * 120

// Stage drives m from the menu into phase target by issuing the inputs a
// player would, stepping at the given tick rate. During play it hits every
// cue it can, so snapshots of the playing phase show a score. Returns the
// machine time reached.
func Stage(m *smasher.Machine, target smasher.Phase, tickRate int) (time.Duration, error) {
	if tickRate <= 0 {
		tickRate = 60
	}
	tick := time.Second / time.Duration(tickRate)
	var now time.Duration

	step := func(events ...core.Event) {
		now += tick
		m.Step(now, events)
	}
	wait := func(d time.Duration) {
		end := now + d
		for now < end {
			step()
		}
	}

	switch target {
	case smasher.PhaseMenu:
		wait(time.Second)
		return now, nil
	case smasher.PhaseCredits:
		step(core.ActionEvent(core.ActionCredits))
		wait(time.Second)
		return now, nil
	case smasher.PhaseDifficultySelect:
		step(core.ActionEvent(core.ActionStart))
		wait(time.Second)
		return now, nil
	}

	step(core.ActionEvent(core.ActionStart))
	wait(300 * time.Millisecond)
	step(core.ActionEvent(core.ActionChooseNormal))

	switch target {
	case smasher.PhaseCountdown:
		wait(600 * time.Millisecond)
		return now, nil
	case smasher.PhasePlaying:
		for i := 0; m.Phase() != smasher.PhasePlaying && i < maxDemoTicks; i++ {
			step()
		}
		for i := 0; i < 8*tickRate && m.Phase() == smasher.PhasePlaying; i++ {
			step(hitsFor(m)...)
		}
		if m.Phase() != smasher.PhasePlaying {
			return now, fmt.Errorf("snapshot: run ended while staging %s", target)
		}
		return now, nil
	case smasher.PhaseGameOver:
		for i := 0; m.Phase() != smasher.PhaseGameOver && i < maxDemoTicks; i++ {
			step()
		}
		if m.Phase() != smasher.PhaseGameOver {
			return now, fmt.Errorf("snapshot: run did not end within %d ticks", maxDemoTicks)
		}
		wait(200 * time.Millisecond)
		return now, nil
	}
	return now, fmt.Errorf("snapshot: unknown phase %d", target)
}

// hitsFor returns a press for every lane holding a cue inside the hit zone.
func hitsFor(m *smasher.Machine) []core.Event {
	var events []core.Event
	pressed := [core.LaneCount]bool{}
	row := float64(m.Config().Playfield.ReceptorY())
	for _, s := range m.Snapshot().Cues {
		lane, ok := laneByName(s.Lane)
		if !ok || pressed[lane] {
			continue
		}
		if s.Y >= row-10 && s.Y <= row+10 {
			pressed[lane] = true
			events = append(events, core.LaneEvent(lane))
		}
	}
	return events
}

func laneByName(name string) (core.Lane, bool) {
	for l := core.Lane(0); l < core.LaneCount; l++ {
		if l.String() == name {
			return l, true
		}
	}
	return 0, false
}

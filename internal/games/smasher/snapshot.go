package smasher

// CueView is the public view of one cue.
type CueView struct {
	Lane string  `json:"lane"`
	Y    float64 `json:"y"`
}

// Snapshot is an immutable copy of the observable game state.
type Snapshot struct {
	Phase      string    `json:"phase"`
	Difficulty string    `json:"difficulty"`
	Score      int       `json:"score"`
	Health     int       `json:"health"`
	Highscore  int       `json:"highscore"`
	Countdown  string    `json:"countdown,omitempty"`
	Phrase     string    `json:"phrase,omitempty"`
	Cues       []CueView `json:"cues"`
	ElapsedMS  int64     `json:"elapsed_ms"`
}

// Snapshot copies the current state. The result shares nothing with the
// machine and may be handed to other goroutines.
func (m *Machine) Snapshot() Snapshot {
	s := Snapshot{
		Phase:      m.phase.String(),
		Difficulty: m.session.Difficulty.String(),
		Score:      m.session.Score,
		Health:     m.session.Health,
		Highscore:  m.record.Get(m.session.Difficulty),
		Countdown:  m.Countdown(),
		Cues:       make([]CueView, 0, len(m.engine.Cues())),
		ElapsedMS:  m.now.Milliseconds(),
	}
	if m.phase == PhaseGameOver {
		s.Phrase = m.phrase
	}
	for _, c := range m.engine.Cues() {
		s.Cues = append(s.Cues, CueView{Lane: c.Lane.String(), Y: c.Y})
	}
	return s
}

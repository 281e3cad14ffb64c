package climb

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick         uint64
	Phase        Phase
	Score        int
	HighScore    int
	TimerMax     float64
	TimerRemain  float64
	ScrollAnim   float64
	NextSide     Side
	StreakCount  int
	HoldCount    int
	TopHoldY     float64
	ClimberState ClimberState
	Facing       Side
	Lean         Lean
	Theme        Theme
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	if g.session == nil {
		return Snapshot{Tick: g.tick}
	}
	s := g.session
	_, streak, _ := s.Ladder().Streak()

	return Snapshot{
		Tick:         g.tick,
		Phase:        s.Phase(),
		Score:        s.Score(),
		HighScore:    s.HighScore(),
		TimerMax:     s.Timer().Max,
		TimerRemain:  s.Timer().Remain,
		ScrollAnim:   s.ScrollRemaining(),
		NextSide:     s.Ladder().NextSide(),
		StreakCount:  streak,
		HoldCount:    s.Ladder().Len(),
		TopHoldY:     s.Ladder().topY(),
		ClimberState: s.Climber().State(),
		Facing:       s.Climber().Facing(),
		Lean:         s.Climber().Lean(),
		Theme:        s.Background().Theme(),
	}
}

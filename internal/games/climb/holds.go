package climb

import "math"

// Hold is a climbable point on the wall.
// Y is wall-relative: larger values are lower on screen.
type Hold struct {
	Side Side
	Y    float64
	Type HoldType
}

// LadderConfig describes the hold ladder geometry.
type LadderConfig struct {
	StepHeight  float64 // Vertical distance between hold levels
	Bottom      float64 // Wall Y of the level-0 hold
	SeedHolds   int     // Holds placed by Reset
	StreakLimit int     // Same-side requirements before a switch is forced
	CullSteps   float64 // Holds lower than Bottom+CullSteps*StepHeight are removed
	CoverSteps  float64 // The ladder must reach Bottom-CoverSteps*StepHeight
}

// Ladder owns the climbable holds and decides which side comes next.
// It is the only authority on whether an input is correct.
type Ladder struct {
	cfg   LadderConfig
	rng   Source
	holds []Hold // insertion order, not spatial order

	nextSide    Side
	lastSide    Side
	hasLast     bool
	streakSide  Side
	hasStreak   bool
	streakCount int
}

// NewLadder creates a ladder and seeds it with Reset.
func NewLadder(cfg LadderConfig, rng Source) *Ladder {
	l := &Ladder{
		cfg:   cfg,
		rng:   rng,
		holds: make([]Hold, 0, cfg.SeedHolds+4),
	}
	l.Reset()
	return l
}

// Reset clears the wall, picks a fresh starting side and seeds the holds.
// The bottom hold is always on the starting side.
func (l *Ladder) Reset() {
	l.holds = l.holds[:0]
	l.nextSide = RandomSide(l.rng)
	l.hasLast = false
	l.hasStreak = false
	l.streakCount = 0
	l.seed()
}

func (l *Ladder) seed() {
	for i := 0; i < l.cfg.SeedHolds; i++ {
		l.spawnHold(i)
	}
}

// spawnHold places a hold levelIndex steps above the bottom.
func (l *Ladder) spawnHold(levelIndex int) {
	side := l.nextSide
	if levelIndex != 0 {
		side = RandomSide(l.rng)
	}
	l.holds = append(l.holds, Hold{
		Side: side,
		Y:    l.cfg.Bottom - float64(levelIndex)*l.cfg.StepHeight,
		Type: RandomHoldType(l.rng),
	})
}

// CheckInput reports whether reaching toward side is the correct move.
func (l *Ladder) CheckInput(side Side) bool {
	return side == l.nextSide
}

// OnSuccessfulClimb advances the ladder by one level after a correct input.
func (l *Ladder) OnSuccessfulClimb() {
	l.lastSide = l.nextSide
	l.hasLast = true

	if l.hasStreak && l.streakCount >= l.cfg.StreakLimit {
		l.nextSide = l.streakSide.Opposite()
		l.streakCount = 0
		l.streakSide = l.nextSide
	} else {
		l.nextSide = RandomSide(l.rng)
	}

	// The count compares lastSide with nextSide, not a true run length.
	if l.lastSide == l.nextSide {
		if l.hasStreak && l.streakSide == l.nextSide {
			l.streakCount++
		} else {
			l.streakCount = 1
		}
	} else {
		l.streakCount = 1
	}
	l.streakSide = l.nextSide
	l.hasStreak = true

	for i := range l.holds {
		l.holds[i].Y += l.cfg.StepHeight
	}

	l.holds = append(l.holds, Hold{
		Side: l.nextSide,
		Y:    l.topY() - l.cfg.StepHeight,
		Type: RandomHoldType(l.rng),
	})

	l.cull()
}

// Scroll translates every hold down by dy and restores coverage of the
// visible span: holds that fall off the bottom are dropped and filler holds
// are added above the topmost one until the span is reached again.
func (l *Ladder) Scroll(dy float64) {
	for i := range l.holds {
		l.holds[i].Y += dy
	}
	l.cull()
	l.refill()
}

// SetBottom moves the ladder's anchor, carrying the holds with it.
func (l *Ladder) SetBottom(bottom float64) {
	dy := bottom - l.cfg.Bottom
	l.cfg.Bottom = bottom
	for i := range l.holds {
		l.holds[i].Y += dy
	}
}

// cull drops holds that are too far below the bottom to be seen.
func (l *Ladder) cull() {
	limit := l.cullLimit()
	kept := l.holds[:0]
	for _, h := range l.holds {
		if h.Y <= limit {
			kept = append(kept, h)
		}
	}
	l.holds = kept
}

// refill tops up the ladder after external motion so the visible span
// never runs out of holds.
func (l *Ladder) refill() {
	if len(l.holds) == 0 {
		l.seed()
		return
	}
	if l.cfg.StepHeight <= 0 {
		return
	}
	coverTop := l.coverTop()
	for top := l.topY(); top > coverTop; top = l.topY() {
		l.holds = append(l.holds, Hold{
			Side: RandomSide(l.rng),
			Y:    top - l.cfg.StepHeight,
			Type: RandomHoldType(l.rng),
		})
	}
}

// topY returns the smallest Y among the holds, +Inf when there are none.
func (l *Ladder) topY() float64 {
	top := math.Inf(1)
	for _, h := range l.holds {
		top = math.Min(top, h.Y)
	}
	return top
}

func (l *Ladder) cullLimit() float64 {
	return l.cfg.Bottom + l.cfg.CullSteps*l.cfg.StepHeight
}

func (l *Ladder) coverTop() float64 {
	return l.cfg.Bottom - l.cfg.CoverSteps*l.cfg.StepHeight
}

// Covered reports whether at least one hold lies inside the visible span.
func (l *Ladder) Covered() bool {
	lo, hi := l.coverTop(), l.cullLimit()
	for _, h := range l.holds {
		if h.Y >= lo && h.Y <= hi {
			return true
		}
	}
	return false
}

// Holds returns a copy of the current holds in insertion order.
func (l *Ladder) Holds() []Hold {
	out := make([]Hold, len(l.holds))
	copy(out, l.holds)
	return out
}

// Len returns the number of holds on the wall.
func (l *Ladder) Len() int {
	return len(l.holds)
}

// NextSide returns the side the climber must reach to next.
func (l *Ladder) NextSide() Side {
	return l.nextSide
}

// LastSide returns the previously required side; ok is false before the
// first climb.
func (l *Ladder) LastSide() (side Side, ok bool) {
	return l.lastSide, l.hasLast
}

// Streak returns the streak side and count; ok is false before the first climb.
func (l *Ladder) Streak() (side Side, count int, ok bool) {
	return l.streakSide, l.streakCount, l.hasStreak
}

// Bottom returns the wall Y of the level-0 hold.
func (l *Ladder) Bottom() float64 {
	return l.cfg.Bottom
}

// StepHeight returns the distance between hold levels.
func (l *Ladder) StepHeight() float64 {
	return l.cfg.StepHeight
}

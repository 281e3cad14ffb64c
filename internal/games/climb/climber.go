package climb

// ClimberState is the climber's animation state.
type ClimberState uint8

const (
	StateIdle ClimberState = iota
	StateReach
	StatePull
	StateFall // terminal
)

// String returns the lowercase state name.
func (s ClimberState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateReach:
		return "reach"
	case StatePull:
		return "pull"
	case StateFall:
		return "fall"
	default:
		return "unknown"
	}
}

// Lean is the climber's sideways lean.
type Lean int8

const (
	LeanLeft   Lean = -1
	LeanCenter Lean = 0
	LeanRight  Lean = 1
)

// LeanToward returns the lean for a reach toward side.
func LeanToward(side Side) Lean {
	if side == Left {
		return LeanLeft
	}
	return LeanRight
}

// ClimberTiming holds the animation durations in milliseconds.
type ClimberTiming struct {
	Reach float64
	Pull  float64
	Fall  float64 // visual reference only, Fall never ends
}

// DefaultClimberTiming returns the standard reach/pull/fall durations.
func DefaultClimberTiming() ClimberTiming {
	return ClimberTiming{Reach: 140, Pull: 180, Fall: 600}
}

// Climber is the figure on the wall. Its transitions are triggered by the
// session; Update only advances time-based transitions. It never moves
// vertically on its own, the scroll tween moves the world instead.
type Climber struct {
	X, Y float64 // base position in wall coordinates

	timing    ClimberTiming
	state     ClimberState
	stateTime float64
	facing    Side
	lean      Lean
}

// NewClimber creates an idle climber facing right.
func NewClimber(timing ClimberTiming) *Climber {
	c := &Climber{timing: timing}
	c.Reset()
	return c
}

// Reset returns the climber to a fresh idle pose.
func (c *Climber) Reset() {
	c.state = StateIdle
	c.stateTime = 0
	c.facing = Right
	c.lean = LeanCenter
}

// SetBasePosition places the climber on the wall.
func (c *Climber) SetBasePosition(x, y float64) {
	c.X = x
	c.Y = y
}

// TriggerReach starts a reach toward side. Ignored once fallen.
func (c *Climber) TriggerReach(side Side) {
	if c.state == StateFall {
		return
	}
	c.facing = side
	c.lean = LeanToward(side)
	c.enter(StateReach)
}

// TriggerPullUp skips the rest of the reach and starts pulling up.
func (c *Climber) TriggerPullUp() {
	if c.state == StateFall {
		return
	}
	c.enter(StatePull)
}

// TriggerFall drops the climber. There is no way back.
func (c *Climber) TriggerFall() {
	c.enter(StateFall)
}

// Update advances the state clock by dt milliseconds and applies the
// automatic reach -> pull -> idle transitions.
func (c *Climber) Update(dt float64) {
	c.stateTime += dt

	switch c.state {
	case StateReach:
		if c.stateTime >= c.timing.Reach {
			c.enter(StatePull)
		}
	case StatePull:
		if c.stateTime >= c.timing.Pull {
			c.enter(StateIdle)
			c.lean = LeanCenter
		}
	}
}

func (c *Climber) enter(s ClimberState) {
	c.state = s
	c.stateTime = 0
}

// State returns the current animation state.
func (c *Climber) State() ClimberState { return c.state }

// StateTime returns milliseconds spent in the current state.
func (c *Climber) StateTime() float64 { return c.stateTime }

// Facing returns the side of the last reach.
func (c *Climber) Facing() Side { return c.facing }

// Lean returns the current sideways lean.
func (c *Climber) Lean() Lean { return c.lean }

// Timing returns the animation durations.
func (c *Climber) Timing() ClimberTiming { return c.timing }

// ReachProgress returns how far the arm is extended, from 0 to 1.
func (c *Climber) ReachProgress() float64 {
	if c.state != StateReach || c.timing.Reach <= 0 {
		return 0
	}
	if p := c.stateTime / c.timing.Reach; p < 1 {
		return p
	}
	return 1
}

// FallProgress returns how far through the fall animation the climber is.
func (c *Climber) FallProgress() float64 {
	if c.state != StateFall || c.timing.Fall <= 0 {
		return 0
	}
	if p := c.stateTime / c.timing.Fall; p < 1 {
		return p
	}
	return 1
}

package climb

import "math/rand"

// Side is the side of the wall a hold sits on and the direction of a reach.
type Side uint8

const (
	Left Side = iota
	Right
)

// String returns the lowercase side name.
func (s Side) String() string {
	if s == Left {
		return "left"
	}
	return "right"
}

// Opposite returns the other side.
func (s Side) Opposite() Side {
	if s == Left {
		return Right
	}
	return Left
}

// HoldType is the visual shape of a hold. It has no effect on gameplay.
type HoldType uint8

const (
	HoldSmall HoldType = iota
	HoldMedium
	HoldLarge
	HoldRound

	holdTypeCount = 4
)

// String returns the lowercase hold type name.
func (t HoldType) String() string {
	switch t {
	case HoldSmall:
		return "small"
	case HoldMedium:
		return "medium"
	case HoldLarge:
		return "large"
	case HoldRound:
		return "round"
	default:
		return "unknown"
	}
}

// Source is the randomness the ladder draws from.
// *rand.Rand satisfies it; tests substitute fixed sequences.
type Source interface {
	// Intn returns a value in [0, n).
	Intn(n int) int
}

// NewSource returns a seeded pseudo-random source.
func NewSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// RandomSide picks Left or Right with equal probability.
func RandomSide(src Source) Side {
	if src.Intn(2) == 0 {
		return Left
	}
	return Right
}

// RandomHoldType picks one of the hold types uniformly.
func RandomHoldType(src Source) HoldType {
	return HoldType(src.Intn(holdTypeCount))
}

package analysis

import "fmt"

const (
	// MoverThreshold is the displacement above which a periodic pattern is
	// treated as travelling.
	MoverThreshold = 2.0

	// GrowthFactor is the final/initial population ratio above which an
	// aperiodic run is treated as unbounded growth.
	GrowthFactor = 1.5
)

// BehaviorKind enumerates the classification outcomes.
type BehaviorKind int

const (
	Extinction BehaviorKind = iota
	StillLife
	Spaceship
	Oscillator
	Growth
	Chaotic
)

var kindNames = [...]string{"extinction", "still-life", "spaceship", "oscillator", "growth", "chaotic"}

func (k BehaviorKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("BehaviorKind(%d)", int(k))
	}
	return kindNames[k]
}

// Behavior is a classification result. Period is set for Spaceship and
// Oscillator.
type Behavior struct {
	Kind   BehaviorKind
	Period int
}

func (b Behavior) String() string {
	switch b.Kind {
	case Extinction:
		return "Extinction"
	case StillLife:
		return "Still Life (Stable)"
	case Spaceship:
		return fmt.Sprintf("Spaceship / Mover (Period %d)", b.Period)
	case Oscillator:
		return fmt.Sprintf("Oscillator (Period %d)", b.Period)
	case Growth:
		return "Unbounded Growth / Gun"
	default:
		return "Chaotic / Complex Stabilization"
	}
}

// MarshalText encodes the behavior as its label.
func (b Behavior) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// Classify labels a run. Rules are checked in order and the first match
// wins: extinction, still life, mover, oscillator, growth, chaotic.
func Classify(period int, displacement float64, startPop, endPop int) Behavior {
	switch {
	case endPop == 0:
		return Behavior{Kind: Extinction}
	case period == 1:
		return Behavior{Kind: StillLife, Period: 1}
	case period > 1 && displacement > MoverThreshold:
		return Behavior{Kind: Spaceship, Period: period}
	case period > 1:
		return Behavior{Kind: Oscillator, Period: period}
	case float64(endPop) > float64(startPop)*GrowthFactor:
		return Behavior{Kind: Growth}
	default:
		return Behavior{Kind: Chaotic}
	}
}

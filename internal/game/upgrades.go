package game

import "math/rand"

// UpgradeKind names one of the purchasable upgrades.
type UpgradeKind string

const (
	UpgradeEfficiency UpgradeKind = "efficiency"
	UpgradeVision     UpgradeKind = "vision"
	UpgradeSpeed      UpgradeKind = "speed"
)

var upgradeKinds = []UpgradeKind{UpgradeEfficiency, UpgradeVision, UpgradeSpeed}

// Description is the one-line effect shown with an offer.
func (k UpgradeKind) Description() string {
	switch k {
	case UpgradeEfficiency:
		return "Reduces moves needed"
	case UpgradeVision:
		return "Highlights edges"
	case UpgradeSpeed:
		return "Faster rotations"
	default:
		return ""
	}
}

// Upgrades holds the level of each upgrade.
type Upgrades struct {
	Efficiency int `json:"efficiency"`
	Vision     int `json:"vision"`
	Speed      int `json:"speed"`
}

func (u *Upgrades) apply(k UpgradeKind) {
	switch k {
	case UpgradeEfficiency:
		u.Efficiency++
	case UpgradeVision:
		u.Vision++
	case UpgradeSpeed:
		u.Speed++
	}
}

// Game constants.
const (
	MinMoveCost      = 0.1
	efficiencyFactor = 0.1
	speedFactor      = 0.2
	VisionHighlight  = 0.2
	HintHighlight    = 0.3
)

// MoveCost is how much one move adds to the move counter. Efficiency
// discounts it down to MinMoveCost.
func (u Upgrades) MoveCost() float64 {
	cost := 1 - efficiencyFactor*float64(u.Efficiency)
	if cost < MinMoveCost {
		return MinMoveCost
	}
	return cost
}

// RotationSpeed is the animation speed multiplier.
func (u Upgrades) RotationSpeed() float64 {
	return 1 + speedFactor*float64(u.Speed)
}

func randomUpgrade(r *rand.Rand) UpgradeKind {
	return upgradeKinds[r.Intn(len(upgradeKinds))]
}

package game

import "fmt"

// Weights is the evaluation feature vector. Any weight may be zeroed to
// drop that feature from the score.
type Weights struct {
	TerritoryCount       float64
	StoneAdvantage       float64
	GrowthPotential      float64
	ExpansionOpportunity float64
	CenterControl        float64
	AttackOpportunity    float64
	ThreatPenalty        float64
	Connectivity         float64
	MergePotential       float64
}

func DefaultWeights() Weights {
	return Weights{
		TerritoryCount:       1.0,
		StoneAdvantage:       0.5,
		GrowthPotential:      0.3,
		ExpansionOpportunity: 0.4,
		CenterControl:        0.6,
		AttackOpportunity:    0.4,
		ThreatPenalty:        -0.5,
		Connectivity:         0.3,
		MergePotential:       0.2,
	}
}

// Config holds the immutable rules of a match. It is constructed once,
// validated at construction, and passed by value into every pure function
// that needs it.
type Config struct {
	BoardSize     int
	TurnLimit     int
	ExpansionProb float64 // per-stone success chance when claiming a neutral cell
	CombatProb    float64 // per-roll hit chance during combat
	MaxStones     int     // cap per territory; growth and reinforcement discard the excess
	SetupStones   int     // stones each player places before play begins
	AttackMargin  int     // required stone surplus before the generator proposes an attack
	Weights       Weights
}

func DefaultConfig() Config {
	return Config{
		BoardSize:     5,
		TurnLimit:     20,
		ExpansionProb: 0.5,
		CombatProb:    0.5,
		MaxStones:     10,
		SetupStones:   8,
		AttackMargin:  1,
		Weights:       DefaultWeights(),
	}
}

// Validate rejects out-of-range settings outright. Values are never
// clamped: a bad config is a caller bug.
func (c Config) Validate() error {
	if c.BoardSize < 2 {
		return fmt.Errorf("%w: board size %d, want >= 2", ErrInvalidConfig, c.BoardSize)
	}
	if c.TurnLimit < 1 {
		return fmt.Errorf("%w: turn limit %d, want >= 1", ErrInvalidConfig, c.TurnLimit)
	}
	if c.ExpansionProb < 0 || c.ExpansionProb > 1 {
		return fmt.Errorf("%w: expansion probability %v outside [0,1]", ErrInvalidConfig, c.ExpansionProb)
	}
	if c.CombatProb < 0 || c.CombatProb > 1 {
		return fmt.Errorf("%w: combat probability %v outside [0,1]", ErrInvalidConfig, c.CombatProb)
	}
	if c.MaxStones < 1 {
		return fmt.Errorf("%w: max stones %d, want >= 1", ErrInvalidConfig, c.MaxStones)
	}
	if c.SetupStones < 1 {
		return fmt.Errorf("%w: setup stones %d, want >= 1", ErrInvalidConfig, c.SetupStones)
	}
	if c.AttackMargin < 0 {
		return fmt.Errorf("%w: attack margin %d, want >= 0", ErrInvalidConfig, c.AttackMargin)
	}
	for _, player := range []Owner{Player1, Player2} {
		if capacity := len(placementCells(player, c)) * c.MaxStones; c.SetupStones > capacity {
			return fmt.Errorf("%w: %d setup stones exceed %s's half capacity %d",
				ErrInvalidConfig, c.SetupStones, player, capacity)
		}
	}
	return nil
}

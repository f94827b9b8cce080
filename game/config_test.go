package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"board too small", func(c *Config) { c.BoardSize = 1 }},
		{"zero turn limit", func(c *Config) { c.TurnLimit = 0 }},
		{"negative expansion probability", func(c *Config) { c.ExpansionProb = -0.1 }},
		{"expansion probability above one", func(c *Config) { c.ExpansionProb = 1.5 }},
		{"negative combat probability", func(c *Config) { c.CombatProb = -1 }},
		{"combat probability above one", func(c *Config) { c.CombatProb = 2 }},
		{"zero max stones", func(c *Config) { c.MaxStones = 0 }},
		{"zero setup stones", func(c *Config) { c.SetupStones = 0 }},
		{"negative attack margin", func(c *Config) { c.AttackMargin = -1 }},
		{"setup stones exceed half capacity", func(c *Config) {
			c.BoardSize = 2
			c.MaxStones = 1
			c.SetupStones = 3
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

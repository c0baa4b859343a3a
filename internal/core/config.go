package core

// RuntimeConfig contains settings supplied by the platform layer rather than
// by the game config file: tick rate and RNG seed. Frontends size their
// screens from the terminal they own.
type RuntimeConfig struct {
	TickRate int   // Frontend ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic wall placement
}

// TickRateOrDefault returns the tick rate, falling back to 60 for
// non-positive values.
func (c RuntimeConfig) TickRateOrDefault() int {
	if c.TickRate <= 0 {
		return 60
	}
	return c.TickRate
}

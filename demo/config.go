package demo

import (
	"errors"
	"fmt"
)

// Config controls a demo session.
type Config struct {
	// Iterations is the number of random values inserted per round. Zero
	// means the session asks for it at the start of every round, which
	// requires Prompt.
	Iterations int
	// MaxValue is the upper bound (inclusive) of the inserted values; the
	// lower bound is 0.
	MaxValue int
	// Seed seeds the random source. Zero picks a random seed.
	Seed uint64
	// Color enables colored section headings.
	Color bool
	// Prompt makes the session ask whether to run another round.
	Prompt bool
}

func DefaultConfig() Config {
	return Config{
		Iterations: 20,
		MaxValue:   100000,
	}
}

func (c Config) Validate() error {
	if c.Iterations < 0 {
		return fmt.Errorf("iterations must not be negative, got %d", c.Iterations)
	}
	if c.Iterations == 0 && !c.Prompt {
		return errors.New("iterations must be given when not prompting")
	}
	if c.MaxValue < 0 {
		return fmt.Errorf("max value must not be negative, got %d", c.MaxValue)
	}
	return nil
}

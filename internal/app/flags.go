package app

import "flag"

// Config represents the command-line parameters for the viewer.
type Config struct {
	Width  int
	Height int
	Scale  int
	TPS    int
	Seed   int64
	Random bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Width: 64, Height: 64, Scale: 8, TPS: 10, Seed: 42, Random: true}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "grid height in cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "simulation ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for randomized boards")
	fs.BoolVar(&c.Random, "random", c.Random, "start from a randomized board")
}

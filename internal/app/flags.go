package app

import (
	"flag"
	"strings"
	"time"

	"voxlife/internal/automaton"
)

// KVList collects repeatable key=value flags.
type KVList []string

func (l *KVList) String() string { return strings.Join(*l, ",") }

// Set appends one key=value pair.
func (l *KVList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

// Map returns the pairs as a map; later keys win and malformed entries are
// skipped.
func (l KVList) Map() map[string]string {
	out := make(map[string]string, len(l))
	for _, kv := range l {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}
		out[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	return out
}

// Config represents the command-line parameters shared by the front ends.
type Config struct {
	Size   int
	StepMS int
	MeshMS int
	Seed   int64
	Width  int
	Height int
	Serve  string
	Sets   KVList
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Size: 20, StepMS: 250, MeshMS: 250, Width: 960, Height: 720}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Size, "size", c.Size, "grid side length")
	fs.IntVar(&c.StepMS, "step-ms", c.StepMS, "milliseconds between automaton steps")
	fs.IntVar(&c.MeshMS, "mesh-ms", c.MeshMS, "milliseconds between mesh rebuilds")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for reset (0 keeps the configured seed)")
	fs.IntVar(&c.Width, "width", c.Width, "window width")
	fs.IntVar(&c.Height, "height", c.Height, "window height")
	fs.StringVar(&c.Serve, "serve", c.Serve, "address to stream meshes over websocket, e.g. :8080")
	fs.Var(&c.Sets, "set", "automaton override in key=value form (repeatable)")
}

// Automaton builds the automaton configuration. -set overrides win over
// -size and -seed.
func (c *Config) Automaton() automaton.Config {
	cfg := automaton.DefaultConfig()
	if c.Size > 0 {
		cfg.Width, cfg.Height, cfg.Depth = c.Size, c.Size, c.Size
	}
	if c.Seed != 0 {
		cfg.Seed = c.Seed
	}
	cfg.Apply(c.Sets.Map())
	return cfg
}

// StepInterval returns the automaton cadence.
func (c *Config) StepInterval() time.Duration { return time.Duration(c.StepMS) * time.Millisecond }

// MeshInterval returns the extraction cadence.
func (c *Config) MeshInterval() time.Duration { return time.Duration(c.MeshMS) * time.Millisecond }

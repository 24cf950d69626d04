package citygrid

import (
	"image"
)

const (
	// DefaultMaxHistory is how many actions we remember for undo
	DefaultMaxHistory = 50
)

// Config holds settings for a City.
// Anything left zero is filled in from DefaultConfig() by New().
type Config struct {
	// Bounds of the play field, Min inclusive & Max exclusive
	// (as with any image.Rectangle). An empty rect means the default field.
	Bounds image.Rectangle

	// MaxHistory is the number of actions kept for undo.
	// Oldest actions are forgotten first.
	MaxHistory int

	// Renderer is told to build / dispose meshes as cells change.
	// Defaults to NopRenderer.
	Renderer Renderer

	// Logger receives informational messages (skipped records on load etc).
	// Defaults to discarding everything.
	Logger Logger
}

// DefaultConfig returns a 98x98 play field centred on the origin.
// That is, x & z run from -49 to 48 inclusive.
func DefaultConfig() *Config {
	return &Config{
		Bounds:     image.Rect(-49, -49, 49, 49),
		MaxHistory: DefaultMaxHistory,
		Renderer:   NopRenderer{},
		Logger:     nopLogger{},
	}
}

// withDefaults returns a copy of c with unset fields filled in
func (c *Config) withDefaults() *Config {
	def := DefaultConfig()
	if c == nil {
		return def
	}

	out := *c
	if out.Bounds.Empty() {
		out.Bounds = def.Bounds
	}
	if out.MaxHistory <= 0 {
		out.MaxHistory = def.MaxHistory
	}
	if out.Renderer == nil {
		out.Renderer = def.Renderer
	}
	if out.Logger == nil {
		out.Logger = def.Logger
	}
	return &out
}

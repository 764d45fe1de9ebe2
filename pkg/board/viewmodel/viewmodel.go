// Package viewmodel projects the beat collection into renderable board
// columns so UI layers can reason about layout and color without touching
// domain plumbing.
package viewmodel

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/scriptloft/beatboard/pkg/screenplay"
)

// DefaultPalette is the fixed beat color cycle, assigned by column position.
var DefaultPalette = []string{
	"#E06C75", // red
	"#E5A15C", // orange
	"#E5C07B", // yellow
	"#98C379", // green
	"#56B6C2", // teal
	"#61AFEF", // blue
	"#C678DD", // purple
	"#BE5046", // rust
}

// Column pairs a beat with its display color and sanitized scene list. It is
// derived, never persisted, and recomputed from the store on every change.
type Column struct {
	Beat   screenplay.Beat
	Index  int
	Color  string
	Scenes []screenplay.Scene
}

// Label returns a human-friendly identifier for the column.
func (c Column) Label() string {
	return c.Beat.Label()
}

// SceneCount returns the number of scenes in the column.
func (c Column) SceneCount() int {
	return len(c.Scenes)
}

// Option customises BuildColumns behaviour.
type Option func(*buildOptions)

// WithPalette overrides the default color cycle.
func WithPalette(palette []string) Option {
	return func(opts *buildOptions) {
		if len(palette) == 0 {
			return
		}
		opts.palette = palette
	}
}

type buildOptions struct {
	palette []string
}

// BuildColumns derives one Column per beat, preserving input order. The
// palette index is the column position mod the palette size. Scene lists are
// guaranteed non-nil regardless of input shape.
func BuildColumns(beats []screenplay.Beat, opts ...Option) []Column {
	if len(beats) == 0 {
		return nil
	}
	config := &buildOptions{palette: DefaultPalette}
	for _, opt := range opts {
		opt(config)
	}

	columns := make([]Column, 0, len(beats))
	for i, beat := range beats {
		scenes := []screenplay.Scene(beat.Scenes)
		if scenes == nil {
			scenes = []screenplay.Scene{}
		}
		columns = append(columns, Column{
			Beat:   beat,
			Index:  i,
			Color:  config.palette[i%len(config.palette)],
			Scenes: scenes,
		})
	}
	return columns
}

// ColumnByBeat returns the column owning the given beat id.
func ColumnByBeat(columns []Column, beatID string) (Column, bool) {
	for _, col := range columns {
		if col.Beat.ID == beatID {
			return col, true
		}
	}
	return Column{}, false
}

// Dim returns the color darkened toward the terminal background, used for
// unfocused column frames. Falls back to the input when it does not parse.
func Dim(hex string) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return hex
	}
	h, s, l := c.Hsl()
	return colorful.Hsl(h, s*0.55, l*0.55).Hex()
}

// Flash returns the color lightened for the transient highlight state.
func Flash(hex string) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return hex
	}
	h, s, l := c.Hsl()
	return colorful.Hsl(h, s, minFloat(1, l*1.35)).Hex()
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

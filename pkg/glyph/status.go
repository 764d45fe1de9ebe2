// Package glyph maps scene statuses to the symbols used by the board cards
// and the CLI printers.
package glyph

import (
	"fmt"

	"github.com/scriptloft/beatboard/pkg/screenplay"
)

const (
	escape        = "\x1b"
	resetCode     = 0
	boldCode      = 1
	underlineCode = 4
)

// Bold wraps the string in ANSI bold codes.
func Bold(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, boldCode, in, escape, resetCode)
}

// Underline wraps the string in ANSI underline codes.
func Underline(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, underlineCode, in, escape, resetCode)
}

// Glyph pairs a scene status with its display symbol.
type Glyph struct {
	Status  screenplay.Status
	Symbol  string
	Meaning string
	Aliases []string
}

func (g Glyph) String() string {
	return fmt.Sprintf("%s %s", g.Symbol, g.Meaning)
}

// DefaultGlyphs returns the status symbol table in display order.
func DefaultGlyphs() []Glyph {
	return []Glyph{
		{
			Status:  screenplay.StatusDraft,
			Symbol:  "○",
			Meaning: "draft",
			Aliases: []string{"draft", "d", "wip"},
		},
		{
			Status:  screenplay.StatusReview,
			Symbol:  "◐",
			Meaning: "in review",
			Aliases: []string{"review", "r", "notes"},
		},
		{
			Status:  screenplay.StatusFinal,
			Symbol:  "●",
			Meaning: "final",
			Aliases: []string{"final", "f", "locked"},
		},
	}
}

// ForStatus returns the glyph for the given status, falling back to draft.
func ForStatus(s screenplay.Status) Glyph {
	for _, g := range DefaultGlyphs() {
		if g.Status == s {
			return g
		}
	}
	return DefaultGlyphs()[0]
}

// Symbol is a shorthand for ForStatus(s).Symbol.
func Symbol(s screenplay.Status) string {
	return ForStatus(s).Symbol
}

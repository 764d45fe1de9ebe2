package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/scriptloft/beatboard/pkg/glyph"
	"github.com/scriptloft/beatboard/pkg/screenplay"
)

type PrettyPrint struct {
	ShowID bool
}

var (
	spacing = strings.Repeat(" ", len("scn_0f8b99dca1  "))
)

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" scene")
	default:
		_, _ = c.Println(" scenes")
	}
}

// Scenes renders one beat's scene list as card rows.
func (pp *PrettyPrint) Scenes(scenes ...screenplay.Scene) {
	if len(scenes) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = f.Print(spacing)
		}
		_, _ = f.Print(" none\n\n")
		return
	}

	t := color.New()
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)

	for _, s := range scenes {
		if pp.ShowID {
			_, _ = y.Print(s.ID)
			pad := len(spacing) - len(s.ID)
			if pad > 0 {
				_, _ = y.Print(strings.Repeat(" ", pad))
			}
		}
		_, _ = t.Printf("%s %s\n", glyph.Symbol(s.Status), s.Label())
	}
	_, _ = t.Println("")
}

// Board renders every beat in order with its scenes.
func (pp *PrettyPrint) Board(beats ...screenplay.Beat) {
	for _, b := range beats {
		pp.TitleWithCount(b.Title, len(b.Scenes))
		pp.Scenes(b.Scenes...)
	}
}

// BeatTable lists beats one row each, in the shared tabular format.
func (pp *PrettyPrint) BeatTable(beats ...screenplay.Beat) {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(glyph.Bold("Pos"), glyph.Bold("Beat"), glyph.Bold("Scenes"))
	for _, b := range beats {
		row := []interface{}{b.Position, b.Title, len(b.Scenes)}
		if pp.ShowID {
			row = append(row, b.ID)
		}
		tbl.AddRow(row...)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// StatusKey prints the scene status legend.
func (pp *PrettyPrint) StatusKey() {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(glyph.Bold("Symbol"), glyph.Bold("Status"), glyph.Bold("Aliases"))
	for _, g := range glyph.DefaultGlyphs() {
		tbl.AddRow(g.Symbol, g.Meaning, strings.Join(g.Aliases, ", "))
	}
	_, _ = fmt.Fprintln(color.Output, glyph.Bold(glyph.Underline("\nScene status")))
	_, _ = fmt.Fprintln(color.Output, tbl)
}

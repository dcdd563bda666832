package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/arcanaland/cardsearch/internal/card"
	"github.com/arcanaland/cardsearch/internal/search"
)

// Terminal writes search output as colored text. Statuses are printed as
// they change; results are printed when appended.
type Terminal struct {
	Out   io.Writer
	Width int

	last search.StatusKind
}

// NewTerminal returns a Terminal writing to out, wrapped to the width of
// stdout when it is a terminal
func NewTerminal(out io.Writer) *Terminal {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		width = 80 // Default if we can't get terminal width
	}
	return &Terminal{Out: out, Width: width}
}

// LastStatus returns the kind of the most recent status
func (t *Terminal) LastStatus() search.StatusKind {
	return t.last
}

func (t *Terminal) SetStatus(message string, kind search.StatusKind) {
	t.last = kind
	fmt.Fprintln(t.Out, statusColor(kind).Sprint(message))
}

// ClearResults is a no-op; printed lines cannot be taken back
func (t *Terminal) ClearResults() {}

func (t *Terminal) AppendResults(cards []card.Card) {
	for _, c := range cards {
		t.writeCard(c)
	}
}

func (t *Terminal) writeCard(c card.Card) {
	label := color.New(color.FgCyan)
	value := color.New(color.FgHiWhite)
	name := color.New(color.FgHiWhite, color.Bold)

	fmt.Fprintln(t.Out)
	for i, line := range WrapText(fallback(c.Name, "Unknown card"), t.Width-4) {
		if i == 0 {
			fmt.Fprintf(t.Out, "%s %s\n", name.Sprint(line), color.New(color.FgHiBlack).Sprintf("[%s]", c.Source))
			continue
		}
		fmt.Fprintln(t.Out, name.Sprint(line))
	}

	fmt.Fprintln(t.Out, "  "+value.Sprint(fallback(c.Type, "Type unavailable")))
	fmt.Fprintf(t.Out, "  %s%s | %s%s\n",
		label.Sprint("Mana: "), value.Sprint(fallback(c.ManaCost, "N/A")),
		label.Sprint("Set: "), value.Sprint(fallback(c.SetName, "N/A")))
	fmt.Fprintf(t.Out, "  %s%s\n", label.Sprint("Rarity: "), value.Sprint(fallback(c.Rarity, "N/A")))
	if c.Image == "" {
		fmt.Fprintln(t.Out, "  "+color.New(color.FgHiBlack).Sprint("[No image]"))
	}
	if c.URL != "" {
		fmt.Fprintln(t.Out, "  "+color.New(color.FgBlue, color.Underline).Sprint(c.URL))
	}
}

func statusColor(kind search.StatusKind) *color.Color {
	switch kind {
	case search.StatusWarning:
		return color.New(color.FgYellow)
	case search.StatusSuccess:
		return color.New(color.FgGreen)
	case search.StatusError:
		return color.New(color.FgRed, color.Bold)
	default:
		return color.New(color.FgCyan)
	}
}

// WrapText wraps text to a specified width
func WrapText(text string, width int) []string {
	if width < 10 {
		width = 40
	}

	var result []string
	var currentLine string
	words := strings.Fields(text)

	if len(words) == 0 {
		return []string{""}
	}

	for _, word := range words {
		if len(currentLine) == 0 {
			currentLine = word
		} else if len(currentLine)+1+len(word) <= width {
			currentLine += " " + word
		} else {
			result = append(result, currentLine)
			currentLine = word
		}
	}

	if currentLine != "" {
		result = append(result, currentLine)
	}

	return result
}

package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcanaland/cardsearch/internal/ansiart"
	"github.com/arcanaland/cardsearch/internal/card"
	"github.com/arcanaland/cardsearch/internal/render"
	"github.com/arcanaland/cardsearch/internal/search"
)

var showCmd = &cobra.Command{
	Use:   "show [query...]",
	Short: "Display the first matching card with ANSI art",
	Long: `Show searches Scryfall and displays the first matching card with its
artwork rendered as ANSI terminal art. Cards without a real image are shown
next to an empty "No image" frame.

Examples:
  cardsearch show lightning bolt
  cardsearch show --width 30 '!"Delver of Secrets"'`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()

		// Collect results quietly, then print the first card ourselves
		page := render.NewPage("")
		search.NewForm(client, page).Submit(cmd.Context(), strings.Join(args, " "))
		if page.StatusKind != search.StatusSuccess {
			render.NewTerminal(out).SetStatus(page.StatusMessage, page.StatusKind)
			if page.StatusKind == search.StatusError {
				return ErrReported
			}
			return nil
		}

		c := page.Cards[0]

		width, _ := cmd.Flags().GetInt("width")
		if width < 10 {
			width = 10
		}
		var art string
		if c.Image != "" {
			img, err := ansiart.Fetch(cmd.Context(), client.HTTPClient, c.Image)
			if err != nil {
				logger.Warn("could not load card image", "url", c.Image, "error", err)
			} else {
				art = ansiart.Render(img, width, width*7/10)
			}
		}
		if art == "" {
			art = placeholderArt(width)
		}

		displayCard(out, c, art, len(page.Cards))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(showCmd)

	showCmd.Flags().IntP("width", "w", 40, "Width of the card art in columns")
}

// placeholderArt draws an empty frame labelled "No image"
func placeholderArt(width int) string {
	if width < 10 {
		width = 10
	}
	height := width * 7 / 10
	label := "No image"

	var b strings.Builder
	b.WriteString("┌" + strings.Repeat("─", width-2) + "┐\n")
	for i := 1; i < height-1; i++ {
		inner := strings.Repeat(" ", width-2)
		if i == height/2 {
			pad := (width - 2 - len(label)) / 2
			inner = strings.Repeat(" ", pad) + label + strings.Repeat(" ", width-2-pad-len(label))
		}
		b.WriteString("│" + inner + "│\n")
	}
	b.WriteString("└" + strings.Repeat("─", width-2) + "┘\n")
	return b.String()
}

// displayCard prints the art on the left and the card details on the right
func displayCard(w io.Writer, c card.Card, art string, total int) {
	artLines := strings.Split(strings.TrimSuffix(art, "\n"), "\n")
	maxArtWidth := 0
	for _, line := range artLines {
		if w := len([]rune(ansiart.StripANSI(line))); w > maxArtWidth {
			maxArtWidth = w
		}
	}

	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		width = 80
	}

	spacing := 4
	infoStartCol := maxArtWidth + spacing
	infoWidth := width - infoStartCol - 2
	if infoWidth < 20 {
		infoWidth = 20
	}

	label := colorize.New(colorize.FgCyan).SprintFunc()
	value := colorize.New(colorize.FgHiWhite).SprintFunc()

	var infoLines []string
	for i, line := range render.WrapText(orDefault(c.Name, "Unknown card"), infoWidth-6) {
		if i == 0 {
			infoLines = append(infoLines, label("Card: ")+value(line))
		} else {
			infoLines = append(infoLines, "      "+value(line))
		}
	}
	for i, line := range render.WrapText(orDefault(c.Type, "Type unavailable"), infoWidth-6) {
		if i == 0 {
			infoLines = append(infoLines, label("Type: ")+value(line))
		} else {
			infoLines = append(infoLines, "      "+value(line))
		}
	}
	infoLines = append(infoLines,
		label("Mana: ")+value(orDefault(c.ManaCost, "N/A")),
		label("Set:  ")+value(orDefault(c.SetName, "N/A")),
		label("Rarity: ")+value(orDefault(c.Rarity, "N/A")),
		label("Source: ")+value(c.Source),
	)
	if c.URL != "" {
		infoLines = append(infoLines, "", colorize.New(colorize.FgBlue, colorize.Underline).Sprint(c.URL))
	}
	if total > 1 {
		infoLines = append(infoLines, "", colorize.HiBlackString("%d more matching cards; use 'cardsearch search' to list them.", total-1))
	}

	fmt.Fprintln(w)

	maxLines := max(len(artLines), len(infoLines))
	for i := 0; i < maxLines; i++ {
		fmt.Fprint(w, "  ")
		if i < len(artLines) {
			fmt.Fprint(w, artLines[i])
			visibleWidth := len([]rune(ansiart.StripANSI(artLines[i])))
			fmt.Fprint(w, strings.Repeat(" ", infoStartCol-visibleWidth))
		} else {
			fmt.Fprint(w, strings.Repeat(" ", infoStartCol))
		}

		if i < len(infoLines) {
			fmt.Fprint(w, infoLines[i])
		}

		fmt.Fprintln(w)
	}

	fmt.Fprintln(w)
}

func orDefault(value, def string) string {
	if value == "" {
		return def
	}
	return value
}

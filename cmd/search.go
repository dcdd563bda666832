package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/arcanaland/cardsearch/internal/render"
	"github.com/arcanaland/cardsearch/internal/search"
)

var searchCmd = &cobra.Command{
	Use:   "search [query...]",
	Short: "Search for cards and list them",
	Long: `Search sends the query to Scryfall and prints one entry per card,
keeping only the first printing of each card name within a set.

Examples:
  cardsearch search lightning bolt
  cardsearch search 't:goblin c:r cmc<=2'`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		term := render.NewTerminal(cmd.OutOrStdout())
		search.NewForm(client, term).Submit(cmd.Context(), strings.Join(args, " "))

		if term.LastStatus() == search.StatusError {
			return ErrReported
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(searchCmd)
}

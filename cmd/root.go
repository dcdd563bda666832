package cmd

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/arcanaland/cardsearch/internal/config"
	"github.com/arcanaland/cardsearch/internal/logging"
	"github.com/arcanaland/cardsearch/internal/scryfall"
)

// ErrReported is returned when a failure has already been shown to the user
var ErrReported = errors.New("search failed")

var (
	cfg    *config.Config
	logger *slog.Logger
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "cardsearch",
	Short: "Search Magic: The Gathering cards on Scryfall",
	Long: `Cardsearch queries the Scryfall card search API, drops duplicate printings
and shows the results in your terminal or as a web page.

Queries use Scryfall's search syntax, e.g. 'lightning bolt' or 't:goblin c:r'.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.LoadConfig()
		if err != nil {
			return err
		}

		levelName := cfg.LogLevel
		if cmd.Flags().Changed("log-level") {
			levelName, _ = cmd.Flags().GetString("log-level")
		}
		level, err := logging.ParseLevel(levelName)
		if err != nil {
			return err
		}
		logger = logging.New(level)
		return nil
	},
}

func init() {
	RootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}

// newClient builds a Scryfall client from the loaded config
func newClient() (*scryfall.Client, error) {
	timeout, err := cfg.RequestTimeout()
	if err != nil {
		return nil, err
	}

	return scryfall.NewClient(
		scryfall.WithBaseURL(cfg.Endpoint),
		scryfall.WithUserAgent(cfg.UserAgent),
		scryfall.WithHTTPClient(&http.Client{Timeout: timeout}),
		scryfall.WithLogger(logger),
	), nil
}

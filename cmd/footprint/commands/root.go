package commands

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"footprint/internal/app"
	"footprint/internal/climatiq"
	"footprint/internal/compare"
	"footprint/internal/config"
	"footprint/internal/env"
)

var (
	outputFormat string
	inputFile    string
	inputData    string

	client     *climatiq.Client
	comparator *compare.Comparator
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "footprint",
		Short:        "Carbon footprint estimates from the Climatiq api",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(outputFormat); err != nil {
				return err
			}

			// stdout carries the rendered result only
			app.SetupLogger(cmd.ErrOrStderr(), zerolog.InfoLevel)
			env.LoadEnv()
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			zerolog.SetGlobalLevel(cfg.LogLevel)

			client, err = climatiq.NewClient(cfg.BaseURL, cfg.APIKey,
				climatiq.WithTimeout(cfg.Timeout),
				climatiq.WithDataVersion(cfg.DataVersion),
				climatiq.WithLogger(log.Logger),
			)
			if err != nil {
				return err
			}
			comparator = compare.New(client)
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&outputFormat, "output", "o", formatJSON, "output format, json or yaml")
	root.PersistentFlags().StringVarP(&inputFile, "file", "f", "", "read the request body from a file, - for stdin")
	root.PersistentFlags().StringVarP(&inputData, "data", "d", "", "inline request body as json")

	root.AddCommand(estimateCmd(), searchCmd(), factorCmd(), regionsCmd(), labelsCmd(), compareCmd())
	return root
}

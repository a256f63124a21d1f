package main

import (
	"os"

	"github.com/jsvensson/wordhue"
	"github.com/jsvensson/wordhue/internal/config"
	"github.com/jsvensson/wordhue/internal/lsp"
	"github.com/spf13/cobra"
)

var (
	flagConfig  string
	flagVerbose int
	version     = "dev"
)

var rootCmd = &cobra.Command{
	Use:     "wordhue-lsp",
	Short:   "Language server that colors the words of open documents",
	Version: version,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Default()
		if flagConfig != "" {
			var err error
			if cfg, err = config.Load(flagConfig); err != nil {
				return err
			}
		}

		gen, err := wordhue.New(cfg)
		if err != nil {
			return err
		}
		return lsp.NewServer(gen, version).Run(flagVerbose)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "path to HCL config file")
	rootCmd.Flags().CountVarP(&flagVerbose, "verbose", "v", "increase log verbosity (repeatable)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

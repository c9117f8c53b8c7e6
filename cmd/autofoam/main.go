// autofoam post-processes surface-mesh simulation output: STL bounding
// boxes, scalar field thresholds and deviations on .vtp documents, and
// Rosin-Rammler droplet size distributions.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Faultbox/autofoam/internal/config"
	"github.com/Faultbox/autofoam/internal/logger"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// app carries state shared by the subcommands once the root command has
// loaded the configuration.
type app struct {
	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "autofoam",
		Short:         "Post-processing tools for spray and CFD surface output",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
				return err
			}
			logger.Sugar.Debugf("config: %+v", *cfg)
			a.cfg = cfg
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logger.Sync()
		},
	}
	root.PersistentFlags().AddFlagSet(config.Flags())

	root.AddCommand(
		a.newBBoxCmd(),
		a.newThresholdCmd(),
		a.newDeviationCmd(),
		a.newDropletPDFCmd(),
		a.newVTTCmd(),
		a.newFieldsCmd(),
		a.newConfigCmd(),
	)
	return root
}

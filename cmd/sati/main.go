package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shivam2408/Self-Mediation-App/internal/bootstrap"
	"github.com/shivam2408/Self-Mediation-App/internal/platform/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var dataDir string

	root := &cobra.Command{
		Use:           "sati",
		Short:         "A meditation timer that tracks the gaps between thoughts",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := config.New(dataDir)
			if err != nil {
				return err
			}
			app, err := bootstrap.New(cfg)
			if err != nil {
				return err
			}
			return bootstrap.RunTUI(app)
		},
	}
	root.PersistentFlags().StringVar(&dataDir, "data", "", "data directory (default: user config dir)")

	return root
}

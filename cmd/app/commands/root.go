package commands

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"FrontendMastery/internal/config"
	"FrontendMastery/internal/logger"
)

var (
	cfg config.Config
	log *slog.Logger
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "app",
		Short:         "Frontend Mastery cheatsheet landing page",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load()
			if err != nil {
				return err
			}
			log = logger.New(os.Stdout, cfg.InstanceName, cfg.LogLevel)
			logger.Install(log)
			return nil
		},
	}
	root.AddCommand(serveCmd(), renderCmd())
	return root
}

func Execute() error {
	return newRootCmd().Execute()
}

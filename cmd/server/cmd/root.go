package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slog"

	"futuremail/internal/app/server/config"
	"futuremail/internal/utils/logger"
)

var (
	cfg *config.Config
	log *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "futuremail",
	Short: "FutureMail - time capsule messages delivered on a future date",
	Long: `FutureMail lets users write messages to their future selves or friends.
Capsules stay locked until their reveal date; once unlocked, the owner
gets an email and other users can read public capsules and comment.`,
	PersistentPreRun: setup,
	SilenceUsage:     true,
	SilenceErrors:    true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func setup(_ *cobra.Command, _ []string) {
	cfg = config.MustLoad()
	log = logger.New(cfg.Env)
}

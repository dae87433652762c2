package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"futuremail/internal/domain/notifier"
	"futuremail/internal/infrastructure/email"
	"futuremail/internal/infrastructure/storage/postgres"
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Run one unlock sweep and exit",
	Long: `Finds capsules past their reveal date that have not been notified,
emails their owners, and marks them notified. The serve command runs the
same sweep on a cron schedule; this command exists for manual catch-up
runs and external schedulers.`,
	RunE: runSweep,
}

func init() {
	rootCmd.AddCommand(sweepCmd)
}

func runSweep(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	storage, err := postgres.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("init storage: %w", err)
	}
	defer storage.Close()

	mailer, err := email.NewSMTPMailer(cfg.SMTP.Host, cfg.SMTP.Port,
		cfg.SMTP.Username, cfg.SMTP.Password, cfg.SMTP.From,
		cfg.Server.DashboardURL, log)
	if err != nil {
		return fmt.Errorf("init mailer: %w", err)
	}

	sweeper := notifier.NewService(
		postgres.NewCapsuleRepository(storage.Pool(), log),
		postgres.NewUserRepository(storage.Pool(), log),
		mailer, log)

	res, err := sweeper.Sweep(ctx, time.Now())
	if err != nil {
		return fmt.Errorf("sweep: %w", err)
	}

	color.Green("Notified: %d", res.Notified)
	if res.Skipped > 0 {
		color.Yellow("Skipped:  %d (missing owners)", res.Skipped)
	}
	if res.Failed > 0 {
		color.Red("Failed:   %d", res.Failed)
	}

	return nil
}

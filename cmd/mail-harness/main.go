package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/avibiton/waltz/internal/adapters/secondary/smtp"
	"github.com/avibiton/waltz/internal/config"
	"github.com/avibiton/waltz/internal/logging"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "mail-harness",
		Short: "Send a test email through the configured SMTP relay",
		Long:  `mail-harness sends a canned test email to the configured test recipient, verifying the mail settings end to end.`,
		RunE:  run,
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logging.Apply(cfg.Logger)

	mailer := smtp.NewMailer(cfg.Mail)

	recipient := cfg.Mail.TestRecipient
	log.Infof("sending test email to %s", recipient)

	if err := mailer.SendEmail("test", "this is a body", []string{recipient}); err != nil {
		return err
	}

	log.Info("test email sent")
	return nil
}

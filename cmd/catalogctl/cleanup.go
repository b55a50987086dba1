package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/centralring-backend/internal/adapter/postgres/otpcode"
	"github.com/heartmarshall/centralring-backend/internal/config"
)

func newCleanupOTPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cleanup-otp",
		Short: "Delete expired one-time codes",
		Long: `Deletes expired one-time codes from the postgres OTP store. The redis
backend expires codes on its own, so the command does nothing there.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := openEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.Close()

			if e.cfg.OTPStore.Backend == config.OTPBackendRedis {
				fmt.Fprintln(cmd.OutOrStdout(), "redis backend expires codes itself; nothing to do")
				return nil
			}

			now := time.Now().UTC()
			deleted, err := otpcode.New(e.pool).DeleteExpired(cmd.Context(), now)
			if err != nil {
				return fmt.Errorf("delete expired codes: %w", err)
			}

			e.logger.Info("expired otp codes deleted", slog.Int64("deleted", deleted), slog.Time("now", now))
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %d expired codes\n", deleted)
			return nil
		},
	}
}

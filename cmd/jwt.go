package main

import (
	"context"
	"fmt"
	"time"

	"urs/internal/auth"
	"urs/internal/config"
	"urs/pkg/domain"
	"urs/pkg/logger"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// JWTCommand constructs the 'jwt' subcommand that generates a signed HS256
// token for a given subject (user ID) and TTL using the configured secret.
// Handy for local testing and ops without going through the auth provider.
func JWTCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jwt",
		Short: "Generates JWT token for given user ID",
		Run: func(cmd *cobra.Command, args []string) {
			subject, _ := cmd.Flags().GetString("subject")
			email, _ := cmd.Flags().GetString("email")
			TTL, _ := cmd.Flags().GetDuration("ttl")

			id, err := uuid.Parse(subject)
			if err != nil {
				logger.Fatal(context.Background(), "subject must be a user ID", zap.Error(err))
			}

			svc := auth.New(nil, auth.NewOptions(cfg))
			signed, err := svc.MintToken(domain.UserID(id), email, TTL)
			if err != nil {
				logger.Fatal(context.Background(), "could not sign JWT", zap.Error(err))
			}

			fmt.Println(signed) //nolint: forbidigo
		},
	}

	cmd.Flags().String("subject", "", "JWT subject (user ID)")
	cmd.Flags().String("email", "", "Optional email claim")
	cmd.Flags().Duration("ttl", 24*time.Hour, "Token TTL (e.g., 30s, 15m, 1h)")
	_ = cmd.MarkFlagRequired("subject")

	return cmd
}

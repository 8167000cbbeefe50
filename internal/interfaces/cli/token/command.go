package token

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"ticketboard/internal/infrastructure/auth"
	"ticketboard/internal/infrastructure/config"
	"ticketboard/internal/shared/authorization"
)

var (
	env    string
	userID uint
	role   string
)

// NewCommand mints a bearer token for local development. The server still
// resolves the role from the user directory on every request.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a development JWT for a user",
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "", "Environment used to load config")
	cmd.Flags().UintVarP(&userID, "user-id", "u", 0, "User ID to issue the token for (required)")
	cmd.Flags().StringVarP(&role, "role", "r", authorization.RoleUser.String(), "Role claim (USER or ADMIN)")
	_ = cmd.MarkFlagRequired("user-id")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if userID == 0 {
		return fmt.Errorf("--user-id must be positive")
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	svc := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)
	tok, expiresAt, err := svc.Generate(userID, authorization.ParseUserRole(role))
	if err != nil {
		return fmt.Errorf("failed to generate token: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), tok)
	fmt.Fprintf(cmd.ErrOrStderr(), "expires at %s\n", expiresAt.Format(time.RFC3339))
	return nil
}

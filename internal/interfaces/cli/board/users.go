package board

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"ticketboard/internal/board/client"
)

// NewUsersCommand prints the user directory, which is where assignee IDs come from.
func NewUsersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "List users known to the API",
		RunE:  runUsers,
	}
	addClientFlags(cmd)
	return cmd
}

func runUsers(cmd *cobra.Command, args []string) error {
	cfg, err := loadClientConfig()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Client.RequestTimeout)
	defer cancel()

	users, err := client.NewClient(cfg.Client.BaseURL, cfg.Client.Token).ListUsers(ctx)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tEMAIL\tROLE")
	for _, u := range users {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", u.ID, u.Name, u.Email, u.Role)
	}
	return w.Flush()
}

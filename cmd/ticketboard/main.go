package main

import (
	"os"

	"github.com/spf13/cobra"

	"ticketboard/internal/interfaces/cli/board"
	"ticketboard/internal/interfaces/cli/migrate"
	"ticketboard/internal/interfaces/cli/server"
	"ticketboard/internal/interfaces/cli/token"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ticketboard",
		Short: "Ticketboard - a Kanban ticket board",
		Long:  `Ticketboard serves the ticket API and runs the terminal Kanban board against it.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		board.NewCommand(),
		board.NewUsersCommand(),
		token.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

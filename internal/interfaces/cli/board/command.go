package board

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	boardcore "ticketboard/internal/board"
	"ticketboard/internal/board/client"
	"ticketboard/internal/board/tui"
	"ticketboard/internal/infrastructure/config"
	"ticketboard/internal/shared/authorization"
	"ticketboard/internal/shared/logger"
)

var (
	env      string
	logFile  string
	baseURL  string
	apiToken string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Open the terminal Kanban board",
		Long: `Open the ticket board in the terminal. Tickets can be dragged with the
mouse, or grabbed with space and moved with the arrow keys.`,
		RunE: run,
	}

	addClientFlags(cmd)
	cmd.Flags().StringVar(&logFile, "log-file", "ticketboard-board.log", "File that receives client logs")

	return cmd
}

func addClientFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&env, "env", "e", "", "Environment used to load config")
	cmd.Flags().StringVar(&baseURL, "base-url", "", "API base URL (overrides client.base_url)")
	cmd.Flags().StringVar(&apiToken, "token", "", "Bearer token (overrides client.token)")
}

func loadClientConfig() (*config.Config, error) {
	cfg, err := config.Load(env)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if baseURL != "" {
		cfg.Client.BaseURL = baseURL
	}
	if apiToken != "" {
		cfg.Client.Token = apiToken
	}
	if err := cfg.ValidateClient(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := loadClientConfig()
	if err != nil {
		return err
	}

	// The board owns the terminal, so logs go to a file.
	cfg.Logger.OutputPath = logFile
	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger().Named("board")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	api := client.NewClient(cfg.Client.BaseURL, cfg.Client.Token, client.WithTimeout(cfg.Client.RequestTimeout))

	me, err := api.CurrentUser(ctx)
	if err != nil {
		return fmt.Errorf("failed to identify the signed-in user: %w", err)
	}
	actor := authorization.NewActor(me.ID, authorization.ParseUserRole(me.Role))
	log.Infow("board starting", "user_id", me.ID, "role", actor.Role.String(), "base_url", cfg.Client.BaseURL)

	bridge := tui.NewBridge()
	notifier := boardcore.Notifiers{bridge, boardcore.NewLogNotifier(log.Named("notify"))}
	coord := boardcore.NewCoordinator(api, actor, notifier, log,
		boardcore.WithTimeout(cfg.Client.RequestTimeout),
		boardcore.WithListener(bridge.BoardChanged),
	)

	model := tui.NewModel(coord, tui.Self{ID: me.ID, Name: me.Name, Role: actor.Role.String()}, log,
		tui.WithKeyboardStep(cfg.Client.KeyboardStep),
		tui.WithActivationDistance(cfg.Client.ActivationDistance),
	)

	if err := tui.Run(ctx, model, bridge); err != nil {
		log.Errorw("board exited with error", "error", err)
		return err
	}
	return nil
}

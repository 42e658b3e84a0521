package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/arcade-go/internal/application/player/commands"
	"github.com/andrescamacho/arcade-go/internal/application/player/queries"
)

// NewSessionCommand creates the session command with subcommands
func NewSessionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Manage game sessions",
		Long: `Manage game sessions in the local database.

A session holds one player's progress: current lives and completed levels.

Examples:
  arcade session start --player ellen
  arcade session list
  arcade session info --player ellen
  arcade session info --session 4f7c2d1a-...`,
	}

	cmd.AddCommand(newSessionStartCommand())
	cmd.AddCommand(newSessionListCommand())
	cmd.AddCommand(newSessionInfoCommand())

	return cmd
}

// newSessionStartCommand creates the session start subcommand
func newSessionStartCommand() *cobra.Command {
	var playerName string

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start a new game session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if playerName == "" {
				return fmt.Errorf("--player flag is required")
			}

			rt, err := newRuntime()
			if err != nil {
				return err
			}
			defer rt.close()

			resp, err := rt.mediator.Send(cmd.Context(), &commands.StartSessionCommand{
				PlayerName: playerName,
			})
			if err != nil {
				return err
			}

			response := resp.(*commands.StartSessionResponse)
			fmt.Println("Session started")
			printSession(response.Session)
			return nil
		},
	}

	cmd.Flags().StringVar(&playerName, "player", "", "Player name (required)")

	return cmd
}

// newSessionListCommand creates the session list subcommand
func newSessionListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all game sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime()
			if err != nil {
				return err
			}
			defer rt.close()

			resp, err := rt.mediator.Send(cmd.Context(), &queries.ListSessionsQuery{})
			if err != nil {
				return err
			}

			response := resp.(*queries.ListSessionsResponse)
			if len(response.Sessions) == 0 {
				fmt.Println("No sessions found")
				return nil
			}

			printSessionTable(response.Sessions)
			return nil
		},
	}
}

// newSessionInfoCommand creates the session info subcommand
func newSessionInfoCommand() *cobra.Command {
	var (
		sessionID  string
		playerName string
	)

	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show one session's progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			if sessionID == "" && playerName == "" {
				return fmt.Errorf("either --session or --player is required")
			}

			rt, err := newRuntime()
			if err != nil {
				return err
			}
			defer rt.close()

			resp, err := rt.mediator.Send(cmd.Context(), &queries.GetSessionQuery{
				SessionID:  sessionID,
				PlayerName: playerName,
			})
			if err != nil {
				return err
			}

			response := resp.(*queries.GetSessionResponse)
			printSession(response.Session)
			return nil
		},
	}

	cmd.Flags().StringVar(&sessionID, "session", "", "Session ID")
	cmd.Flags().StringVar(&playerName, "player", "", "Player name (most recent session)")

	return cmd
}

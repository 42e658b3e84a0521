package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/arcade-go/internal/application/player/commands"
)

// NewLevelCommand creates the level command with subcommands
func NewLevelCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "level",
		Short: "Manage a session's level progress",
		Long: `Manage a session's level progress.

Example:
  arcade level complete --session 4f7c2d1a-...`,
	}

	cmd.AddCommand(newLevelCompleteCommand())

	return cmd
}

// newLevelCompleteCommand creates the level complete subcommand
func newLevelCompleteCommand() *cobra.Command {
	var sessionID string

	cmd := &cobra.Command{
		Use:   "complete",
		Short: "Record one completed level",
		RunE: func(cmd *cobra.Command, args []string) error {
			if sessionID == "" {
				return fmt.Errorf("--session flag is required")
			}

			rt, err := newRuntime()
			if err != nil {
				return err
			}
			defer rt.close()

			resp, err := rt.mediator.Send(cmd.Context(), &commands.CompleteLevelCommand{
				SessionID: sessionID,
			})
			if err != nil {
				return err
			}

			response := resp.(*commands.CompleteLevelResponse)
			printSession(response.Session)
			return nil
		},
	}

	cmd.Flags().StringVar(&sessionID, "session", "", "Session ID (required)")

	return cmd
}

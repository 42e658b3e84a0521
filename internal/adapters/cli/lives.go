package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/arcade-go/internal/application/player/commands"
)

// NewLivesCommand creates the lives command with subcommands
func NewLivesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lives",
		Short: "Manage a session's lives",
		Long: `Manage a session's lives.

Lives are capped at the maximum; adding more than the cap allows is not an
error, the count simply stops at the maximum. Negative amounts are rejected.

Example:
  arcade lives add --session 4f7c2d1a-... --amount 2`,
	}

	cmd.AddCommand(newLivesAddCommand())

	return cmd
}

// newLivesAddCommand creates the lives add subcommand
func newLivesAddCommand() *cobra.Command {
	var (
		sessionID string
		amount    int
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add lives to a session (clamped to the maximum)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if sessionID == "" {
				return fmt.Errorf("--session flag is required")
			}

			rt, err := newRuntime()
			if err != nil {
				return err
			}
			defer rt.close()

			resp, err := rt.mediator.Send(cmd.Context(), &commands.UpgradeLivesCommand{
				SessionID: sessionID,
				Amount:    amount,
			})
			if err != nil {
				return err
			}

			response := resp.(*commands.UpgradeLivesResponse)
			printSession(response.Session)
			return nil
		},
	}

	cmd.Flags().StringVar(&sessionID, "session", "", "Session ID (required)")
	cmd.Flags().IntVar(&amount, "amount", 1, "Number of lives to add")

	return cmd
}

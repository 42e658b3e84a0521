package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/andrescamacho/arcade-go/internal/adapters/persistence"
	"github.com/andrescamacho/arcade-go/internal/application/common"
	"github.com/andrescamacho/arcade-go/internal/application/player/commands"
	"github.com/andrescamacho/arcade-go/internal/application/player/queries"
	"github.com/andrescamacho/arcade-go/internal/domain/player"
	"github.com/andrescamacho/arcade-go/internal/infrastructure/config"
	"github.com/andrescamacho/arcade-go/internal/infrastructure/database"
)

// runtime bundles the wired dependencies a CLI command needs
type runtime struct {
	mediator common.Mediator
	close    func()
}

// newRuntime loads config, opens the database and wires the mediator
func newRuntime() (*runtime, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.NewConnection(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sessionRepo := persistence.NewGormSessionRepository(db)

	m := common.NewMediator()
	registrations := []error{
		common.RegisterHandler[*commands.StartSessionCommand](m, commands.NewStartSessionHandler(sessionRepo)),
		common.RegisterHandler[*commands.UpgradeLivesCommand](m, commands.NewUpgradeLivesHandler(sessionRepo)),
		common.RegisterHandler[*commands.CompleteLevelCommand](m, commands.NewCompleteLevelHandler(sessionRepo)),
		common.RegisterHandler[*queries.GetSessionQuery](m, queries.NewGetSessionHandler(sessionRepo)),
		common.RegisterHandler[*queries.ListSessionsQuery](m, queries.NewListSessionsHandler(sessionRepo)),
	}
	for _, err := range registrations {
		if err != nil {
			database.Close(db)
			return nil, fmt.Errorf("failed to register handler: %w", err)
		}
	}

	return &runtime{
		mediator: m,
		close: func() {
			database.Close(db)
		},
	}, nil
}

// printSession writes a single session's details
func printSession(s *player.Session) {
	fmt.Printf("Session:  %s\n", s.ID)
	fmt.Printf("Player:   %s\n", s.PlayerName)
	fmt.Printf("Lives:    %d/%d\n", s.State.Lives(), player.MaximumLives)
	fmt.Printf("Levels:   %d\n", s.State.LevelsComplete())
	fmt.Printf("Started:  %s\n", s.CreatedAt.Format("2006-01-02 15:04:05"))
}

// printSessionTable writes sessions in a tabular listing
func printSessionTable(sessions []*player.Session) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SESSION ID\tPLAYER\tLIVES\tLEVELS\tSTARTED")
	for _, s := range sessions {
		fmt.Fprintf(w, "%s\t%s\t%d/%d\t%d\t%s\n",
			s.ID,
			s.PlayerName,
			s.State.Lives(), player.MaximumLives,
			s.State.LevelsComplete(),
			s.CreatedAt.Format("2006-01-02 15:04"),
		)
	}
	w.Flush()
}

package steps

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"github.com/google/uuid"

	"github.com/andrescamacho/arcade-go/internal/adapters/persistence"
	"github.com/andrescamacho/arcade-go/internal/domain/player"
	"github.com/andrescamacho/arcade-go/test/helpers"
)

type sessionRepositoryContext struct {
	repo     *persistence.GormSessionRepository
	savedID  string
	reloaded *player.Session
	err      error
}

func (rc *sessionRepositoryContext) reset() {
	rc.repo = persistence.NewGormSessionRepository(helpers.SharedTestDB)
	rc.savedID = ""
	rc.reloaded = nil
	rc.err = nil
}

// Given steps

func (rc *sessionRepositoryContext) aCleanSessionsDatabase() error {
	return helpers.ResetSharedTestDB()
}

func (rc *sessionRepositoryContext) aSavedSessionForPlayerWith(playerName string, lives, levelsComplete int) error {
	session := player.NewSession(playerName)
	if err := session.State.SetLives(lives); err != nil {
		return err
	}
	session.State.SetLevelsComplete(levelsComplete)

	if err := rc.repo.Save(context.Background(), session); err != nil {
		return err
	}
	rc.savedID = session.ID
	return nil
}

func (rc *sessionRepositoryContext) aSessionsRowWithLivesStoredDirectly(lives int) error {
	// Bypass the repository to simulate a corrupted row
	model := &persistence.SessionModel{
		ID:         uuid.New().String(),
		PlayerName: "corrupted",
		Lives:      lives,
		CreatedAt:  time.Now().UTC(),
	}
	if err := helpers.SharedTestDB.Create(model).Error; err != nil {
		return err
	}
	rc.savedID = model.ID
	return nil
}

// When steps

func (rc *sessionRepositoryContext) iReloadTheSessionByID() error {
	if rc.savedID == "" {
		return fmt.Errorf("no saved session available")
	}
	rc.reloaded, rc.err = rc.repo.FindByID(context.Background(), rc.savedID)
	return nil
}

func (rc *sessionRepositoryContext) iReloadASessionWithID(id string) error {
	rc.reloaded, rc.err = rc.repo.FindByID(context.Background(), id)
	return nil
}

func (rc *sessionRepositoryContext) iReloadTheSessionByPlayerName(playerName string) error {
	rc.reloaded, rc.err = rc.repo.FindByPlayerName(context.Background(), playerName)
	return nil
}

// Then steps

func (rc *sessionRepositoryContext) theReloadedSessionShouldHave(lives, levelsComplete int) error {
	if rc.err != nil {
		return fmt.Errorf("expected success, got error: %v", rc.err)
	}
	if rc.reloaded == nil {
		return fmt.Errorf("no session was reloaded")
	}
	if rc.reloaded.State.Lives() != lives {
		return fmt.Errorf("expected %d lives, got %d", lives, rc.reloaded.State.Lives())
	}
	if rc.reloaded.State.LevelsComplete() != levelsComplete {
		return fmt.Errorf("expected %d levels complete, got %d", levelsComplete, rc.reloaded.State.LevelsComplete())
	}
	return nil
}

func (rc *sessionRepositoryContext) theReloadShouldFailWith(expected string) error {
	if rc.err == nil {
		return fmt.Errorf("expected reload to fail with %q, but it succeeded", expected)
	}
	if !strings.Contains(rc.err.Error(), expected) {
		return fmt.Errorf("expected error containing %q, got: %v", expected, rc.err)
	}
	return nil
}

func InitializeSessionRepositoryScenario(ctx *godog.ScenarioContext) {
	rc := &sessionRepositoryContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		rc.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^a clean sessions database$`, rc.aCleanSessionsDatabase)
	ctx.Step(`^a saved session for player "([^"]*)" with (\d+) lives and (\d+) levels complete$`, rc.aSavedSessionForPlayerWith)
	ctx.Step(`^a sessions row with (\d+) lives stored directly$`, rc.aSessionsRowWithLivesStoredDirectly)

	// When steps
	ctx.Step(`^I reload the session by ID$`, rc.iReloadTheSessionByID)
	ctx.Step(`^I reload a session with ID "([^"]*)"$`, rc.iReloadASessionWithID)
	ctx.Step(`^I reload the session by player name "([^"]*)"$`, rc.iReloadTheSessionByPlayerName)

	// Then steps
	ctx.Step(`^the reloaded session should have (\d+) lives and (\d+) levels complete$`, rc.theReloadedSessionShouldHave)
	ctx.Step(`^the reload should fail with "([^"]*)"$`, rc.theReloadShouldFailWith)
}

package steps

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/cucumber/godog"
	"github.com/cucumber/messages/go/v21"

	"github.com/andrescamacho/arcade-go/internal/application/common"
	"github.com/andrescamacho/arcade-go/internal/application/player/commands"
	"github.com/andrescamacho/arcade-go/internal/application/player/queries"
	"github.com/andrescamacho/arcade-go/internal/domain/player"
	"github.com/andrescamacho/arcade-go/internal/domain/shared"
	"github.com/andrescamacho/arcade-go/test/helpers"
)

type sessionProgressContext struct {
	repo     *helpers.MockSessionRepository
	mediator common.Mediator
	session  *player.Session
	listed   []*player.Session
	err      error
}

func (sc *sessionProgressContext) reset() error {
	sc.repo = helpers.NewMockSessionRepository()
	sc.session = nil
	sc.listed = nil
	sc.err = nil

	m := common.NewMediator()
	registrations := []error{
		common.RegisterHandler[*commands.StartSessionCommand](m, commands.NewStartSessionHandler(sc.repo)),
		common.RegisterHandler[*commands.UpgradeLivesCommand](m, commands.NewUpgradeLivesHandler(sc.repo)),
		common.RegisterHandler[*commands.CompleteLevelCommand](m, commands.NewCompleteLevelHandler(sc.repo)),
		common.RegisterHandler[*queries.GetSessionQuery](m, queries.NewGetSessionHandler(sc.repo)),
		common.RegisterHandler[*queries.ListSessionsQuery](m, queries.NewListSessionsHandler(sc.repo)),
	}
	for _, err := range registrations {
		if err != nil {
			return err
		}
	}
	sc.mediator = m
	return nil
}

// tableCellValue looks up a cell by header name for the given row
func tableCellValue(table *godog.Table, row *messages.PickleTableRow, columnName string) string {
	for i, header := range table.Rows[0].Cells {
		if header.Value == columnName {
			return row.Cells[i].Value
		}
	}
	return ""
}

// Given steps

func (sc *sessionProgressContext) anEmptySessionStore() error {
	// The Before hook already created a fresh store
	return nil
}

func (sc *sessionProgressContext) aStoredSessionForPlayer(playerName string) error {
	session := player.NewSession(playerName)
	sc.repo.AddSession(session)
	sc.session = session
	return nil
}

func (sc *sessionProgressContext) aStoredSessionForPlayerWithLives(playerName string, lives int) error {
	session := player.NewSession(playerName)
	if err := session.State.SetLives(lives); err != nil {
		return err
	}
	sc.repo.AddSession(session)
	sc.session = session
	return nil
}

func (sc *sessionProgressContext) theFollowingSessionsExist(table *godog.Table) error {
	for _, row := range table.Rows[1:] {
		session := player.NewSession(tableCellValue(table, row, "player"))

		lives, err := strconv.Atoi(tableCellValue(table, row, "lives"))
		if err != nil {
			return fmt.Errorf("invalid lives cell: %w", err)
		}
		if err := session.State.SetLives(lives); err != nil {
			return err
		}

		levels, err := strconv.Atoi(tableCellValue(table, row, "levels"))
		if err != nil {
			return fmt.Errorf("invalid levels cell: %w", err)
		}
		session.State.SetLevelsComplete(levels)

		sc.repo.AddSession(session)
	}
	return nil
}

// When steps

func (sc *sessionProgressContext) iStartASessionForPlayer(playerName string) error {
	resp, err := sc.mediator.Send(context.Background(), &commands.StartSessionCommand{
		PlayerName: playerName,
	})
	sc.err = err
	if err != nil {
		return nil
	}
	sc.session = resp.(*commands.StartSessionResponse).Session
	return nil
}

func (sc *sessionProgressContext) iAddLivesToTheSession(amount int) error {
	if sc.session == nil {
		return fmt.Errorf("no session available")
	}
	_, err := sc.mediator.Send(context.Background(), &commands.UpgradeLivesCommand{
		SessionID: sc.session.ID,
		Amount:    amount,
	})
	sc.err = err
	return nil
}

func (sc *sessionProgressContext) iCompleteALevel() error {
	if sc.session == nil {
		return fmt.Errorf("no session available")
	}
	_, err := sc.mediator.Send(context.Background(), &commands.CompleteLevelCommand{
		SessionID: sc.session.ID,
	})
	sc.err = err
	return nil
}

func (sc *sessionProgressContext) iListAllSessions() error {
	resp, err := sc.mediator.Send(context.Background(), &queries.ListSessionsQuery{})
	sc.err = err
	if err != nil {
		return nil
	}
	sc.listed = resp.(*queries.ListSessionsResponse).Sessions
	return nil
}

// Then steps

func (sc *sessionProgressContext) theSessionShouldHaveLivesAndLevelsComplete(lives, levelsComplete int) error {
	if sc.err != nil {
		return fmt.Errorf("expected success, got error: %v", sc.err)
	}
	if sc.session == nil {
		return fmt.Errorf("no session available")
	}
	if sc.session.State.Lives() != lives {
		return fmt.Errorf("expected %d lives, got %d", lives, sc.session.State.Lives())
	}
	if sc.session.State.LevelsComplete() != levelsComplete {
		return fmt.Errorf("expected %d levels complete, got %d", levelsComplete, sc.session.State.LevelsComplete())
	}
	return nil
}

func (sc *sessionProgressContext) theStoredSessionShouldHaveLives(expected int) error {
	stored, err := sc.repo.FindByID(context.Background(), sc.session.ID)
	if err != nil {
		return err
	}
	if stored.State.Lives() != expected {
		return fmt.Errorf("expected %d lives, got %d", expected, stored.State.Lives())
	}
	return nil
}

func (sc *sessionProgressContext) theStoredSessionShouldHaveLevelsComplete(expected int) error {
	stored, err := sc.repo.FindByID(context.Background(), sc.session.ID)
	if err != nil {
		return err
	}
	if stored.State.LevelsComplete() != expected {
		return fmt.Errorf("expected %d levels complete, got %d", expected, stored.State.LevelsComplete())
	}
	return nil
}

func (sc *sessionProgressContext) theCommandShouldFailWithAnInvalidValueError() error {
	if sc.err == nil {
		return fmt.Errorf("expected an invalid value error, but the command succeeded")
	}
	var invalidErr *shared.InvalidValueError
	if !errors.As(sc.err, &invalidErr) {
		return fmt.Errorf("expected InvalidValueError, got %T: %v", sc.err, sc.err)
	}
	return nil
}

func (sc *sessionProgressContext) iShouldSeeSessions(expected int) error {
	if sc.err != nil {
		return fmt.Errorf("expected success, got error: %v", sc.err)
	}
	if len(sc.listed) != expected {
		return fmt.Errorf("expected %d sessions, got %d", expected, len(sc.listed))
	}
	return nil
}

func (sc *sessionProgressContext) theSessionForPlayerShouldShow(playerName string, lives, levelsComplete int) error {
	for _, s := range sc.listed {
		if s.PlayerName != playerName {
			continue
		}
		if s.State.Lives() != lives {
			return fmt.Errorf("expected %d lives for %s, got %d", lives, playerName, s.State.Lives())
		}
		if s.State.LevelsComplete() != levelsComplete {
			return fmt.Errorf("expected %d levels complete for %s, got %d", levelsComplete, playerName, s.State.LevelsComplete())
		}
		return nil
	}
	return fmt.Errorf("no session listed for player %s", playerName)
}

func InitializeSessionProgressScenario(ctx *godog.ScenarioContext) {
	sc := &sessionProgressContext{}

	ctx.Before(func(ctx context.Context, scenario *godog.Scenario) (context.Context, error) {
		return ctx, sc.reset()
	})

	// Given steps
	ctx.Step(`^an empty session store$`, sc.anEmptySessionStore)
	ctx.Step(`^a stored session for player "([^"]*)"$`, sc.aStoredSessionForPlayer)
	ctx.Step(`^a stored session for player "([^"]*)" with (\d+) lives$`, sc.aStoredSessionForPlayerWithLives)
	ctx.Step(`^the following sessions exist:$`, sc.theFollowingSessionsExist)

	// When steps
	ctx.Step(`^I start a session for player "([^"]*)"$`, sc.iStartASessionForPlayer)
	ctx.Step(`^I add (-?\d+) lives to the session$`, sc.iAddLivesToTheSession)
	ctx.Step(`^I complete a level$`, sc.iCompleteALevel)
	ctx.Step(`^I list all sessions$`, sc.iListAllSessions)

	// Then steps
	ctx.Step(`^the session should have (\d+) lives and (\d+) levels complete$`, sc.theSessionShouldHaveLivesAndLevelsComplete)
	ctx.Step(`^the stored session should have (\d+) lives$`, sc.theStoredSessionShouldHaveLives)
	ctx.Step(`^the stored session should have (\d+) levels complete$`, sc.theStoredSessionShouldHaveLevelsComplete)
	ctx.Step(`^the command should fail with an invalid value error$`, sc.theCommandShouldFailWithAnInvalidValueError)
	ctx.Step(`^I should see (\d+) sessions$`, sc.iShouldSeeSessions)
	ctx.Step(`^the session for player "([^"]*)" should show (\d+) lives and (\d+) levels complete$`, sc.theSessionForPlayerShouldShow)
}

package steps

import (
	"context"
	"errors"
	"fmt"

	"github.com/cucumber/godog"

	"github.com/andrescamacho/arcade-go/internal/domain/player"
	"github.com/andrescamacho/arcade-go/internal/domain/shared"
)

type playerProgressContext struct {
	state    *player.State
	upgrader *player.LivesUpgrader
	err      error
}

func (pc *playerProgressContext) reset() {
	pc.state = nil
	pc.upgrader = nil
	pc.err = nil
}

// Given steps

func (pc *playerProgressContext) aFreshPlayerState() error {
	pc.state = player.NewState()
	return nil
}

func (pc *playerProgressContext) aLivesUpgraderBoundToThatState() error {
	if pc.state == nil {
		return fmt.Errorf("no player state available")
	}
	pc.upgrader = player.NewLivesUpgrader(pc.state)
	return nil
}

func (pc *playerProgressContext) aLivesUpgraderWithNoBoundState() error {
	pc.upgrader = player.NewLivesUpgrader(nil)
	return nil
}

func (pc *playerProgressContext) theStateHasLives(n int) error {
	if pc.state == nil {
		return fmt.Errorf("no player state available")
	}
	return pc.state.SetLives(n)
}

func (pc *playerProgressContext) theStateHasLevelsComplete(n int) error {
	if pc.state == nil {
		return fmt.Errorf("no player state available")
	}
	pc.state.SetLevelsComplete(n)
	return nil
}

// When steps

func (pc *playerProgressContext) iSetLivesTo(n int) error {
	if pc.state == nil {
		return fmt.Errorf("no player state available")
	}
	pc.err = pc.state.SetLives(n)
	return nil
}

func (pc *playerProgressContext) iSetLevelsCompleteTo(n int) error {
	if pc.state == nil {
		return fmt.Errorf("no player state available")
	}
	pc.state.SetLevelsComplete(n)
	return nil
}

func (pc *playerProgressContext) iRestoreAPlayerStateWith(lives, levelsComplete int) error {
	pc.state, pc.err = player.RestoreState(lives, levelsComplete)
	return nil
}

func (pc *playerProgressContext) iUpgradeLivesBy(amount int) error {
	if pc.upgrader == nil {
		return fmt.Errorf("no upgrader available")
	}
	pc.err = pc.upgrader.UpgradeLives(amount)
	return nil
}

func (pc *playerProgressContext) iUpgradeTheLevel() error {
	if pc.upgrader == nil {
		return fmt.Errorf("no upgrader available")
	}
	pc.err = pc.upgrader.UpgradeLevel()
	return nil
}

// Then steps

func (pc *playerProgressContext) theOperationShouldSucceed() error {
	if pc.err != nil {
		return fmt.Errorf("expected success, got error: %v", pc.err)
	}
	return nil
}

func (pc *playerProgressContext) theOperationShouldFailWithAnInvalidValueError() error {
	if pc.err == nil {
		return fmt.Errorf("expected an invalid value error, but the operation succeeded")
	}
	var invalidErr *shared.InvalidValueError
	if !errors.As(pc.err, &invalidErr) {
		return fmt.Errorf("expected InvalidValueError, got %T: %v", pc.err, pc.err)
	}
	return nil
}

func (pc *playerProgressContext) theOperationShouldFailWithAMissingAssociationError() error {
	if pc.err == nil {
		return fmt.Errorf("expected a missing association error, but the operation succeeded")
	}
	var missingErr *shared.MissingAssociationError
	if !errors.As(pc.err, &missingErr) {
		return fmt.Errorf("expected MissingAssociationError, got %T: %v", pc.err, pc.err)
	}
	return nil
}

func (pc *playerProgressContext) theLivesCountShouldBe(expected int) error {
	if pc.state == nil {
		return fmt.Errorf("no player state available")
	}
	if pc.state.Lives() != expected {
		return fmt.Errorf("expected %d lives, got %d", expected, pc.state.Lives())
	}
	return nil
}

func (pc *playerProgressContext) theLevelsCompleteCountShouldBe(expected int) error {
	if pc.state == nil {
		return fmt.Errorf("no player state available")
	}
	if pc.state.LevelsComplete() != expected {
		return fmt.Errorf("expected %d levels complete, got %d", expected, pc.state.LevelsComplete())
	}
	return nil
}

func InitializePlayerProgressScenario(ctx *godog.ScenarioContext) {
	pc := &playerProgressContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		pc.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^a fresh player state$`, pc.aFreshPlayerState)
	ctx.Step(`^a lives upgrader bound to that state$`, pc.aLivesUpgraderBoundToThatState)
	ctx.Step(`^a lives upgrader with no bound state$`, pc.aLivesUpgraderWithNoBoundState)
	ctx.Step(`^the state has (-?\d+) lives$`, pc.theStateHasLives)
	ctx.Step(`^the state has (-?\d+) levels complete$`, pc.theStateHasLevelsComplete)

	// When steps
	ctx.Step(`^I set lives to (-?\d+)$`, pc.iSetLivesTo)
	ctx.Step(`^I set levels complete to (-?\d+)$`, pc.iSetLevelsCompleteTo)
	ctx.Step(`^I restore a player state with (-?\d+) lives and (-?\d+) levels complete$`, pc.iRestoreAPlayerStateWith)
	ctx.Step(`^I upgrade lives by (-?\d+)$`, pc.iUpgradeLivesBy)
	ctx.Step(`^I upgrade the level$`, pc.iUpgradeTheLevel)

	// Then steps
	ctx.Step(`^the operation should succeed$`, pc.theOperationShouldSucceed)
	ctx.Step(`^the operation should fail with an invalid value error$`, pc.theOperationShouldFailWithAnInvalidValueError)
	ctx.Step(`^the operation should fail with a missing association error$`, pc.theOperationShouldFailWithAMissingAssociationError)
	ctx.Step(`^the lives count should be (\d+)$`, pc.theLivesCountShouldBe)
	ctx.Step(`^the levels complete count should be (\d+)$`, pc.theLevelsCompleteCountShouldBe)
}

package engine_test

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/scene-choice/internal/engine"
	"github.com/KirkDiggler/scene-choice/internal/entities"
	"github.com/KirkDiggler/scene-choice/internal/errors"
	"github.com/KirkDiggler/scene-choice/internal/monitors/distance"
	"github.com/KirkDiggler/scene-choice/internal/orchestrators/selection"
	mockclock "github.com/KirkDiggler/scene-choice/internal/pkg/clock/mock"
	"github.com/KirkDiggler/scene-choice/internal/pkg/idgen"
	"github.com/KirkDiggler/scene-choice/internal/repositories/variables"
	surfacemock "github.com/KirkDiggler/scene-choice/internal/surface/mock"
	"github.com/KirkDiggler/scene-choice/internal/world"
)

// Full wiring: real controller, monitor, in-memory world and variable store;
// only the surface and clock are mocked.
func TestEngine_DistanceTriggerPreemptsPendingChoice(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)

	surf := surfacemock.NewMockSurface(ctrl)
	clk := mockclock.NewMockClock(ctrl)
	now := time.Unix(1700000000, 0)
	clk.EXPECT().Now().DoAndReturn(func() time.Time { return now }).AnyTimes()

	vars := variables.NewInMemory()
	gameWorld := world.NewInMemory()
	gameWorld.SetPlayerPosition(entities.Position{X: 0, Y: 0})
	gameWorld.PlaceActor(&world.Actor{ID: 2, Name: "guard", Pos: entities.Position{X: 5, Y: 5}})

	svc, err := selection.NewOrchestrator(&selection.Config{
		Variables:   vars,
		Surface:     surf,
		Clock:       clk,
		IDGenerator: idgen.NewSequential("session"),
		EventBus:    events.NewBus(),
	})
	require.NoError(t, err)

	monitor, err := distance.NewMonitor(&distance.Config{
		Selection: svc,
		World:     gameWorld,
	})
	require.NoError(t, err)

	eng, err := engine.New(&engine.Config{
		Selection: svc,
		Monitor:   monitor,
	})
	require.NoError(t, err)

	_, err = svc.StartSession(ctx, &selection.StartSessionInput{
		Choices:    []string{"X", "Y"},
		VariableID: 20,
		Trigger:    &entities.DistanceTrigger{EntityID: 2, Distance: 2, Result: 99},
	})
	require.NoError(t, err)
	requireVariable(t, vars, 20, -1)

	// Tick 1: surface activates, guard still far away
	surf.EXPECT().IsOpenAndInactive().Return(true)
	surf.EXPECT().Show([]string{"X", "Y"})
	surf.EXPECT().Open()
	surf.EXPECT().Activate()
	require.NoError(t, eng.Tick(ctx))
	requireVariable(t, vars, 20, -1)

	// Tick 2: guard steps within range mid-display; the trigger preempts
	// the pending choice and closes the surface
	gameWorld.MoveActor(2, entities.Position{X: 1, Y: 1})
	surf.EXPECT().IsOpenAndInactive().Return(false)
	surf.EXPECT().Deactivate()
	surf.EXPECT().Close()
	require.NoError(t, eng.Tick(ctx))
	requireVariable(t, vars, 20, 99)

	_, err = svc.GetActiveSession(ctx, &selection.GetActiveSessionInput{})
	assert.True(t, errors.IsNotFound(err))

	// Tick 3: past the grace window the variable settles to idle
	now = now.Add(150 * time.Millisecond)
	require.NoError(t, eng.Tick(ctx))
	requireVariable(t, vars, 20, 0)
}

func TestEngine_ForcedSelectionSuppressesTriggerInSameTick(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)

	surf := surfacemock.NewMockSurface(ctrl)
	clk := mockclock.NewMockClock(ctrl)
	now := time.Unix(1700000000, 0)
	clk.EXPECT().Now().DoAndReturn(func() time.Time { return now }).AnyTimes()

	vars := variables.NewInMemory()
	gameWorld := world.NewInMemory()
	gameWorld.SetPlayerPosition(entities.Position{X: 0, Y: 0})
	// Guard already inside the trigger threshold
	gameWorld.PlaceActor(&world.Actor{ID: 2, Name: "guard", Pos: entities.Position{X: 1, Y: 0}})

	svc, err := selection.NewOrchestrator(&selection.Config{
		Variables:   vars,
		Surface:     surf,
		Clock:       clk,
		IDGenerator: idgen.NewSequential("session"),
		EventBus:    events.NewBus(),
	})
	require.NoError(t, err)

	monitor, err := distance.NewMonitor(&distance.Config{
		Selection: svc,
		World:     gameWorld,
	})
	require.NoError(t, err)

	eng, err := engine.New(&engine.Config{
		Selection: svc,
		Monitor:   monitor,
	})
	require.NoError(t, err)

	_, err = svc.StartSession(ctx, &selection.StartSessionInput{
		Choices:    []string{"A", "B", "C"},
		VariableID: 30,
		Trigger:    &entities.DistanceTrigger{EntityID: 2, Distance: 2, Result: 99},
	})
	require.NoError(t, err)

	_, err = svc.ForceSelection(ctx, &selection.ForceSelectionInput{Index: 1})
	require.NoError(t, err)

	// The forced drain resolves first; the trigger never gets to write 99
	surf.EXPECT().SetHighlight(int32(1))
	surf.EXPECT().Deactivate()
	surf.EXPECT().Close()
	require.NoError(t, eng.Tick(ctx))
	requireVariable(t, vars, 30, 2)
}

func TestNew_Validation(t *testing.T) {
	_, err := engine.New(&engine.Config{})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}

func requireVariable(t *testing.T, repo variables.Repository, id, want int32) {
	t.Helper()
	out, err := repo.Get(context.Background(), &variables.GetInput{ID: id})
	require.NoError(t, err)
	require.Equal(t, want, out.Value)
}

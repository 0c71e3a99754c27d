package distance_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/scene-choice/internal/entities"
	"github.com/KirkDiggler/scene-choice/internal/errors"
	"github.com/KirkDiggler/scene-choice/internal/monitors/distance"
	"github.com/KirkDiggler/scene-choice/internal/orchestrators/selection"
	selectionmock "github.com/KirkDiggler/scene-choice/internal/orchestrators/selection/mock"
	worldmock "github.com/KirkDiggler/scene-choice/internal/world/mock"
)

func newMonitor(t *testing.T) (distance.Monitor, *selectionmock.MockService, *worldmock.MockPositionProvider) {
	t.Helper()

	ctrl := gomock.NewController(t)
	svc := selectionmock.NewMockService(ctrl)
	provider := worldmock.NewMockPositionProvider(ctrl)

	monitor, err := distance.NewMonitor(&distance.Config{
		Selection: svc,
		World:     provider,
	})
	require.NoError(t, err)

	return monitor, svc, provider
}

func armedSession() *entities.ChoiceSession {
	return &entities.ChoiceSession{
		ID:         "session_1",
		Choices:    []string{"X", "Y"},
		VariableID: 20,
		Active:     true,
		Trigger:    &entities.DistanceTrigger{EntityID: 2, Distance: 2, Result: 99},
	}
}

func TestMonitor_Tick(t *testing.T) {
	ctx := context.Background()

	t.Run("fires when the entity is within the threshold", func(t *testing.T) {
		monitor, svc, provider := newMonitor(t)

		svc.EXPECT().
			GetActiveSession(ctx, gomock.Any()).
			Return(&selection.GetActiveSessionOutput{Session: armedSession()}, nil)
		provider.EXPECT().
			PlayerPosition(ctx).
			Return(entities.Position{X: 5, Y: 5}, nil)
		provider.EXPECT().
			EntityPosition(ctx, int32(2)).
			Return(entities.Position{X: 4, Y: 4}, nil)
		svc.EXPECT().
			ResolveOverride(ctx, &selection.ResolveOverrideInput{SessionID: "session_1"}).
			Return(&selection.ResolveOverrideOutput{Resolved: true, Result: 99}, nil)

		require.NoError(t, monitor.Tick(ctx))
	})

	t.Run("no-op outside the threshold", func(t *testing.T) {
		monitor, svc, provider := newMonitor(t)

		svc.EXPECT().
			GetActiveSession(ctx, gomock.Any()).
			Return(&selection.GetActiveSessionOutput{Session: armedSession()}, nil)
		provider.EXPECT().
			PlayerPosition(ctx).
			Return(entities.Position{X: 0, Y: 0}, nil)
		provider.EXPECT().
			EntityPosition(ctx, int32(2)).
			Return(entities.Position{X: 2, Y: 1}, nil)

		require.NoError(t, monitor.Tick(ctx))
	})

	t.Run("no-op without an active session", func(t *testing.T) {
		monitor, svc, _ := newMonitor(t)

		svc.EXPECT().
			GetActiveSession(ctx, gomock.Any()).
			Return(nil, errors.NotFound("no active choice session"))

		require.NoError(t, monitor.Tick(ctx))
	})

	t.Run("no-op without a trigger", func(t *testing.T) {
		monitor, svc, _ := newMonitor(t)

		session := armedSession()
		session.Trigger = nil
		svc.EXPECT().
			GetActiveSession(ctx, gomock.Any()).
			Return(&selection.GetActiveSessionOutput{Session: session}, nil)

		require.NoError(t, monitor.Tick(ctx))
	})

	t.Run("pending forced selection suppresses evaluation", func(t *testing.T) {
		monitor, svc, _ := newMonitor(t)

		session := armedSession()
		forced := int32(1)
		session.Forced = &forced
		svc.EXPECT().
			GetActiveSession(ctx, gomock.Any()).
			Return(&selection.GetActiveSessionOutput{Session: session}, nil)

		// No position lookups, no override
		require.NoError(t, monitor.Tick(ctx))
	})

	t.Run("missing entity leaves the trigger armed", func(t *testing.T) {
		monitor, svc, provider := newMonitor(t)

		svc.EXPECT().
			GetActiveSession(ctx, gomock.Any()).
			Return(&selection.GetActiveSessionOutput{Session: armedSession()}, nil)
		provider.EXPECT().
			PlayerPosition(ctx).
			Return(entities.Position{X: 5, Y: 5}, nil)
		provider.EXPECT().
			EntityPosition(ctx, int32(2)).
			Return(entities.Position{}, errors.NotFound("entity 2 is not on the map"))

		require.NoError(t, monitor.Tick(ctx))
	})

	t.Run("zero threshold fires on the same tile", func(t *testing.T) {
		monitor, svc, provider := newMonitor(t)

		session := armedSession()
		session.Trigger.Distance = 0
		svc.EXPECT().
			GetActiveSession(ctx, gomock.Any()).
			Return(&selection.GetActiveSessionOutput{Session: session}, nil)
		provider.EXPECT().
			PlayerPosition(ctx).
			Return(entities.Position{X: 3, Y: 3}, nil)
		provider.EXPECT().
			EntityPosition(ctx, int32(2)).
			Return(entities.Position{X: 3, Y: 3}, nil)
		svc.EXPECT().
			ResolveOverride(ctx, gomock.Any()).
			Return(&selection.ResolveOverrideOutput{Resolved: true, Result: 99}, nil)

		require.NoError(t, monitor.Tick(ctx))
	})

	t.Run("propagates unexpected session lookup failures", func(t *testing.T) {
		monitor, svc, _ := newMonitor(t)

		svc.EXPECT().
			GetActiveSession(ctx, gomock.Any()).
			Return(nil, errors.Unavailable("variable store down"))

		err := monitor.Tick(ctx)
		require.Error(t, err)
		assert.True(t, errors.IsUnavailable(err))
	})
}

func TestNewMonitor_Validation(t *testing.T) {
	_, err := distance.NewMonitor(&distance.Config{})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}

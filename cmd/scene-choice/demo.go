package main

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/scene-choice/internal/engine"
	"github.com/KirkDiggler/scene-choice/internal/entities"
	"github.com/KirkDiggler/scene-choice/internal/monitors/distance"
	"github.com/KirkDiggler/scene-choice/internal/orchestrators/selection"
	"github.com/KirkDiggler/scene-choice/internal/pkg/clock"
	"github.com/KirkDiggler/scene-choice/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/scene-choice/internal/redis"
	"github.com/KirkDiggler/scene-choice/internal/repositories/variables"
	"github.com/KirkDiggler/scene-choice/internal/surface"
	"github.com/KirkDiggler/scene-choice/internal/world"
)

var (
	demoTicks        int
	demoTickInterval time.Duration
	demoVariableID   int32
	demoRedisAddr    string
)

const guardEntityID int32 = 2

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run a headless simulation of a preempted choice session",
	Long:  `Runs a fixed-rate tick loop with an in-memory map: a guard wanders toward the player while a choice is pending, and proximity forces the answer before the player commits.`,
	RunE:  runDemo,
}

func init() {
	demoCmd.Flags().IntVar(&demoTicks, "ticks", 120, "maximum simulation ticks")
	demoCmd.Flags().DurationVar(&demoTickInterval, "tick-interval", 50*time.Millisecond, "delay between ticks")
	demoCmd.Flags().Int32Var(&demoVariableID, "variable", 20, "destination variable slot")
	demoCmd.Flags().StringVar(&demoRedisAddr, "redis", "", "Redis address for the variable store (in-memory when empty)")
}

func runDemo(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repo, err := buildVariableStore()
	if err != nil {
		return err
	}

	gameWorld := world.NewInMemory()
	gameWorld.SetPlayerPosition(entities.Position{X: 8, Y: 8})
	gameWorld.PlaceActor(&world.Actor{
		ID:   guardEntityID,
		Name: "patrolling guard",
		Pos:  entities.Position{X: 0, Y: 0},
	})

	surf := surface.NewHeadless()

	bus := events.NewBus()
	bus.SubscribeFunc(selection.EventSessionResolved, 0, func(ctx context.Context, e events.Event) error {
		result, _ := e.Context().Get("result")
		reason, _ := e.Context().Get("reason")
		slog.Info("resolution event observed", "result", result, "reason", reason)
		return nil
	})

	svc, err := selection.NewOrchestrator(&selection.Config{
		Variables:   repo,
		Surface:     surf,
		Clock:       clock.New(),
		IDGenerator: idgen.NewUUID("choice"),
		EventBus:    bus,
	})
	if err != nil {
		return err
	}

	monitor, err := distance.NewMonitor(&distance.Config{
		Selection: svc,
		World:     gameWorld,
	})
	if err != nil {
		return err
	}

	eng, err := engine.New(&engine.Config{
		Selection: svc,
		Monitor:   monitor,
	})
	if err != nil {
		return err
	}

	_, err = svc.StartSession(ctx, &selection.StartSessionInput{
		Choices:    []string{"Hide in the cellar", "Bluff your way out", "Run for the gate"},
		VariableID: demoVariableID,
		Trigger: &entities.DistanceTrigger{
			EntityID: guardEntityID,
			Distance: 2,
			Result:   99,
		},
	})
	if err != nil {
		return err
	}

	// A second start while one is pending is a silent no-op
	overlap, err := svc.StartSession(ctx, &selection.StartSessionInput{
		Choices:    []string{"This never displays"},
		VariableID: demoVariableID,
	})
	if err != nil {
		return err
	}
	slog.Info("overlapping start attempted", "started", overlap.Started)

	for tick := 0; tick < demoTicks; tick++ {
		select {
		case <-ctx.Done():
			slog.Info("demo interrupted")
			return nil
		case <-time.After(demoTickInterval):
		}

		moveGuard(ctx, gameWorld)

		if err := eng.Tick(ctx); err != nil {
			return err
		}

		if tick%10 == 0 {
			logState(ctx, repo, gameWorld, tick)
		}

		if _, err := svc.GetActiveSession(ctx, &selection.GetActiveSessionInput{}); err != nil {
			// Session resolved; run a few more ticks so the grace-window
			// reset is visible in the variable log
			for i := 0; i < 5; i++ {
				time.Sleep(demoTickInterval)
				if err := eng.Tick(ctx); err != nil {
					return err
				}
			}
			logState(ctx, repo, gameWorld, tick)
			return nil
		}
	}

	slog.Info("demo finished without resolution")
	return nil
}

func buildVariableStore() (variables.Repository, error) {
	if demoRedisAddr == "" {
		return variables.NewInMemory(), nil
	}

	client, err := redisclient.NewClient(demoRedisAddr, nil)
	if err != nil {
		return nil, err
	}
	return variables.NewRedisRepository(&variables.RedisConfig{Client: client})
}

// moveGuard advances the guard one tile per tick, usually toward the player.
// The roll keeps the approach from being a straight line.
func moveGuard(ctx context.Context, w *world.InMemoryWorld) {
	playerPos, err := w.PlayerPosition(ctx)
	if err != nil {
		return
	}
	guardPos, err := w.EntityPosition(ctx, guardEntityID)
	if err != nil {
		return
	}

	roll, err := dice.NewRoll(1, 4)
	if err != nil {
		return
	}

	dx := playerPos.X - guardPos.X
	dy := playerPos.Y - guardPos.Y

	preferX := abs(dx) >= abs(dy)
	if roll.GetValue() == 4 {
		// One tick in four, wander on the other axis
		preferX = !preferX
	}

	switch {
	case preferX && dx != 0:
		guardPos.X += sign(dx)
	case dy != 0:
		guardPos.Y += sign(dy)
	case dx != 0:
		guardPos.X += sign(dx)
	}

	w.MoveActor(guardEntityID, guardPos)
}

func logState(ctx context.Context, repo variables.Repository, w *world.InMemoryWorld, tick int) {
	playerPos, _ := w.PlayerPosition(ctx)
	guardPos, err := w.EntityPosition(ctx, guardEntityID)
	if err != nil {
		return
	}

	value := int32(0)
	if demoVariableID > 0 {
		if out, err := repo.Get(ctx, &variables.GetInput{ID: demoVariableID}); err == nil {
			value = out.Value
		}
	}

	slog.Info("world state",
		"tick", tick,
		"guard_distance", playerPos.ManhattanDistance(guardPos),
		"variable", value,
	)
}

func abs(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int32) int32 {
	if v < 0 {
		return -1
	}
	if v > 0 {
		return 1
	}
	return 0
}

// internal/system/economy_test.go
package system

import (
	"errors"
	"testing"

	"go-lane-defense/internal/component"
	"go-lane-defense/internal/event"
	"go-lane-defense/internal/types"
)

type recordingListener struct {
	events []event.Event
}

func (l *recordingListener) OnEvent(e event.Event) {
	l.events = append(l.events, e)
}

func (l *recordingListener) count(t event.EventType) int {
	n := 0
	for _, e := range l.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func TestEconomyWaveAdvance(t *testing.T) {
	ecs := newTestECS()
	dispatcher := event.NewDispatcher()
	eco := NewEconomySystem(ecs, dispatcher)

	eco.Update(29.9)
	if ecs.Status.Wave != 1 {
		t.Errorf("wave = %d after 29.9s, want 1", ecs.Status.Wave)
	}
	eco.Update(0.2)
	if ecs.Status.Wave != 2 {
		t.Errorf("wave = %d after 30.1s, want 2", ecs.Status.Wave)
	}
}

func TestEconomyWaveAdvanceSkipsAhead(t *testing.T) {
	ecs := newTestECS()
	dispatcher := event.NewDispatcher()
	listener := &recordingListener{}
	dispatcher.Subscribe(event.WaveStarted, listener)
	eco := NewEconomySystem(ecs, dispatcher)

	// Один большой тик должен проскочить несколько порогов разом.
	eco.Update(100)
	if ecs.Status.Wave != 4 {
		t.Errorf("wave = %d after 100s, want 4", ecs.Status.Wave)
	}
	if got := listener.count(event.WaveStarted); got != 3 {
		t.Errorf("WaveStarted dispatched %d times, want 3", got)
	}
}

func TestEconomyTrySpend(t *testing.T) {
	ecs := newTestECS()
	eco := NewEconomySystem(ecs, event.NewDispatcher())

	if err := eco.TrySpend(100); err != nil {
		t.Fatalf("TrySpend(100) with 300 gold failed: %v", err)
	}
	if ecs.Status.Gold != 200 {
		t.Errorf("gold = %d after spending 100, want 200", ecs.Status.Gold)
	}

	err := eco.TrySpend(201)
	if !errors.Is(err, ErrInsufficientFunds) {
		t.Errorf("TrySpend(201) with 200 gold: got %v, want ErrInsufficientFunds", err)
	}
	if ecs.Status.Gold != 200 {
		t.Errorf("gold = %d after rejected spend, want 200 unchanged", ecs.Status.Gold)
	}
}

func TestEconomyLoseLifeGameOver(t *testing.T) {
	ecs := newTestECS()
	ecs.Status.Lives = 2
	dispatcher := event.NewDispatcher()
	listener := &recordingListener{}
	dispatcher.Subscribe(event.GameOver, listener)
	eco := NewEconomySystem(ecs, dispatcher)

	eco.LoseLife()
	if ecs.Status.Lives != 1 || !ecs.Status.Running {
		t.Errorf("after first loss: lives = %d, running = %v, want 1/true", ecs.Status.Lives, ecs.Status.Running)
	}

	eco.LoseLife()
	if ecs.Status.Lives != 0 {
		t.Errorf("lives = %d, want 0", ecs.Status.Lives)
	}
	if ecs.Status.Running {
		t.Error("game still running at zero lives")
	}
	if got := listener.count(event.GameOver); got != 1 {
		t.Errorf("GameOver dispatched %d times, want 1", got)
	}

	// Партия остановлена: дальнейшие потери не уводят жизни в минус.
	eco.LoseLife()
	if ecs.Status.Lives != 0 {
		t.Errorf("lives = %d after loss on stopped game, want 0", ecs.Status.Lives)
	}
}

func TestEconomyBountyOnKill(t *testing.T) {
	ecs := newTestECS()
	dispatcher := event.NewDispatcher()
	NewEconomySystem(ecs, dispatcher)

	id := ecs.NewEntity()
	ecs.Enemies[id] = &component.Enemy{DefID: "ENEMY_GRUNT", Bounty: 7}

	dispatcher.Dispatch(event.Event{Type: event.EnemyKilled, Data: id})
	if ecs.Status.Gold != 307 {
		t.Errorf("gold = %d after kill, want 307", ecs.Status.Gold)
	}

	// Событие про уже удалённого врага золота не приносит.
	dispatcher.Dispatch(event.Event{Type: event.EnemyKilled, Data: types.EntityID(999)})
	if ecs.Status.Gold != 307 {
		t.Errorf("gold = %d after stale kill event, want 307", ecs.Status.Gold)
	}
}

// internal/system/economy.go
package system

import (
	"errors"

	"go-lane-defense/internal/config"
	"go-lane-defense/internal/entity"
	"go-lane-defense/internal/event"
	"go-lane-defense/internal/types"
)

// ErrInsufficientFunds возвращается, когда на действие не хватает золота.
// Состояние при этом не меняется.
var ErrInsufficientFunds = errors.New("insufficient funds")

// EconomySystem владеет золотом, жизнями и счётчиком волн.
type EconomySystem struct {
	ecs        *entity.ECS
	dispatcher *event.Dispatcher
}

func NewEconomySystem(ecs *entity.ECS, dispatcher *event.Dispatcher) *EconomySystem {
	s := &EconomySystem{ecs: ecs, dispatcher: dispatcher}
	dispatcher.Subscribe(event.EnemyKilled, s)
	dispatcher.Subscribe(event.EnemyReachedKeep, s)
	return s
}

// Update накапливает игровое время и двигает счётчик волн: волна N длится,
// пока Elapsed не пересечёт N*WaveDuration. Счётчик только растёт.
func (s *EconomySystem) Update(deltaTime float64) {
	st := s.ecs.Status
	st.Elapsed += deltaTime
	for st.Elapsed >= float64(st.Wave)*config.WaveDuration {
		st.Wave++
		s.dispatcher.Dispatch(event.Event{Type: event.WaveStarted, Data: st.Wave})
	}
}

// TrySpend списывает amount, если золота хватает; иначе возвращает
// ErrInsufficientFunds и ничего не трогает.
func (s *EconomySystem) TrySpend(amount int) error {
	st := s.ecs.Status
	if amount > st.Gold {
		return ErrInsufficientFunds
	}
	st.Gold -= amount
	return nil
}

// Credit безусловно добавляет золото (награда за врага).
func (s *EconomySystem) Credit(amount int) {
	s.ecs.Status.Gold += amount
}

// LoseLife снимает одну жизнь. На нуле партия останавливается насовсем:
// Running сбрасывается, диспетчеризуется GameOver.
func (s *EconomySystem) LoseLife() {
	st := s.ecs.Status
	if !st.Running || st.Lives <= 0 {
		return
	}
	st.Lives--
	if st.Lives == 0 {
		st.Running = false
		s.dispatcher.Dispatch(event.Event{Type: event.GameOver})
	}
}

// OnEvent реализует event.Listener.
func (s *EconomySystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemyKilled:
		id, ok := e.Data.(types.EntityID)
		if !ok {
			return
		}
		// Враг ещё в реестре: событие уходит до удаления компонентов.
		if enemy, alive := s.ecs.Enemies[id]; alive {
			s.Credit(enemy.Bounty)
		}
	case event.EnemyReachedKeep:
		s.LoseLife()
	}
}

// internal/state/game_state.go
package state

import (
	"github.com/Blckburn/CORE/internal/event"
	"github.com/Blckburn/CORE/internal/interfaces"
	"github.com/Blckburn/CORE/internal/logging"
	"github.com/Blckburn/CORE/internal/ui"
)

var (
	_ State = (*PlayingState)(nil)
	_ State = (*GameOverState)(nil)
)

// PlayingState — игровой экран. Пауза живёт внутри app.Game.
type PlayingState struct {
	sm  *StateMachine
	env *Env
}

func NewPlayingState(sm *StateMachine, env *Env) *PlayingState {
	return &PlayingState{sm: sm, env: env}
}

func (s *PlayingState) Enter() {
	logging.Logger.Info().Msg("Entered playing state")
}

func (s *PlayingState) Update(deltaTime float64) {
	g := s.env.Game
	g.Update(deltaTime)

	if g.ConsumeMenuRequest() {
		g.Reset()
		s.sm.SetState(NewMainMenuState(s.sm, s.env))
		return
	}
	if g.IsGameOver() {
		s.sm.SetState(NewGameOverState(s.sm, s.env))
	}
}

func (s *PlayingState) Draw() {
	s.env.Game.Draw()
}

func (s *PlayingState) Exit() {}

// GameOverState — замороженная сцена под меню Restart / Main Menu и итоги партии.
type GameOverState struct {
	sm      *StateMachine
	env     *Env
	nav     menuNavigator
	summary ui.GameOverSummary
}

func NewGameOverState(sm *StateMachine, env *Env) *GameOverState {
	return &GameOverState{sm: sm, env: env, nav: menuNavigator{menu: ui.NewGameOverMenu()}}
}

// Enter снимает итоги до того, как рестарт их обнулит.
func (s *GameOverState) Enter() {
	g := s.env.Game
	s.summary = ui.GameOverSummary{
		Wave:          g.WaveManager.GetCurrentWave(),
		Score:         g.WaveManager.GetScore(),
		Kills:         g.Telemetry.Total(event.EnemyDestroyed),
		TurretsPlaced: g.Telemetry.Total(event.TurretPlaced),
		ItemsFound:    g.Telemetry.Total(event.ItemPickedUp),
	}
	logging.Logger.Info().
		Int("wave", s.summary.Wave).
		Int("score", s.summary.Score).
		Int64("kills", s.summary.Kills).
		Msg("Game over screen")
}

func (s *GameOverState) Update(deltaTime float64) {
	if s.env.Input.IsKeyPressed(interfaces.KeyEscape) {
		s.toMainMenu()
		return
	}
	if !s.nav.update(s.env.Input, s.env.Renderer) {
		return
	}
	switch s.nav.menu.Selected {
	case 0:
		s.env.Game.Restart()
		s.sm.SetState(NewPlayingState(s.sm, s.env))
	case 1:
		s.toMainMenu()
	}
}

func (s *GameOverState) toMainMenu() {
	s.env.Game.Reset()
	s.sm.SetState(NewMainMenuState(s.sm, s.env))
}

func (s *GameOverState) Draw() {
	s.env.Game.Draw()
	s.nav.menu.Draw(s.env.Renderer, true)
	ui.DrawGameOverSummary(s.env.Renderer, s.summary)
}

func (s *GameOverState) Exit() {}

func (s *GameOverState) Summary() ui.GameOverSummary {
	return s.summary
}

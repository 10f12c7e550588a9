// internal/state/menu_state.go
package state

import (
	"github.com/Blckburn/CORE/internal/interfaces"
	"github.com/Blckburn/CORE/internal/logging"
	"github.com/Blckburn/CORE/internal/ui"
)

// Убеждаемся, что экраны меню соответствуют интерфейсу State
var (
	_ State = (*MainMenuState)(nil)
	_ State = (*OptionsState)(nil)
)

// menuNavigator — общая навигация по ui.Menu: стрелки и W/S, наведение мышью,
// Enter или клик активируют пункт. Наведение меняет выбор только когда курсор
// сдвинулся, чтобы не мешать клавиатуре.
type menuNavigator struct {
	menu         *ui.Menu
	lastX, lastY float32
}

// update возвращает true, если выбранный пункт активирован в этом кадре.
func (n *menuNavigator) update(in interfaces.Input, r interfaces.Renderer) bool {
	if in.IsKeyPressed(interfaces.KeyUp) || in.IsKeyPressed(interfaces.KeyW) {
		n.menu.Prev()
	}
	if in.IsKeyPressed(interfaces.KeyDown) || in.IsKeyPressed(interfaces.KeyS) {
		n.menu.Next()
	}

	x, y := in.FramebufferCursorPosition()
	moved := x != n.lastX || y != n.lastY
	n.lastX, n.lastY = x, y

	clicked := in.IsMouseButtonPressed(interfaces.MouseLeft)
	hovered := n.menu.ItemAt(x, y, r.Width(), r.Height())
	if hovered >= 0 && (moved || clicked) {
		n.menu.Selected = hovered
	}

	return in.IsKeyPressed(interfaces.KeyEnter) || (clicked && hovered >= 0)
}

// MainMenuState — главное меню: Start Game, Options, Exit.
type MainMenuState struct {
	sm  *StateMachine
	env *Env
	nav menuNavigator
}

func NewMainMenuState(sm *StateMachine, env *Env) *MainMenuState {
	return &MainMenuState{sm: sm, env: env, nav: menuNavigator{menu: ui.NewMainMenu()}}
}

func (s *MainMenuState) Enter() {
	logging.Logger.Debug().Msg("Entered main menu")
}

func (s *MainMenuState) Update(deltaTime float64) {
	if !s.nav.update(s.env.Input, s.env.Renderer) {
		return
	}
	switch s.nav.menu.Selected {
	case 0:
		s.env.Game.Start()
		s.sm.SetState(NewPlayingState(s.sm, s.env))
	case 1:
		s.sm.SetState(NewOptionsState(s.sm, s.env))
	case 2:
		logging.Logger.Info().Msg("Exit requested")
		s.sm.RequestQuit()
	}
}

func (s *MainMenuState) Draw() {
	s.nav.menu.Draw(s.env.Renderer, false)
}

func (s *MainMenuState) Exit() {}

// Menu отдаёт меню экрана (для тестов и отрисовки).
func (s *MainMenuState) Menu() *ui.Menu {
	return s.nav.menu
}

// OptionsState — выбор разрешения окна. Последний пункт и Esc возвращают в главное меню.
type OptionsState struct {
	sm  *StateMachine
	env *Env
	nav menuNavigator
}

func NewOptionsState(sm *StateMachine, env *Env) *OptionsState {
	return &OptionsState{sm: sm, env: env, nav: menuNavigator{menu: ui.NewOptionsMenu()}}
}

func (s *OptionsState) Enter() {}

func (s *OptionsState) Update(deltaTime float64) {
	if s.env.Input.IsKeyPressed(interfaces.KeyEscape) {
		s.back()
		return
	}
	if !s.nav.update(s.env.Input, s.env.Renderer) {
		return
	}

	i := s.nav.menu.Selected
	if i >= len(ui.Resolutions) {
		s.back()
		return
	}
	res := ui.Resolutions[i]
	logging.Logger.Info().Int("width", res[0]).Int("height", res[1]).Msg("Applying resolution")
	if s.env.Window != nil {
		s.env.Window.SetWindowSize(res[0], res[1])
	}
}

func (s *OptionsState) back() {
	s.sm.SetState(NewMainMenuState(s.sm, s.env))
}

func (s *OptionsState) Draw() {
	s.nav.menu.Draw(s.env.Renderer, false)
}

func (s *OptionsState) Exit() {}

func (s *OptionsState) Menu() *ui.Menu {
	return s.nav.menu
}

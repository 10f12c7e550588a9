// internal/state/state.go
package state

import (
	"github.com/Blckburn/CORE/internal/app"
	"github.com/Blckburn/CORE/internal/interfaces"
)

// State — интерфейс для всех экранов
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw()
	Exit()
}

// Env — общие коллабораторы экранов.
type Env struct {
	Game     *app.Game
	Input    interfaces.Input
	Renderer interfaces.Renderer
	Window   interfaces.WindowSizer // может быть nil, тогда смена разрешения только логируется
}

// StateMachine — структура для управления экранами
type StateMachine struct {
	current State
	quit    bool
}

// NewStateMachine создаёт новую машину состояний без начального состояния
func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState устанавливает новое состояние
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter()
	}
}

func (sm *StateMachine) Current() State {
	return sm.current
}

// Update обновляет текущее состояние
func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
}

// Draw отрисовывает текущее состояние
func (sm *StateMachine) Draw() {
	if sm.current != nil {
		sm.current.Draw()
	}
}

// RequestQuit просит приложение завершиться (пункт Exit главного меню).
func (sm *StateMachine) RequestQuit() {
	sm.quit = true
}

func (sm *StateMachine) Quit() bool {
	return sm.quit
}

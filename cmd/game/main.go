// cmd/game/main.go
package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/Blckburn/CORE/internal/app"
	"github.com/Blckburn/CORE/internal/config"
	"github.com/Blckburn/CORE/internal/logging"
	"github.com/Blckburn/CORE/internal/state"
	"github.com/Blckburn/CORE/pkg/camera"
	"github.com/Blckburn/CORE/pkg/input"
	"github.com/Blckburn/CORE/pkg/raycast"
	"github.com/Blckburn/CORE/pkg/render"
	"github.com/hajimehoshi/ebiten/v2"
)

// AppGame связывает цикл ebiten с машиной состояний экранов.
type AppGame struct {
	stateMachine   *state.StateMachine
	input          *input.Ebiten
	renderer       *render.WireRenderer
	camera         *camera.Orbit
	lastUpdateTime time.Time
	layoutW        int
	layoutH        int
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now

	a.input.Update()
	a.stateMachine.Update(deltaTime)
	if a.stateMachine.Quit() {
		return ebiten.Termination
	}
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	a.renderer.SetScreen(screen)
	a.stateMachine.Draw()
}

// Layout отдаёт кадровый буфер в физических пикселях, чтобы на HiDPI
// каркас и текст оставались чёткими.
func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	scale := 1.0
	if m := ebiten.Monitor(); m != nil && m.DeviceScaleFactor() > 0 {
		scale = m.DeviceScaleFactor()
	}
	w, h := int(float64(outsideWidth)*scale), int(float64(outsideHeight)*scale)
	if w != a.layoutW || h != a.layoutH {
		a.layoutW, a.layoutH = w, h
		a.camera.SetAspect(float32(w) / float32(max(h, 1)))
	}
	return w, h
}

// windowSizer меняет размер окна из экрана настроек.
type windowSizer struct{}

func (windowSizer) SetWindowSize(width, height int) {
	ebiten.SetWindowSize(width, height)
}

func run() error {
	if err := config.Load("."); err != nil {
		return err
	}
	cfg, err := config.Get()
	if err != nil {
		return err
	}
	if err := logging.Setup(cfg.Logging.Level, cfg.Logging.GraylogAddress); err != nil {
		return err
	}

	cam := camera.NewOrbit(cfg.Camera)
	renderer := render.NewWireRenderer()
	in := input.New()
	game, err := app.NewGame(cfg, renderer, in, cam, raycast.New())
	if err != nil {
		return err
	}

	sm := state.NewStateMachine()
	env := &state.Env{Game: game, Input: in, Renderer: renderer, Window: windowSizer{}}
	sm.SetState(state.NewMainMenuState(sm, env))

	appGame := &AppGame{
		stateMachine:   sm,
		input:          in,
		renderer:       renderer,
		camera:         cam,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	logging.Logger.Info().Int("width", cfg.Window.Width).Int("height", cfg.Window.Height).Msg("Starting")
	if err := ebiten.RunGame(appGame); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

func main() {
	if err := run(); err != nil {
		// до logging.Setup логгер молчит, поэтому дублируем в stderr
		logging.Logger.Error().Err(err).Msg("Fatal error")
		fmt.Fprintf(os.Stderr, "core: %v\n", err)
		os.Exit(1)
	}
}

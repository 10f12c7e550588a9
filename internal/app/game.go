// internal/app/game.go
package app

import (
	"errors"
	"fmt"

	"github.com/Blckburn/CORE/internal/assets"
	"github.com/Blckburn/CORE/internal/component"
	"github.com/Blckburn/CORE/internal/config"
	"github.com/Blckburn/CORE/internal/entity"
	"github.com/Blckburn/CORE/internal/event"
	"github.com/Blckburn/CORE/internal/interfaces"
	"github.com/Blckburn/CORE/internal/logging"
	"github.com/Blckburn/CORE/internal/system"
	"github.com/Blckburn/CORE/internal/telemetry"
	"github.com/Blckburn/CORE/internal/ui"
	"github.com/Blckburn/CORE/internal/utils"
	"github.com/go-gl/mathgl/mgl32"
)

var (
	ErrNilRenderer  = errors.New("renderer is nil")
	ErrNilInput     = errors.New("input is nil")
	ErrNilCamera    = errors.New("camera is nil")
	ErrNilRayCaster = errors.New("ray caster is nil")
)

const (
	restartHoldTime   = 2.0  // столько держать R для рестарта
	rightClickMaxHold = 0.15 // короче — это клик выбора, а не вращение
	rightRotateDelay  = 0.05 // дольше — вращаем камеру мышью

	keyRotateYaw   = 10
	keyRotatePitch = 5
	keyZoomStep    = 2
)

// Game — состояние игрового экрана: все системы, коллабораторы и состояние
// взаимодействия с игроком.
type Game struct {
	cfg config.Config

	renderer  interfaces.Renderer
	input     interfaces.Input
	camera    interfaces.Camera
	rayCaster interfaces.RayCaster

	EventDispatcher   *event.Dispatcher
	RNG               *utils.PRNGService
	Meshes            *assets.MeshManager
	Telemetry         *telemetry.Recorder
	WaveManager       *system.WaveManager
	Spawner           *system.EnemySpawner
	TurretManager     *system.TurretManager
	ProjectileManager *system.ProjectileManager
	ItemDatabase      *system.ItemDatabase
	ItemManager       *system.ItemManager

	dropPolicy DropPolicy

	hud           *ui.HUD
	turretMenu    *ui.TurretMenu
	inventoryGrid *ui.InventoryGrid

	paused bool

	placementMode     bool
	placementDistance float32
	turretCost        int
	previewPos        mgl32.Vec3
	previewValid      bool
	hasPreview        bool

	hoveredItem    *component.Item
	hoveredTurret  entity.Handle
	selectedTurret entity.Handle
	menuOpen       bool
	menuPos        mgl32.Vec3
	selectedSlot   int // выбранная стопка инвентаря, -1 — ничего

	restartHold   float32
	rightHold     float32
	rightWasDown  bool
	menuRequested bool
}

// NewGame собирает все системы и связывает их через общий диспетчер событий.
func NewGame(cfg config.Config, renderer interfaces.Renderer, input interfaces.Input, camera interfaces.Camera, rayCaster interfaces.RayCaster) (*Game, error) {
	switch {
	case renderer == nil:
		return nil, ErrNilRenderer
	case input == nil:
		return nil, ErrNilInput
	case camera == nil:
		return nil, ErrNilCamera
	case rayCaster == nil:
		return nil, ErrNilRayCaster
	}

	eventDispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(cfg.Seed)

	recorder, err := telemetry.NewRecorder(eventDispatcher)
	if err != nil {
		return nil, fmt.Errorf("failed to set up telemetry: %w", err)
	}

	g := &Game{
		cfg:               cfg,
		renderer:          renderer,
		input:             input,
		camera:            camera,
		rayCaster:         rayCaster,
		EventDispatcher:   eventDispatcher,
		RNG:               rng,
		Meshes:            assets.NewMeshManager(),
		Telemetry:         recorder,
		WaveManager:       system.NewWaveManager(cfg.Wave, eventDispatcher),
		Spawner:           system.NewEnemySpawner(cfg.Spawner, eventDispatcher, rng),
		TurretManager:     system.NewTurretManager(cfg.Turret, eventDispatcher),
		ProjectileManager: system.NewProjectileManager(cfg.Projectile, eventDispatcher),
		ItemDatabase:      system.NewItemDatabase(),
		hud:               ui.NewHUD(),
		turretMenu:        ui.NewTurretMenu(),
		inventoryGrid:     ui.NewInventoryGrid(),
		placementDistance: cfg.Placement.Distance,
		turretCost:        cfg.Turret.InitialCost,
		selectedSlot:      -1,
	}
	g.ItemManager = system.NewItemManager(cfg.Item, g.ItemDatabase, eventDispatcher, rng)
	g.dropPolicy = NewChanceDropPolicy(cfg.Loot.DropChance, rng)

	g.WaveManager.SetEnemySpawner(g.Spawner)
	g.Spawner.SetDifficultySource(g.WaveManager)
	g.TurretManager.SetProjectileSpawner(g.ProjectileManager)

	eventDispatcher.Subscribe(event.EnemyDestroyed, &lootListener{game: g})
	gameListener := &GameEventListener{game: g}
	eventDispatcher.Subscribe(event.GameOver, gameListener)
	eventDispatcher.Subscribe(event.TurretSold, gameListener)

	camera.SetAspect(float32(renderer.Width()) / float32(max(renderer.Height(), 1)))

	logging.Logger.Info().Int64("seed", cfg.Seed).Msg("Game created")
	return g, nil
}

// SetDropPolicy заменяет политику выпадения предметов. nil отключает выпадение.
func (g *Game) SetDropPolicy(p DropPolicy) {
	g.dropPolicy = p
}

// GameEventListener обрабатывает события, важные для основного игрового цикла.
type GameEventListener struct {
	game *Game
}

// OnEvent реализует интерфейс event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.GameOver:
		l.game.placementMode = false
		l.game.hasPreview = false
		l.game.closeTurretMenu()
	case event.TurretSold:
		// турель могли убрать в обход меню; выбор по устаревшему Handle не держим
		if !l.game.TurretManager.Turrets().Contains(l.game.selectedTurret) {
			l.game.closeTurretMenu()
		}
	}
}

// Start начинает новую партию с чистого поля.
func (g *Game) Start() {
	g.Reset()
	g.WaveManager.StartGame()
}

// Restart — то же, что Start; вызывается удержанием R и из экрана Game Over.
func (g *Game) Restart() {
	logging.Logger.Info().Int("wave", g.WaveManager.GetCurrentWave()).Msg("Restarting game")
	g.Start()
}

// Reset очищает поле и состояние взаимодействия, не запуская волны.
func (g *Game) Reset() {
	g.Spawner.ClearAll()
	g.TurretManager.ClearAll()
	g.ProjectileManager.ClearAll()
	g.ItemManager.ClearAll()
	g.Telemetry.Reset()

	g.turretCost = g.cfg.Turret.InitialCost
	g.placementMode = false
	g.placementDistance = g.cfg.Placement.Distance
	g.hasPreview = false
	g.previewValid = false
	g.hoveredItem = nil
	g.hoveredTurret = entity.Handle{}
	g.closeTurretMenu()
	g.paused = false
	g.restartHold = 0
	g.rightHold = 0
	g.rightWasDown = false
	g.menuRequested = false
	g.inventoryGrid.IsVisible = false
}

// Tick продвигает симуляцию. Порядок фиксирован: волны, враги, турели, снаряды.
// На паузе ничего не происходит.
func (g *Game) Tick(deltaTime float32) {
	if g.paused {
		return
	}
	g.WaveManager.Update(deltaTime)
	g.Spawner.Update(deltaTime)
	g.TurretManager.Update(deltaTime, g.Spawner.Enemies())
	g.ProjectileManager.Update(deltaTime, g.Spawner.Enemies())
}

// Update обрабатывает ввод игрового экрана и продвигает симуляцию на один кадр.
func (g *Game) Update(deltaTime float64) {
	dt := float32(deltaTime)

	if g.input.IsKeyPressed(interfaces.KeyEscape) {
		if g.menuOpen {
			g.closeTurretMenu()
		} else {
			g.menuRequested = true
			return
		}
	}
	if g.input.IsKeyPressed(interfaces.KeyP) {
		g.TogglePause()
	}
	if g.input.IsKeyPressed(interfaces.KeyI) {
		g.inventoryGrid.Toggle()
	}
	if g.updateRestartHold(dt) {
		return
	}
	if g.input.IsKeyPressed(interfaces.KeyT) {
		g.TogglePlacementMode()
	}

	if g.paused {
		g.hoveredItem = nil
		g.hoveredTurret = entity.Handle{}
		g.input.ConsumeScrollDelta()
		return
	}

	g.updateCamera(dt)
	g.turretMenu.Update()

	if g.placementMode {
		g.updatePlacement(dt)
	} else {
		g.updateHover()
		g.handleLeftClick()
		g.updateRightButton(dt)
	}

	g.Tick(dt)
}

// updateRestartHold считает удержание R. Возвращает true, если игра перезапущена.
func (g *Game) updateRestartHold(dt float32) bool {
	if !g.input.IsKeyDown(interfaces.KeyR) {
		g.restartHold = 0
		return false
	}
	g.restartHold += dt
	if g.restartHold <= restartHoldTime {
		return false
	}
	g.Restart()
	return true
}

func (g *Game) TogglePause() {
	g.paused = !g.paused
	logging.Logger.Info().Bool("paused", g.paused).Msg("Pause toggled")
}

// ConsumeMenuRequest сообщает, что игрок нажал Esc и хочет в главное меню.
func (g *Game) ConsumeMenuRequest() bool {
	r := g.menuRequested
	g.menuRequested = false
	return r
}

func (g *Game) IsPaused() bool                { return g.paused }
func (g *Game) IsGameOver() bool              { return g.WaveManager.IsGameOver() }
func (g *Game) IsPlacementMode() bool         { return g.placementMode }
func (g *Game) PlacementDistance() float32    { return g.placementDistance }
func (g *Game) TurretCost() int               { return g.turretCost }
func (g *Game) IsTurretMenuOpen() bool        { return g.menuOpen }
func (g *Game) SelectedTurret() entity.Handle { return g.selectedTurret }
func (g *Game) HoveredTurret() entity.Handle  { return g.hoveredTurret }
func (g *Game) HoveredItem() *component.Item  { return g.hoveredItem }
func (g *Game) SelectedInventoryIndex() int   { return g.selectedSlot }

// Preview возвращает точку предпросмотра установки и её допустимость.
func (g *Game) Preview() (pos mgl32.Vec3, valid, ok bool) {
	return g.previewPos, g.previewValid, g.hasPreview
}

// cursor — позиция курсора в пикселях кадрового буфера, в них же работают лучи и UI.
func (g *Game) cursor() (float32, float32) {
	return g.input.FramebufferCursorPosition()
}

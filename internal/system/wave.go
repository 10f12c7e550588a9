// internal/system/wave.go
package system

import (
	"github.com/Blckburn/CORE/internal/config"
	"github.com/Blckburn/CORE/internal/defs"
	"github.com/Blckburn/CORE/internal/entity"
	"github.com/Blckburn/CORE/internal/event"
	"github.com/Blckburn/CORE/internal/logging"
	"github.com/go-gl/mathgl/mgl32"
)

// WavePhase — фаза машины состояний волн.
type WavePhase int

const (
	PhaseIdle       WavePhase = iota // StartGame ещё не вызывался
	PhaseWaveDelay                   // Подготовка к следующей волне
	PhaseWaveActive                  // Волна идёт, враги появляются
	PhaseGameOver                    // Ядро разрушено, конечное состояние
)

func (p WavePhase) String() string {
	switch p {
	case PhaseWaveDelay:
		return "WaveDelay"
	case PhaseWaveActive:
		return "WaveActive"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Idle"
	}
}

// EnemySource — тот, кто умеет создать одного врага (EnemySpawner).
type EnemySource interface {
	SpawnEnemy() entity.Handle
}

// WaveManager управляет волнами, очками, здоровьем ядра и валютой.
// Узнаёт о гибели врагов через события EnemyDestroyed и EnemyReachedCore.
type WaveManager struct {
	cfg             config.WaveConfig
	curve           defs.WaveCurve
	eventDispatcher *event.Dispatcher
	spawner         EnemySource

	currentWave int
	waveActive  bool
	gameOver    bool

	enemiesRemaining int
	enemiesSpawned   int
	enemiesToSpawn   int

	waveDelayTimer float32
	spawnTimer     float32
	spawnInterval  float32
	difficulty     float32

	score      int
	coreHealth int
	currency   int
}

// NewWaveManager создаёт менеджер и подписывает его на события врагов.
func NewWaveManager(cfg config.WaveConfig, eventDispatcher *event.Dispatcher) *WaveManager {
	wm := &WaveManager{
		cfg: cfg,
		curve: defs.WaveCurve{
			BaseEnemies:          cfg.BaseEnemies,
			EnemiesPerWave:       cfg.EnemiesPerWave,
			InitialSpawnInterval: cfg.InitialSpawnInterval,
			MinSpawnInterval:     cfg.MinSpawnInterval,
			SpawnIntervalStep:    cfg.SpawnIntervalStep,
			DifficultyStep:       cfg.DifficultyStep,
		},
		eventDispatcher: eventDispatcher,
		spawnInterval:   cfg.InitialSpawnInterval,
		difficulty:      1,
	}
	eventDispatcher.Subscribe(event.EnemyDestroyed, wm)
	eventDispatcher.Subscribe(event.EnemyReachedCore, wm)
	return wm
}

// SetEnemySpawner подключает источник врагов. Без него волна идёт, но никто не появляется.
func (w *WaveManager) SetEnemySpawner(spawner EnemySource) {
	w.spawner = spawner
}

// StartGame сбрасывает все счётчики и запускает подготовку к первой волне.
func (w *WaveManager) StartGame() {
	w.currentWave = 0
	w.waveActive = false
	w.gameOver = false
	w.enemiesRemaining = 0
	w.enemiesSpawned = 0
	w.enemiesToSpawn = 0
	w.spawnTimer = 0
	w.spawnInterval = w.cfg.InitialSpawnInterval
	w.difficulty = 1
	w.score = 0
	w.coreHealth = w.cfg.CoreHealth
	w.currency = w.cfg.StartingCurrency
	w.waveDelayTimer = w.cfg.InitialDelay

	logging.Logger.Info().
		Int("coreHealth", w.coreHealth).
		Int("currency", w.currency).
		Float32("delay", w.waveDelayTimer).
		Msg("Game started")
}

// StartNextWave начинает следующую волну. После Game Over ничего не делает.
func (w *WaveManager) StartNextWave() {
	if w.gameOver {
		return
	}
	w.currentWave++
	w.waveActive = true
	w.enemiesSpawned = 0
	w.spawnTimer = 0
	w.CalculateWaveParameters()
	w.enemiesRemaining = w.enemiesToSpawn

	logging.Logger.Info().
		Int("wave", w.currentWave).
		Int("enemies", w.enemiesToSpawn).
		Float32("interval", w.spawnInterval).
		Float32("difficulty", w.difficulty).
		Msg("Wave started")

	w.eventDispatcher.Dispatch(event.Event{Type: event.WaveStarted, Data: event.WaveData{
		Wave:           w.currentWave,
		EnemiesToSpawn: w.enemiesToSpawn,
		SpawnInterval:  w.spawnInterval,
		Difficulty:     w.difficulty,
		Score:          w.score,
	}})
}

// CalculateWaveParameters пересчитывает размер волны, интервал и сложность
// для текущего номера волны.
func (w *WaveManager) CalculateWaveParameters() {
	wave := w.curve.Wave(w.currentWave)
	w.enemiesToSpawn = wave.EnemiesToSpawn
	w.spawnInterval = wave.SpawnInterval
	w.difficulty = wave.Difficulty
}

func (w *WaveManager) Update(deltaTime float32) {
	if w.gameOver {
		return
	}

	if !w.waveActive {
		if w.waveDelayTimer > 0 {
			w.waveDelayTimer -= deltaTime
			if w.waveDelayTimer <= 0 {
				w.StartNextWave()
			}
		}
		return
	}

	// Таймер сбрасывается в ноль, а не уменьшается: долгий кадр не даёт пачку врагов
	w.spawnTimer += deltaTime
	if w.spawnTimer >= w.spawnInterval && w.enemiesSpawned < w.enemiesToSpawn {
		w.spawnEnemy()
		w.spawnTimer = 0
	}
}

func (w *WaveManager) spawnEnemy() {
	if w.spawner == nil {
		return
	}
	w.spawner.SpawnEnemy()
	w.enemiesSpawned++
}

// OnEnemyDestroyed начисляет очки и валюту за убийство. После конца игры
// счёт заморожен.
func (w *WaveManager) OnEnemyDestroyed(position mgl32.Vec3) {
	if w.gameOver || w.enemiesRemaining <= 0 {
		return
	}
	w.enemiesRemaining--
	w.score++
	w.currency += w.cfg.RewardPerEnemy

	logging.TraceSample.Debug().
		Int("remaining", w.enemiesRemaining).
		Int("currency", w.currency).
		Msg("Enemy destroyed")

	w.checkWaveComplete()
}

// OnEnemyReachedCore снимает одну единицу здоровья ядра. GameOver
// отправляется один раз: дальнейшие прибытия игнорируются.
func (w *WaveManager) OnEnemyReachedCore() {
	if w.gameOver {
		return
	}
	w.coreHealth--
	if w.enemiesRemaining > 0 {
		w.enemiesRemaining--
	}

	logging.Logger.Warn().Int("coreHealth", w.coreHealth).Msg("Enemy reached the core")

	if w.coreHealth <= 0 {
		w.gameOver = true
		w.waveActive = false
		logging.Logger.Info().Int("wave", w.currentWave).Int("score", w.score).Msg("Game over")
		w.eventDispatcher.Dispatch(event.Event{Type: event.GameOver, Data: event.WaveData{
			Wave:  w.currentWave,
			Score: w.score,
		}})
		return
	}
	w.checkWaveComplete()
}

func (w *WaveManager) checkWaveComplete() {
	if !w.waveActive || w.enemiesRemaining != 0 || w.enemiesSpawned < w.enemiesToSpawn {
		return
	}
	w.waveActive = false
	w.waveDelayTimer = w.cfg.DelayBetweenWaves

	logging.Logger.Info().Int("wave", w.currentWave).Int("score", w.score).Msg("Wave completed")
	w.eventDispatcher.Dispatch(event.Event{Type: event.WaveCompleted, Data: event.WaveData{
		Wave:  w.currentWave,
		Score: w.score,
	}})
}

// SpendCurrency списывает amount, только если хватает средств целиком.
func (w *WaveManager) SpendCurrency(amount int) bool {
	if w.currency < amount {
		return false
	}
	w.currency -= amount
	return true
}

// AddCurrency начисляет amount безусловно (награды и возвраты).
func (w *WaveManager) AddCurrency(amount int) {
	w.currency += amount
}

func (w *WaveManager) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemyDestroyed:
		var pos mgl32.Vec3
		if data, ok := e.Data.(event.EnemyData); ok {
			pos = data.Position
		}
		w.OnEnemyDestroyed(pos)
	case event.EnemyReachedCore:
		w.OnEnemyReachedCore()
	}
}

// State возвращает текущую фазу.
func (w *WaveManager) State() WavePhase {
	switch {
	case w.gameOver:
		return PhaseGameOver
	case w.waveActive:
		return PhaseWaveActive
	case w.waveDelayTimer > 0:
		return PhaseWaveDelay
	default:
		return PhaseIdle
	}
}

func (w *WaveManager) GetCurrentWave() int              { return w.currentWave }
func (w *WaveManager) IsWaveActive() bool               { return w.waveActive }
func (w *WaveManager) IsGameOver() bool                 { return w.gameOver }
func (w *WaveManager) GetEnemiesRemaining() int         { return w.enemiesRemaining }
func (w *WaveManager) GetEnemiesSpawned() int           { return w.enemiesSpawned }
func (w *WaveManager) GetEnemiesToSpawn() int           { return w.enemiesToSpawn }
func (w *WaveManager) GetWaveDelayTimer() float32       { return w.waveDelayTimer }
func (w *WaveManager) GetSpawnInterval() float32        { return w.spawnInterval }
func (w *WaveManager) GetDifficultyMultiplier() float32 { return w.difficulty }
func (w *WaveManager) GetScore() int                    { return w.score }
func (w *WaveManager) GetCoreHealth() int               { return w.coreHealth }
func (w *WaveManager) GetCurrency() int                 { return w.currency }

package system

import (
	"testing"

	"github.com/Blckburn/CORE/internal/config"
	"github.com/Blckburn/CORE/internal/event"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWaveManager(t *testing.T, mutate func(cfg *config.WaveConfig)) (*WaveManager, *countingSpawner, *event.Dispatcher) {
	t.Helper()
	cfg := testConfig().Wave
	if mutate != nil {
		mutate(&cfg)
	}
	d := event.NewDispatcher()
	wm := NewWaveManager(cfg, d)
	spawner := &countingSpawner{}
	wm.SetEnemySpawner(spawner)
	return wm, spawner, d
}

func TestWaveManager_IdleUntilStarted(t *testing.T) {
	wm, spawner, _ := newTestWaveManager(t, nil)

	wm.Update(100)

	assert.Equal(t, PhaseIdle, wm.State())
	assert.Equal(t, 0, wm.GetCurrentWave())
	assert.Zero(t, spawner.calls)
}

func TestWaveManager_StartGameEntersDelay(t *testing.T) {
	wm, _, _ := newTestWaveManager(t, nil)

	wm.StartGame()

	assert.Equal(t, PhaseWaveDelay, wm.State())
	assert.InDelta(t, 10.0, wm.GetWaveDelayTimer(), 1e-6)
	assert.Equal(t, 10, wm.GetCoreHealth())
	assert.Equal(t, 6, wm.GetCurrency())
	assert.Equal(t, 0, wm.GetScore())
}

func TestWaveManager_DelayStartsFirstWave(t *testing.T) {
	wm, _, d := newTestWaveManager(t, nil)
	log := listen(d, event.WaveStarted)
	wm.StartGame()

	wm.Update(9.5)
	assert.False(t, wm.IsWaveActive())

	wm.Update(0.5)
	require.True(t, wm.IsWaveActive())
	assert.Equal(t, 1, wm.GetCurrentWave())
	assert.Equal(t, 10, wm.GetEnemiesToSpawn())
	assert.Equal(t, 10, wm.GetEnemiesRemaining())
	assert.InDelta(t, 0.5, wm.GetSpawnInterval(), 1e-6)
	assert.InDelta(t, 1.0, wm.GetDifficultyMultiplier(), 1e-6)

	require.Len(t, log.events, 1)
	data := log.events[0].Data.(event.WaveData)
	assert.Equal(t, 1, data.Wave)
	assert.Equal(t, 10, data.EnemiesToSpawn)
}

func TestWaveManager_SpawnTimerHardReset(t *testing.T) {
	wm, spawner, _ := newTestWaveManager(t, nil)
	wm.StartGame()
	wm.Update(10)
	require.True(t, wm.IsWaveActive())

	// Длинный кадр даёт одного врага, а не пачку
	wm.Update(2.0)
	assert.Equal(t, 1, spawner.calls)
	assert.Equal(t, 1, wm.GetEnemiesSpawned())

	wm.Update(0.25)
	assert.Equal(t, 1, spawner.calls)
	wm.Update(0.25)
	assert.Equal(t, 2, spawner.calls)
}

func TestWaveManager_StopsSpawningAtWaveSize(t *testing.T) {
	wm, spawner, _ := newTestWaveManager(t, func(cfg *config.WaveConfig) { cfg.BaseEnemies = 3 })
	wm.StartGame()
	wm.Update(10)

	for range 10 {
		wm.Update(0.5)
	}
	assert.Equal(t, 3, spawner.calls)
	assert.True(t, wm.IsWaveActive())
}

func TestWaveManager_WaveCompletion(t *testing.T) {
	wm, spawner, d := newTestWaveManager(t, func(cfg *config.WaveConfig) { cfg.BaseEnemies = 3 })
	log := listen(d, event.WaveCompleted)
	wm.StartGame()
	wm.Update(10)
	for range 3 {
		wm.Update(0.5)
	}
	require.Equal(t, 3, spawner.calls)

	for range 3 {
		wm.OnEnemyDestroyed(mgl32.Vec3{})
	}

	assert.False(t, wm.IsWaveActive())
	assert.Equal(t, PhaseWaveDelay, wm.State())
	assert.InDelta(t, 10.0, wm.GetWaveDelayTimer(), 1e-6)
	assert.Equal(t, 3, wm.GetScore())
	assert.Equal(t, 9, wm.GetCurrency())
	assert.Equal(t, 1, log.count(event.WaveCompleted))

	wm.Update(10)
	assert.Equal(t, 2, wm.GetCurrentWave())
	assert.Equal(t, 8, wm.GetEnemiesToSpawn())
	assert.InDelta(t, 1.15, wm.GetDifficultyMultiplier(), 1e-6)
}

func TestWaveManager_DestroyedThroughEvents(t *testing.T) {
	wm, _, d := newTestWaveManager(t, nil)
	wm.StartGame()
	wm.Update(10)

	d.Dispatch(event.Event{Type: event.EnemyDestroyed, Data: event.EnemyData{Position: mgl32.Vec3{1, 0, 0}}})

	assert.Equal(t, 9, wm.GetEnemiesRemaining())
	assert.Equal(t, 1, wm.GetScore())
	assert.Equal(t, 7, wm.GetCurrency())
}

func TestWaveManager_DestroyedIgnoredWithoutRemaining(t *testing.T) {
	wm, _, _ := newTestWaveManager(t, nil)
	wm.StartGame()

	wm.OnEnemyDestroyed(mgl32.Vec3{})

	assert.Equal(t, 0, wm.GetScore())
	assert.Equal(t, 6, wm.GetCurrency())
}

func TestWaveManager_ReachedCoreCountsTowardCompletion(t *testing.T) {
	wm, _, _ := newTestWaveManager(t, func(cfg *config.WaveConfig) { cfg.BaseEnemies = 2 })
	wm.StartGame()
	wm.Update(10)
	wm.Update(0.5)
	wm.Update(0.5)

	wm.OnEnemyReachedCore()
	wm.OnEnemyDestroyed(mgl32.Vec3{})

	assert.Equal(t, 9, wm.GetCoreHealth())
	assert.Equal(t, 1, wm.GetScore())
	assert.False(t, wm.IsWaveActive())
	assert.False(t, wm.IsGameOver())
}

func TestWaveManager_GameOver(t *testing.T) {
	wm, spawner, d := newTestWaveManager(t, func(cfg *config.WaveConfig) { cfg.CoreHealth = 1 })
	log := listen(d, event.GameOver)
	wm.StartGame()
	wm.Update(10)
	require.Equal(t, 1, wm.GetCurrentWave())

	wm.OnEnemyReachedCore()

	assert.Equal(t, 0, wm.GetCoreHealth())
	assert.True(t, wm.IsGameOver())
	assert.False(t, wm.IsWaveActive())
	assert.Equal(t, PhaseGameOver, wm.State())
	assert.Equal(t, 1, log.count(event.GameOver))

	wm.StartNextWave()
	assert.Equal(t, 1, wm.GetCurrentWave())

	wm.Update(100)
	assert.Zero(t, spawner.calls)
}

func TestWaveManager_GameOverIsFinal(t *testing.T) {
	wm, _, d := newTestWaveManager(t, func(cfg *config.WaveConfig) { cfg.CoreHealth = 1 })
	log := listen(d, event.GameOver)
	wm.StartGame()
	wm.StartNextWave()
	score, currency := wm.GetScore(), wm.GetCurrency()

	for range 3 {
		wm.OnEnemyReachedCore()
	}
	wm.OnEnemyDestroyed(mgl32.Vec3{})

	assert.Equal(t, 1, log.count(event.GameOver))
	assert.Equal(t, 0, wm.GetCoreHealth())
	assert.Equal(t, score, wm.GetScore())
	assert.Equal(t, currency, wm.GetCurrency())
}

func TestWaveManager_StartGameAfterGameOver(t *testing.T) {
	wm, _, _ := newTestWaveManager(t, func(cfg *config.WaveConfig) { cfg.CoreHealth = 1 })
	wm.StartGame()
	wm.Update(10)
	wm.OnEnemyReachedCore()
	require.True(t, wm.IsGameOver())

	wm.StartGame()

	assert.False(t, wm.IsGameOver())
	assert.Equal(t, 0, wm.GetCurrentWave())
	assert.Equal(t, 1, wm.GetCoreHealth())
	assert.Equal(t, PhaseWaveDelay, wm.State())
}

func TestWaveManager_SpendCurrency(t *testing.T) {
	wm, _, _ := newTestWaveManager(t, func(cfg *config.WaveConfig) { cfg.StartingCurrency = 5 })
	wm.StartGame()

	assert.False(t, wm.SpendCurrency(10))
	assert.Equal(t, 5, wm.GetCurrency())

	wm.AddCurrency(10)
	assert.True(t, wm.SpendCurrency(10))
	assert.Equal(t, 5, wm.GetCurrency())
}

func TestWaveManager_NoSpawnerStillRunsWave(t *testing.T) {
	d := event.NewDispatcher()
	wm := NewWaveManager(testConfig().Wave, d)
	wm.StartGame()
	wm.Update(10)
	wm.Update(0.5)

	assert.True(t, wm.IsWaveActive())
	assert.Equal(t, 0, wm.GetEnemiesSpawned())
}

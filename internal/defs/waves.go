// internal/defs/waves.go
package defs

// WaveCurve описывает рост сложности от волны к волне.
type WaveCurve struct {
	BaseEnemies          int
	EnemiesPerWave       int
	InitialSpawnInterval float32
	MinSpawnInterval     float32
	SpawnIntervalStep    float32
	DifficultyStep       float32
}

// DefaultWaveCurve — стандартная кривая.
var DefaultWaveCurve = WaveCurve{
	BaseEnemies:          10,
	EnemiesPerWave:       5,
	InitialSpawnInterval: 0.5,
	MinSpawnInterval:     0.15,
	SpawnIntervalStep:    0.03,
	DifficultyStep:       0.15,
}

// WaveDefinition — параметры одной волны.
type WaveDefinition struct {
	Number         int
	EnemiesToSpawn int
	SpawnInterval  float32
	Difficulty     float32
}

// Wave рассчитывает параметры волны n (n >= 1):
//
//	enemies    = base + (n-1)*perWave + (n-1)^2/2
//	interval   = max(min, initial - (n-1)*step)
//	difficulty = 1 + (n-1)*difficultyStep
func (c WaveCurve) Wave(n int) WaveDefinition {
	if n < 1 {
		n = 1
	}
	k := n - 1
	interval := c.InitialSpawnInterval - float32(k)*c.SpawnIntervalStep
	if interval < c.MinSpawnInterval {
		interval = c.MinSpawnInterval
	}
	return WaveDefinition{
		Number:         n,
		EnemiesToSpawn: c.BaseEnemies + k*c.EnemiesPerWave + (k*k)/2,
		SpawnInterval:  interval,
		Difficulty:     1 + float32(k)*c.DifficultyStep,
	}
}

// internal/event/types.go
package event

import "github.com/go-gl/mathgl/mgl32"

const (
	EnemySpawned     EventType = "EnemySpawned"     // Враг появился на кольце
	EnemyDestroyed   EventType = "EnemyDestroyed"   // Враг убит снарядом
	EnemyReachedCore EventType = "EnemyReachedCore" // Враг дошёл до ядра
	WaveStarted      EventType = "WaveStarted"      // Началась волна
	WaveCompleted    EventType = "WaveCompleted"    // Волна закончилась
	GameOver         EventType = "GameOver"         // Ядро разрушено
	ProjectileFired  EventType = "ProjectileFired"
	TurretPlaced     EventType = "TurretPlaced"
	TurretSold       EventType = "TurretSold"
	ItemDropped      EventType = "ItemDropped"
	ItemPickedUp     EventType = "ItemPickedUp"
)

// EnemyData — данные для EnemySpawned, EnemyDestroyed и EnemyReachedCore.
// Position — позиция врага до нанесения урона.
type EnemyData struct {
	Position mgl32.Vec3
	Fast     bool
}

// WaveData — данные для WaveStarted, WaveCompleted и GameOver.
type WaveData struct {
	Wave           int
	EnemiesToSpawn int
	SpawnInterval  float32
	Difficulty     float32
	Score          int
}

// TurretData — данные для TurretPlaced и TurretSold.
type TurretData struct {
	Position mgl32.Vec3
	Cost     int
}

// ItemData — данные для ItemDropped и ItemPickedUp.
type ItemData struct {
	Position mgl32.Vec3
	Name     string
	Rarity   string
}

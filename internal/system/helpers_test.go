package system

import (
	"github.com/Blckburn/CORE/internal/config"
	"github.com/Blckburn/CORE/internal/entity"
	"github.com/Blckburn/CORE/internal/event"
	"github.com/go-gl/mathgl/mgl32"
)

// eventLog собирает все события выбранных типов.
type eventLog struct {
	events []event.Event
}

func (l *eventLog) OnEvent(e event.Event) {
	l.events = append(l.events, e)
}

func (l *eventLog) count(t event.EventType) int {
	n := 0
	for _, e := range l.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func listen(d *event.Dispatcher, types ...event.EventType) *eventLog {
	l := &eventLog{}
	for _, t := range types {
		d.Subscribe(t, l)
	}
	return l
}

// countingSpawner считает вызовы SpawnEnemy.
type countingSpawner struct {
	calls int
}

func (s *countingSpawner) SpawnEnemy() entity.Handle {
	s.calls++
	return entity.Handle{}
}

type shot struct {
	from, targetPos mgl32.Vec3
	target          entity.Handle
	speed, damage   float32
}

// shotRecorder — ProjectileSpawner, который только запоминает выстрелы.
type shotRecorder struct {
	shots []shot
}

func (r *shotRecorder) CreateProjectile(from mgl32.Vec3, target entity.Handle, targetPos mgl32.Vec3, speed, damage float32) bool {
	r.shots = append(r.shots, shot{from: from, targetPos: targetPos, target: target, speed: speed, damage: damage})
	return true
}

type fixedDifficulty float32

func (d fixedDifficulty) GetDifficultyMultiplier() float32 { return float32(d) }

func testConfig() config.Config {
	return config.Default()
}

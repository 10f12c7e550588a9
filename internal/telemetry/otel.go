package telemetry

import (
	"context"
	"fmt"

	"github.com/Blckburn/CORE/internal/event"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/Blckburn/CORE/internal/telemetry"

func meter() metric.Meter {
	return otel.Meter(instrumentationName)
}

// counterNames — имя счётчика для каждого игрового события.
var counterNames = map[event.EventType]string{
	event.EnemySpawned:     "core.enemies.spawned",
	event.EnemyDestroyed:   "core.enemies.destroyed",
	event.EnemyReachedCore: "core.enemies.reached_core",
	event.WaveStarted:      "core.waves.started",
	event.WaveCompleted:    "core.waves.completed",
	event.GameOver:         "core.games.over",
	event.ProjectileFired:  "core.projectiles.fired",
	event.TurretPlaced:     "core.turrets.placed",
	event.TurretSold:       "core.turrets.sold",
	event.ItemDropped:      "core.items.dropped",
	event.ItemPickedUp:     "core.items.picked_up",
}

// Recorder подписывается на события игры и пишет их в OTel-счётчики.
// Без настроенного MeterProvider счётчики ничего не делают. Локальные
// итоги (Total) ведутся всегда, их показывает экран Game Over.
type Recorder struct {
	counters map[event.EventType]metric.Int64Counter
	totals   map[event.EventType]int64
}

// NewRecorder создаёт счётчики и подписывает Recorder на все события.
func NewRecorder(d *event.Dispatcher) (*Recorder, error) {
	m := meter()
	r := &Recorder{
		counters: make(map[event.EventType]metric.Int64Counter, len(counterNames)),
		totals:   make(map[event.EventType]int64, len(counterNames)),
	}
	for t, name := range counterNames {
		c, err := m.Int64Counter(name, metric.WithDescription(fmt.Sprintf("Total %s events", t)))
		if err != nil {
			return nil, fmt.Errorf("failed to create counter %s: %w", name, err)
		}
		r.counters[t] = c
		d.Subscribe(t, r)
	}
	return r, nil
}

func (r *Recorder) OnEvent(e event.Event) {
	r.totals[e.Type]++
	c, ok := r.counters[e.Type]
	if !ok {
		return
	}
	c.Add(context.Background(), 1, metric.WithAttributes(attributesFor(e)...))
}

// Total возвращает число событий данного типа с момента создания или Reset.
func (r *Recorder) Total(t event.EventType) int64 {
	return r.totals[t]
}

// Reset обнуляет локальные итоги (при рестарте игры). OTel-счётчики монотонны.
func (r *Recorder) Reset() {
	clear(r.totals)
}

func attributesFor(e event.Event) []attribute.KeyValue {
	switch data := e.Data.(type) {
	case event.EnemyData:
		return []attribute.KeyValue{attribute.Bool("fast", data.Fast)}
	case event.WaveData:
		return []attribute.KeyValue{attribute.Int("wave", data.Wave)}
	case event.ItemData:
		return []attribute.KeyValue{attribute.String("rarity", data.Rarity)}
	default:
		return nil
	}
}

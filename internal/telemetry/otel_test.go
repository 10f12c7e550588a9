package telemetry

import (
	"testing"

	"github.com/Blckburn/CORE/internal/event"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_CountsEvents(t *testing.T) {
	d := event.NewDispatcher()
	r, err := NewRecorder(d)
	require.NoError(t, err)

	d.Dispatch(event.Event{Type: event.EnemyDestroyed, Data: event.EnemyData{Fast: true}})
	d.Dispatch(event.Event{Type: event.EnemyDestroyed, Data: event.EnemyData{}})
	d.Dispatch(event.Event{Type: event.WaveStarted, Data: event.WaveData{Wave: 1}})
	d.Dispatch(event.Event{Type: event.ItemDropped, Data: event.ItemData{Rarity: "Rare"}})

	assert.Equal(t, int64(2), r.Total(event.EnemyDestroyed))
	assert.Equal(t, int64(1), r.Total(event.WaveStarted))
	assert.Equal(t, int64(1), r.Total(event.ItemDropped))
	assert.Equal(t, int64(0), r.Total(event.TurretSold))
}

func TestRecorder_Reset(t *testing.T) {
	d := event.NewDispatcher()
	r, err := NewRecorder(d)
	require.NoError(t, err)

	d.Dispatch(event.Event{Type: event.ProjectileFired})
	r.Reset()
	assert.Equal(t, int64(0), r.Total(event.ProjectileFired))
}

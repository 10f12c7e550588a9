// internal/component/visual.go
package component

// DamageFlashDuration — сколько секунд враг светится белым после попадания.
const DamageFlashDuration = 0.1

// DamageFlash указывает, что сущность должна быть отрисована цветом урона.
type DamageFlash struct {
	Timer    float32 // Сколько времени эффекту осталось
	Duration float32 // Общая продолжительность эффекта
}

// Trigger перезапускает вспышку.
func (f *DamageFlash) Trigger(duration float32) {
	f.Duration = duration
	f.Timer = duration
}

func (f *DamageFlash) Update(deltaTime float32) {
	if f.Timer > 0 {
		f.Timer = max(0, f.Timer-deltaTime)
	}
}

func (f *DamageFlash) Active() bool {
	return f.Timer > 0
}

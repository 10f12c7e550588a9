// internal/entity/ecs.go
package entity

// Handle — устойчивая ссылка на элемент арены. Поколение отличает
// переиспользованный слот от удалённого элемента, поэтому устаревший
// Handle обнаруживается за O(1). Нулевой Handle никогда не валиден.
type Handle struct {
	index uint32
	gen   uint32
}

// IsZero сообщает, что Handle ни на что не указывает.
func (h Handle) IsZero() bool {
	return h.gen == 0
}

type slot[T any] struct {
	value T
	gen   uint32
	alive bool
}

// Arena — slot map: владелец хранит значения, остальные держат Handle.
type Arena[T any] struct {
	slots []slot[T]
	free  []uint32
	count int
}

// NewArena создаёт пустую арену.
func NewArena[T any]() *Arena[T] {
	return &Arena[T]{}
}

// Insert добавляет значение и возвращает его Handle.
func (a *Arena[T]) Insert(value T) Handle {
	var idx uint32
	if n := len(a.free); n > 0 {
		idx = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		idx = uint32(len(a.slots))
		a.slots = append(a.slots, slot[T]{})
	}
	s := &a.slots[idx]
	s.gen++
	s.value = value
	s.alive = true
	a.count++
	return Handle{index: idx, gen: s.gen}
}

// Get возвращает указатель на значение, если Handle ещё актуален.
func (a *Arena[T]) Get(h Handle) (*T, bool) {
	if h.gen == 0 || int(h.index) >= len(a.slots) {
		return nil, false
	}
	s := &a.slots[h.index]
	if !s.alive || s.gen != h.gen {
		return nil, false
	}
	return &s.value, true
}

// Contains — то же, что Get, без значения.
func (a *Arena[T]) Contains(h Handle) bool {
	_, ok := a.Get(h)
	return ok
}

// Remove освобождает слот. Повторное удаление возвращает false.
func (a *Arena[T]) Remove(h Handle) bool {
	if _, ok := a.Get(h); !ok {
		return false
	}
	s := &a.slots[h.index]
	var zero T
	s.value = zero
	s.alive = false
	a.free = append(a.free, h.index)
	a.count--
	return true
}

// Len — количество живых элементов.
func (a *Arena[T]) Len() int {
	return a.count
}

// Each обходит живые элементы в порядке слотов. Возврат false прерывает обход.
// Удалять элементы внутри fn можно: слот просто освобождается.
func (a *Arena[T]) Each(fn func(h Handle, v *T) bool) {
	for i := range a.slots {
		s := &a.slots[i]
		if !s.alive {
			continue
		}
		if !fn(Handle{index: uint32(i), gen: s.gen}, &s.value) {
			return
		}
	}
}

// RemoveIf удаляет все элементы, для которых pred вернул true, и возвращает их число.
func (a *Arena[T]) RemoveIf(pred func(v *T) bool) int {
	removed := 0
	a.Each(func(h Handle, v *T) bool {
		if pred(v) {
			a.Remove(h)
			removed++
		}
		return true
	})
	return removed
}

// Clear удаляет всё. Поколения слотов сохраняются, так что старые Handle
// остаются недействительными.
func (a *Arena[T]) Clear() {
	a.Each(func(h Handle, _ *T) bool {
		a.Remove(h)
		return true
	})
}

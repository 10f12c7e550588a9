// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// PRNGService — обертка над генератором случайных чисел, чтобы весь
// рандом игры шёл из одного сида и тесты были воспроизводимыми.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService создает новый экземпляр сервиса с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Intn возвращает случайное целое число в диапазоне [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 возвращает случайное число в диапазоне [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Float32Range возвращает случайное число в диапазоне [lo, hi).
func (s *PRNGService) Float32Range(lo, hi float32) float32 {
	return lo + s.rng.Float32()*(hi-lo)
}

// Chance возвращает true с вероятностью p.
func (s *PRNGService) Chance(p float64) bool {
	return s.rng.Float64() < p
}

// ChooseWeighted выполняет взвешенный случайный выбор индекса.
// Возвращает -1 для пустого списка или неположительной суммы весов.
func (s *PRNGService) ChooseWeighted(weights []int) int {
	total := 0
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		return -1
	}

	r := s.Intn(total)
	upto := 0
	for i, w := range weights {
		if upto+w > r {
			return i
		}
		upto += w
	}
	return len(weights) - 1
}

package ui

import (
	"strconv"
	"strings"

	"github.com/Blckburn/CORE/internal/config"
	"github.com/Blckburn/CORE/internal/interfaces"
)

// WaveIndicator отображает номер текущей волны: число и римскими цифрами.
type WaveIndicator struct {
	X, Y float32
}

// NewWaveIndicator создает новый индикатор волны.
func NewWaveIndicator(x, y float32) *WaveIndicator {
	return &WaveIndicator{X: x, Y: y}
}

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// Draw рисует подпись WAVE и номер под ней. Каждая десятая волна красная.
func (i *WaveIndicator) Draw(r interfaces.Renderer, waveNumber int) {
	textColor := config.HighlightColor
	if waveNumber > 0 && waveNumber%10 == 0 {
		textColor = config.WarningColor
	}

	r.DrawText("WAVE", i.X, i.Y, 1, textColor)
	label := strconv.Itoa(waveNumber)
	if roman := toRoman(waveNumber); roman != "" {
		label += "  " + roman
	}
	r.DrawText(label, i.X, i.Y+25, 1, textColor)
}

// internal/logging/logging.go
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/Graylog2/go-gelf/gelf"
	"github.com/rs/zerolog"
)

var (
	// Logger — основной логгер игры, пишет в консоль и (опционально) в Graylog
	Logger = zerolog.Nop()
	// TraceSample — прореженный логгер для покадровых событий
	TraceSample = zerolog.Nop()
	// GraylogWriter — GELF-клиент, если задан logging.graylog_address
	GraylogWriter *gelf.Writer
)

// ParseLevel переводит строковый уровень из конфига в zerolog.Level.
// Неизвестные значения дают InfoLevel.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToUpper(level) {
	case "TRACE":
		return zerolog.TraceLevel
	case "DEBUG":
		return zerolog.DebugLevel
	case "INFO":
		return zerolog.InfoLevel
	case "WARN":
		return zerolog.WarnLevel
	case "ERROR":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Setup настраивает глобальные логгеры. Пустой graylogAddr отключает GELF.
func Setup(level string, graylogAddr string) error {
	return SetupWithWriter(os.Stdout, level, graylogAddr)
}

// SetupWithWriter — то же, что Setup, но с явным консольным выводом.
func SetupWithWriter(out io.Writer, level string, graylogAddr string) error {
	zerolog.SetGlobalLevel(ParseLevel(level))

	writers := []io.Writer{
		zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.RFC3339,
		},
	}

	if graylogAddr != "" {
		w, err := gelf.NewWriter(graylogAddr)
		if err != nil {
			return fmt.Errorf("failed to connect to graylog at %s: %w", graylogAddr, err)
		}
		GraylogWriter = w
		writers = append(writers, w)
	}

	Logger = zerolog.New(zerolog.MultiLevelWriter(writers...)).With().Timestamp().Logger()

	TraceSample = Logger.With().Bool("sampled", true).Logger().Sample(&zerolog.BurstSampler{
		// не более 5 записей за секунду, дальше каждая сотая
		Burst:       5,
		Period:      time.Second,
		NextSampler: &zerolog.BasicSampler{N: 100},
	})

	Logger.Info().Str("loglevel", zerolog.GlobalLevel().String()).Msg("Logging set up")
	return nil
}

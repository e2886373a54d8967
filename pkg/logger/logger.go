package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Logger logger estructurado del servicio. En development escribe consola
// legible; en cualquier otro entorno, una línea JSON por evento.
type Logger struct {
	zl zerolog.Logger
}

// New construye el logger sobre stdout según entorno y nivel mínimo.
// Niveles aceptados: debug, info, warn, error; cualquier otro valor cae en info.
func New(env, level string) *Logger {
	return fromWriter(os.Stdout, env, level)
}

func fromWriter(w io.Writer, env, level string) *Logger {
	if env == "development" {
		w = zerolog.ConsoleWriter{Out: w}
	}
	zl := zerolog.New(w).Level(parseLevel(level)).With().Timestamp().Logger()
	return &Logger{zl: zl}
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Debug, Info, Warn y Error abren un evento en el nivel correspondiente; la
// ingesta usa Warn para filas descartadas e Info para el resumen de cada lote.
func (l *Logger) Debug() *zerolog.Event { return l.zl.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }

// Fatal registra el evento y termina el proceso; solo se usa en el arranque.
func (l *Logger) Fatal() *zerolog.Event { return l.zl.Fatal() }

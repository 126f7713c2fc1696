// Package logger provides structured logging for the seam carver.
package logger

import (
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// Fields holds structured key/value pairs attached to a log line.
type Fields map[string]interface{}

// Logger provides structured logging tagged with a component name.
type Logger interface {
	Info(component, message string, fields Fields)
	Error(component string, err error, fields Fields)
	Warning(component, message string, fields Fields)
	Debug(component, message string, fields Fields)
}

// ZerologAdapter implements Logger on top of zerolog.
type ZerologAdapter struct {
	logger zerolog.Logger
}

// New returns a JSON logger writing to w at the given level.
func New(w io.Writer, level zerolog.Level) *ZerologAdapter {
	zerolog.DurationFieldInteger = true

	l := zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Logger()

	return &ZerologAdapter{logger: l}
}

// Nop returns a logger that discards everything.
func Nop() *ZerologAdapter {
	return &ZerologAdapter{logger: zerolog.Nop()}
}

// ParseLevel maps a level name to a zerolog level, falling back to info.
func ParseLevel(name string) zerolog.Level {
	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(name)))
	if err != nil || name == "" {
		return zerolog.InfoLevel
	}
	return level
}

func (z *ZerologAdapter) Info(component, message string, fields Fields) {
	event := z.logger.Info()
	if !event.Enabled() {
		return
	}
	withFields(event.Str("component", component), fields).Msg(message)
}

func (z *ZerologAdapter) Error(component string, err error, fields Fields) {
	event := z.logger.Error()
	if !event.Enabled() {
		return
	}
	withFields(event.Str("component", component).Err(err), fields).Msg("operation failed")
}

func (z *ZerologAdapter) Warning(component, message string, fields Fields) {
	event := z.logger.Warn()
	if !event.Enabled() {
		return
	}
	withFields(event.Str("component", component), fields).Msg(message)
}

func (z *ZerologAdapter) Debug(component, message string, fields Fields) {
	event := z.logger.Debug()
	if !event.Enabled() {
		return
	}
	withFields(event.Str("component", component), fields).Msg(message)
}

func withFields(event *zerolog.Event, fields Fields) *zerolog.Event {
	for k, v := range fields {
		event = event.Interface(k, v)
	}
	return event
}

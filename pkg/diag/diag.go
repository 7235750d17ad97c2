// pkg/diag/diag.go
package diag

import "go.uber.org/zap"

// Event is a single diagnostic emission from a pipeline stage
type Event struct {
	Stage   string                 // Pipeline stage that emitted the event
	Column  string                 // Column involved, when relevant
	Message string                 // Human-readable progress message
	Fields  map[string]interface{} // Structured detail (counts, fill values, ...)
}

// Sink receives diagnostic events during a pipeline run. Diagnostics
// are informational only: implementations must not fail, so Emit has no
// error return and a broken sink can never mask the result of a run.
type Sink interface {
	Emit(e Event)
}

// ZapSink writes events to a zap logger at info level
type ZapSink struct {
	logger *zap.Logger
}

// NewZapSink creates a sink backed by the given logger
func NewZapSink(logger *zap.Logger) *ZapSink {
	return &ZapSink{logger: logger}
}

// Emit implements Sink
func (s *ZapSink) Emit(e Event) {
	if s.logger == nil {
		return
	}
	fields := make([]zap.Field, 0, len(e.Fields)+2)
	fields = append(fields, zap.String("stage", e.Stage))
	if e.Column != "" {
		fields = append(fields, zap.String("column", e.Column))
	}
	for k, v := range e.Fields {
		fields = append(fields, zap.Any(k, v))
	}
	s.logger.Info(e.Message, fields...)
}

type nopSink struct{}

func (nopSink) Emit(Event) {}

// Nop returns a sink that discards every event
func Nop() Sink {
	return nopSink{}
}

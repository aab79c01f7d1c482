package logger

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Sink writes plain messages at info level.
// The zero value writes to the global zerolog logger.
type Sink struct {
	logger *zerolog.Logger
}

// NewSink returns a Sink writing to l.
func NewSink(l zerolog.Logger) Sink {
	return Sink{logger: &l}
}

// Info writes msg without any additional fields.
func (s Sink) Info(msg string) {
	if s.logger == nil {
		log.Info().Msg(msg)
		return
	}

	s.logger.Info().Msg(msg)
}

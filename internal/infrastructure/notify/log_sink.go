package notify

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/crisiscenter/tracker/internal/core/domain"
)

// LogSink writes notices to the operational log.
type LogSink struct {
	log zerolog.Logger
}

func NewLogSink(log zerolog.Logger) *LogSink {
	return &LogSink{log: log.With().Str("component", "notice").Logger()}
}

func (s *LogSink) Name() string { return "log" }

func (s *LogSink) Deliver(_ context.Context, n domain.Notice) error {
	s.log.Info().
		Str("kind", string(n.Kind)).
		Str("client", n.ClientName).
		Time("at", n.At).
		Msg(n.Message)
	return nil
}

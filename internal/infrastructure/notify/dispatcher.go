// Package notify is the process-side operator dispatcher. It keeps a
// bounded feed of recent notices for consoles to poll and forwards each
// notice through the delivery queue.
package notify

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/crisiscenter/tracker/internal/core/domain"
	"github.com/crisiscenter/tracker/internal/core/ports"
	"github.com/crisiscenter/tracker/internal/pkg/clock"
)

// Enqueuer accepts notices for asynchronous delivery.
type Enqueuer interface {
	Enqueue(n domain.Notice) bool
}

// Dispatcher implements ports.Dispatcher for a process with no interactive
// console attached. Prompts that reach it were not answered by the request
// that triggered them, so it declines: departures are cancelled and
// screenings are recorded as not completed.
type Dispatcher struct {
	feed  *Feed
	queue Enqueuer
	clock clock.Clock
	log   zerolog.Logger
}

var _ ports.Dispatcher = (*Dispatcher)(nil)

// NewDispatcher wires a dispatcher. queue may be nil, in which case notices
// only reach the feed.
func NewDispatcher(feed *Feed, queue Enqueuer, clk clock.Clock, log zerolog.Logger) *Dispatcher {
	if clk == nil {
		clk = clock.Real()
	}
	return &Dispatcher{
		feed:  feed,
		queue: queue,
		clock: clk,
		log:   log.With().Str("component", "dispatcher").Logger(),
	}
}

func (d *Dispatcher) RequestReturnTime(_ context.Context, clientName string) (string, bool) {
	d.log.Info().Str("client", clientName).Msg("no return time supplied, departure cancelled")
	return "", false
}

func (d *Dispatcher) ConfirmSecurityScreening(_ context.Context, clientName string) bool {
	d.log.Info().Str("client", clientName).Msg("no screening confirmation supplied")
	return false
}

func (d *Dispatcher) WarnInvalidInput(_ context.Context, message string) {
	d.log.Warn().Str("reason", message).Msg("invalid input")
	d.feed.Push(domain.Notice{
		Kind:    domain.NoticeInvalidInput,
		Message: message,
		At:      d.clock.Now(),
	})
}

func (d *Dispatcher) NotifyCheckDue(_ context.Context, clientName string) {
	d.publish(domain.Notice{
		Kind:       domain.NoticeCheckDue,
		ClientName: clientName,
		Message:    fmt.Sprintf("Check on %s", clientName),
		At:         d.clock.Now(),
	})
}

func (d *Dispatcher) NotifyShowerEnded(_ context.Context, clientName string) {
	d.publish(domain.Notice{
		Kind:       domain.NoticeShowerEnded,
		ClientName: clientName,
		Message:    fmt.Sprintf("Tell %s their shower time has ended.", clientName),
		At:         d.clock.Now(),
	})
}

func (d *Dispatcher) publish(n domain.Notice) {
	d.feed.Push(n)
	if d.queue != nil {
		d.queue.Enqueue(n)
	}
}

package viewmodel

import "go.uber.org/zap"

type UiEvent int

const (
	UiEventSuccess UiEvent = iota + 1
	UiEventError
)

func (e UiEvent) String() string {
	switch e {
	case UiEventSuccess:
		return "success"
	case UiEventError:
		return "error"
	default:
		return "unknown"
	}
}

const eventBuffer = 16

// Events is a one-shot channel of transient notifications, separate from state:
// each event is delivered to one reader at most once.
type Events struct {
	ch     chan UiEvent
	logger *zap.Logger
}

func newEvents(logger *zap.Logger) *Events {
	return &Events{ch: make(chan UiEvent, eventBuffer), logger: logger}
}

func (e *Events) C() <-chan UiEvent {
	return e.ch
}

func (e *Events) emit(ev UiEvent) {
	select {
	case e.ch <- ev:
	default:
		e.logger.Warn("dropping ui event, nobody is reading", zap.Stringer("event", ev))
	}
}

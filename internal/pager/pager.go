package pager

import (
	"context"
	"sync"
	"time"

	"linkfatec/internal/errors"
	"linkfatec/internal/telemetry"

	"go.uber.org/zap"
)

var tracer = telemetry.GetTracer("linkfatec/pager")

// NoTab is the cursor value before any tab has been loaded.
const NoTab = -1

// Pager loads the content of a tab when the user settles on it. Tab i is
// loaded by loads[i]; a tab is not reloaded while it stays selected.
type Pager struct {
	Clock Clock

	logger *zap.Logger
	window time.Duration
	loads  []func(ctx context.Context)

	mutex   sync.Mutex
	current int
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

func New(logger *zap.Logger, window time.Duration, loads ...func(ctx context.Context)) *Pager {
	return &Pager{
		Clock:   NewRealClock(),
		logger:  logger.Named("pager"),
		window:  window,
		loads:   loads,
		current: NoTab,
	}
}

func (p *Pager) Current() int {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	return p.current
}

// Select moves the cursor to tab and starts its load, cancelling the load of
// the previous tab if it is still running. It reports whether a load started.
func (p *Pager) Select(ctx context.Context, tab int) bool {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if tab == p.current {
		return false
	}
	if tab < 0 || tab >= len(p.loads) {
		p.logger.Warn("ignoring unknown tab", zap.Int("tab", tab))
		return false
	}

	if p.cancel != nil {
		p.cancel()
	}
	p.logger.Debug("loading tab", zap.Int("from", p.current), zap.Int("tab", tab))
	p.current = tab

	loadCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		defer cancel()
		p.load(loadCtx, tab)
	}()
	return true
}

func (p *Pager) load(ctx context.Context, tab int) {
	ctx, span := tracer.Start(ctx, "Pager.load")
	defer span.End()
	span.SetAttributes(telemetry.Int("tab", tab))

	defer func() {
		if r := recover(); r != nil {
			err := errors.FromPanic(r)
			telemetry.Fail(span, err)
			p.logger.Error("tab load panicked", zap.Int("tab", tab), zap.Error(err))
		}
	}()
	p.loads[tab](ctx)
}

// Wait blocks until every started load has returned.
func (p *Pager) Wait() {
	p.wg.Wait()
}

// Run loads the initial tab, unless it is NoTab, and then feeds tab positions
// into Select. Repeated positions are ignored, a position only counts once no
// other arrived for the debounce window, and the first settled position is
// skipped since it is where the pager started.
// Run returns when ctx is done or positions is closed, after the running load
// has finished. A position still pending when positions closes is settled.
func (p *Pager) Run(ctx context.Context, initial int, positions <-chan int) error {
	defer p.wg.Wait()

	if initial != NoTab {
		p.Select(ctx, initial)
	}

	var (
		timer   Timer
		fire    <-chan time.Time
		last    = NoTab
		seen    bool
		pending int
		started bool
	)
	settle := func() {
		fire = nil
		if !started {
			started = true
			p.logger.Debug("initial tab", zap.Int("tab", pending))
			return
		}
		p.Select(ctx, pending)
	}
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case pos, ok := <-positions:
			if !ok {
				if fire != nil {
					timer.Stop()
					settle()
				}
				return nil
			}
			if seen && pos == last {
				continue
			}
			seen, last, pending = true, pos, pos
			if timer != nil {
				timer.Stop()
			}
			timer = p.Clock.NewTimer(p.window)
			fire = timer.C()
		case <-fire:
			settle()
		}
	}
}

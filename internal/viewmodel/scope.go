package viewmodel

import "context"

// scope ties operations to the view-model's lifetime. Once closed, results of
// operations still in flight are dropped.
type scope struct {
	ctx    context.Context
	cancel context.CancelFunc
}

func newScope() scope {
	ctx, cancel := context.WithCancel(context.Background())
	return scope{ctx: ctx, cancel: cancel}
}

// bind derives a context that is cancelled when either parent or the scope ends.
func (s scope) bind(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)
	stop := context.AfterFunc(s.ctx, cancel)
	return ctx, func() {
		stop()
		cancel()
	}
}

// live reports whether a result obtained under ctx may still be delivered.
func (s scope) live(ctx context.Context) bool {
	return s.ctx.Err() == nil && ctx.Err() == nil
}

// closed reports whether the view-model itself is gone, as opposed to one of
// its operations being cancelled.
func (s scope) closed() bool {
	return s.ctx.Err() != nil
}

func (s scope) Close() {
	s.cancel()
}

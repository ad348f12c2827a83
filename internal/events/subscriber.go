package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"linkfatec/internal/models"
	"linkfatec/internal/telemetry"

	"github.com/nats-io/nats.go"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Pusher receives notifications delivered outside of a request.
type Pusher interface {
	Push(n models.Notification)
}

func Subject(studentID int) string {
	return fmt.Sprintf("notifications.student.%d", studentID)
}

// Handler forwards live notifications published for one student to a Pusher.
// A nil connection disables it.
type Handler struct {
	logger *zap.Logger
	nc     *nats.Conn
	tracer trace.Tracer
	target Pusher

	mutex sync.Mutex
	sub   *nats.Subscription
}

func NewHandler(logger *zap.Logger, nc *nats.Conn, tracer trace.Tracer, target Pusher) *Handler {
	return &Handler{
		logger: logger.Named("live_notifications"),
		nc:     nc,
		tracer: tracer,
		target: target,
	}
}

func (h *Handler) Enabled() bool {
	return h.nc != nil
}

// Subscribe starts listening for studentID, replacing any earlier subscription.
func (h *Handler) Subscribe(studentID int) error {
	if h.nc == nil {
		h.logger.Debug("live notifications disabled")
		return nil
	}

	h.mutex.Lock()
	defer h.mutex.Unlock()

	if h.sub != nil {
		if err := h.sub.Unsubscribe(); err != nil {
			h.logger.Warn("failed to drop previous subscription", zap.Error(err))
		}
		h.sub = nil
	}

	subject := Subject(studentID)
	sub, err := h.nc.Subscribe(subject, h.handleNotification)
	if err != nil {
		return fmt.Errorf("subscribe to %s: %w", subject, err)
	}
	h.sub = sub
	h.logger.Info("Registered NATS subscription", zap.String("subject", subject))
	return nil
}

func (h *Handler) Unsubscribe() error {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if h.sub == nil {
		return nil
	}
	err := h.sub.Unsubscribe()
	h.sub = nil
	return err
}

// RegisterLifecycle drops the subscription and closes the connection when the
// application stops.
func (h *Handler) RegisterLifecycle(lc fx.Lifecycle) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			err := h.Unsubscribe()
			if h.nc != nil {
				h.nc.Close()
			}
			return err
		},
	})
}

func (h *Handler) handleNotification(msg *nats.Msg) {
	_, span := h.tracer.Start(context.Background(), "handleNotification")
	defer span.End()

	var n models.Notification
	if err := json.Unmarshal(msg.Data, &n); err != nil {
		telemetry.Fail(span, err)
		h.logger.Error("Failed to decode notification",
			zap.Error(err),
			zap.String("subject", msg.Subject),
		)
		return
	}

	span.SetAttributes(telemetry.Int("notification_id", n.ID))
	h.target.Push(n)
	h.logger.Debug("Received notification",
		zap.Int("notification_id", n.ID),
		zap.String("subject", msg.Subject),
	)
}

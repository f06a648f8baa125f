package job

import (
	"context"
	"log/slog"
	"time"

	"update-sync/utils/logger"

	"github.com/nats-io/nats.go"
)

// JetStreamSubscriber is the part of nats.JetStreamContext the trigger uses.
type JetStreamSubscriber interface {
	Subscribe(subject string, cb nats.MsgHandler, opts ...nats.SubOpt) (*nats.Subscription, error)
}

// acker is the part of *nats.Msg the trigger acknowledges through.
type acker interface {
	Ack(opts ...nats.AckOpt) error
	Nak(opts ...nats.AckOpt) error
}

// NatsSyncTrigger runs a sync pass for every message on the sync subject.
// A successful pass acks the message; a failed one naks it so JetStream
// redelivers later.
type NatsSyncTrigger struct {
	js      JetStreamSubscriber
	subject string
	durable string
	timeout time.Duration
	run     func(ctx context.Context) Result
	logger  *slog.Logger
}

func NewNatsSyncTrigger(js JetStreamSubscriber, subject, durable string, timeout time.Duration, run func(ctx context.Context) Result, log *slog.Logger) *NatsSyncTrigger {
	return &NatsSyncTrigger{
		js:      js,
		subject: subject,
		durable: durable,
		timeout: timeout,
		run:     run,
		logger:  logger.OrDefault(log),
	}
}

// Start subscribes with a durable manual-ack consumer. Handlers run until
// ctx is cancelled, after which the subscription is drained.
func (t *NatsSyncTrigger) Start(ctx context.Context) (*nats.Subscription, error) {
	sub, err := t.js.Subscribe(t.subject, func(msg *nats.Msg) {
		t.handle(ctx, msg)
	}, nats.Durable(t.durable), nats.ManualAck(), nats.AckWait(t.timeout+30*time.Second))
	if err != nil {
		return nil, err
	}
	t.logger.InfoContext(ctx, "listening for sync requests", "subject", t.subject, "durable", t.durable)

	go func() {
		<-ctx.Done()
		if err := sub.Drain(); err != nil {
			t.logger.Warn("failed to drain sync subscription", "error", err)
		}
	}()
	return sub, nil
}

func (t *NatsSyncTrigger) handle(ctx context.Context, msg acker) {
	if ctx.Err() != nil {
		_ = msg.Nak()
		return
	}
	runCtx := ctx
	if t.timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, t.timeout)
		defer cancel()
	}

	if t.run(runCtx) == ResultSuccess {
		if err := msg.Ack(); err != nil {
			t.logger.WarnContext(ctx, "failed to ack sync request", "error", err)
		}
		return
	}
	if err := msg.Nak(); err != nil {
		t.logger.WarnContext(ctx, "failed to nak sync request", "error", err)
	}
}

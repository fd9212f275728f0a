package observe

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/wuerges/try-hard/pkg/tier"
)

// Status labels for the outcome counter.
const (
	StatusOk   = "ok"
	StatusSoft = "soft"
	StatusHard = "hard"
)

// Monitor classifies results by tier: hard failures are alert-worthy, soft
// failures and successes are routine. It never changes a result.
type Monitor struct {
	log      *slog.Logger
	outcomes *prometheus.CounterVec
}

// NewMonitor registers the outcome counter on reg and logs through log.
// Either argument may be nil to skip that channel.
func NewMonitor(log *slog.Logger, reg prometheus.Registerer) *Monitor {
	m := &Monitor{log: log}

	if reg != nil {
		m.outcomes = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "tryhard",
				Name:      "outcomes_total",
				Help:      "Observed results by operation and tier status.",
			},
			[]string{"operation", "status"},
		)
		reg.MustRegister(m.outcomes)
	}

	return m
}

// Observe inspects a result and dispatches on its tier: Failed logs at ERROR
// and counts as hard, Completed(SoftErr) logs at INFO and counts as soft,
// Completed(Ok) counts as ok. The result is returned unchanged so Observe
// can wrap a return expression. Each observation gets its own event id and
// UTC timestamp.
func Observe[T, S, H any](ctx context.Context, m *Monitor, operation string,
	r tier.Result[T, S, H]) tier.Result[T, S, H] {

	status := StatusOk
	switch {
	case r.IsFailed():
		status = StatusHard
	case r.IsSoft():
		status = StatusSoft
	}

	if m.outcomes != nil {
		m.outcomes.WithLabelValues(operation, status).Inc()
	}

	if m.log != nil {
		attrs := []any{
			slog.String("operation", operation),
			slog.String("event_id", uuid.New().String()),
			slog.Time("observed_at", time.Now().UTC()),
			slog.String("status", status),
		}
		switch status {
		case StatusHard:
			m.log.ErrorContext(ctx, "operation failed", append(attrs, slog.Any("hard_error", r.HardErr()))...)
		case StatusSoft:
			m.log.InfoContext(ctx, "operation completed with soft error", append(attrs, slog.Any("soft_error", r.SoftErr()))...)
		default:
			m.log.DebugContext(ctx, "operation completed", attrs...)
		}
	}

	return r
}

// ObserveOutcome is Observe for the inner level alone; there is no hard tier,
// so nothing here ever logs at ERROR.
func ObserveOutcome[T, S any](ctx context.Context, m *Monitor, operation string,
	o tier.Outcome[T, S]) tier.Outcome[T, S] {

	status := StatusOk
	if o.IsSoft() {
		status = StatusSoft
	}

	if m.outcomes != nil {
		m.outcomes.WithLabelValues(operation, status).Inc()
	}

	if m.log != nil {
		attrs := []any{
			slog.String("operation", operation),
			slog.String("event_id", uuid.New().String()),
			slog.Time("observed_at", time.Now().UTC()),
			slog.String("status", status),
		}
		if status == StatusSoft {
			m.log.InfoContext(ctx, "operation completed with soft error", append(attrs, slog.Any("soft_error", o.SoftErr()))...)
		} else {
			m.log.DebugContext(ctx, "operation completed", attrs...)
		}
	}

	return o
}

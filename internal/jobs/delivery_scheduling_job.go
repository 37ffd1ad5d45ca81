package jobs

import (
	"context"
	"log/slog"
	"time"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/robfig/cron/v3"
)

// DefaultDeliverySchedule runs the scheduler at the top of every minute.
const DefaultDeliverySchedule = "0 * * * * *"

// DeliverySchedulingConfig holds the cron expression (with seconds) and the
// constraints every scheduling run applies.
type DeliverySchedulingConfig struct {
	Schedule    string
	MaxDistance int
	MaxOrders   int
}

// DeliverySchedulingJob periodically claims the pending orders due in the
// current hour.
type DeliverySchedulingJob struct {
	handler commands.ScheduleDeliveryCommandHandler
	config  DeliverySchedulingConfig
	now     func() time.Time
	cron    *cron.Cron
	logger  *slog.Logger
}

type Option func(*DeliverySchedulingJob)

// WithClock replaces time.Now as the source of the current hour.
func WithClock(now func() time.Time) Option {
	return func(j *DeliverySchedulingJob) {
		j.now = now
	}
}

func NewDeliverySchedulingJob(
	handler commands.ScheduleDeliveryCommandHandler,
	config DeliverySchedulingConfig,
	logger *slog.Logger,
	opts ...Option,
) *DeliverySchedulingJob {
	if config.Schedule == "" {
		config.Schedule = DefaultDeliverySchedule
	}

	j := &DeliverySchedulingJob{
		handler: handler,
		config:  config,
		now:     time.Now,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "delivery_scheduling_job"),
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// Start registers the run with cron. An invalid expression is reported here.
func (j *DeliverySchedulingJob) Start() error {
	_, err := j.cron.AddFunc(j.config.Schedule, func() {
		ctx := context.Background()
		if _, err := j.Run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Delivery scheduling job failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delivery scheduling job started", "schedule", j.config.Schedule)
	return nil
}

// Run performs one scheduling pass for the current hour.
func (j *DeliverySchedulingJob) Run(ctx context.Context) ([]order.ID, error) {
	hour := j.now().Hour()
	cmd := commands.NewScheduleDeliveryCommand(hour, j.config.MaxDistance, j.config.MaxOrders)

	ids, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		return nil, err
	}

	if len(ids) > 0 {
		j.logger.InfoContext(ctx, "Orders scheduled for delivery", "hour", hour, "orderIds", ids)
	}
	return ids, nil
}

// Stop halts the schedule and waits for a run in progress to finish.
func (j *DeliverySchedulingJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Delivery scheduling job stopped")
}

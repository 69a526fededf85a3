package cmd

import (
	"context"
	"event-map/common/constant"
	"event-map/common/metrics"
	"event-map/inbound/event"
	"github.com/nats-io/nats.go/jetstream"
	"log"
	"log/slog"
)

func runQueueActivityCmd(ctx context.Context) {
	cfg := newCfg("env")

	stopTracer := newTracer(ctx, cfg)
	defer stopTracer()

	cacheClient := newRedis(cfg)
	defer cacheClient.Close()

	natsConn := newNats(cfg)
	defer natsConn.Close()

	js := newJs(natsConn)
	st := createStreamWorkQueue(ctx, cfg, js)

	activityEvent := event.ActivityEvent{
		Cache:   cacheClient,
		Timeout: cfg.GetDuration("queue.activity.timeout"),
	}
	nakDelay := cfg.GetDuration("queue.activity.nak_delay")

	cons, err := st.CreateOrUpdateConsumer(ctx, jetstream.ConsumerConfig{
		Durable:       "consumer:activity",
		FilterSubject: constant.AllWildcard,
		MaxDeliver:    cfg.GetInt("queue.activity.max_deliver"),
		AckWait:       cfg.GetDuration("queue.activity.ack_wait"),
	})
	if err != nil {
		log.Fatalln("failed to create consumer", err)
	}

	iter, err := cons.Messages()
	if err != nil {
		panic(err)
	}

	done := make(chan struct{})

	go func() {
		defer close(done)

		for {
			select {
			case <-ctx.Done():
				return
			default:
				msg, err := iter.Next()
				if err == jetstream.ErrMsgIteratorClosed {
					return
				}
				if err != nil {
					slog.ErrorContext(ctx, "Error fetching message", slog.Any(constant.LogFieldErr, err))
					continue
				}

				if msg == nil {
					continue
				}

				var eventErr error
				switch msg.Subject() {
				case constant.SubjectEventSelected:
					eventErr = activityEvent.SelectedHandler(ctx, msg.Data())
				case constant.SubjectEventDetails:
					eventErr = activityEvent.DetailsHandler(ctx, msg.Data())
				case constant.SubjectFiltersReset:
					eventErr = activityEvent.ResetHandler(ctx, msg.Data())
				default:
					slog.WarnContext(ctx, "unknown activity subject", slog.String("subject", msg.Subject()))
				}

				if eventErr != nil {
					metrics.ActivityMessagesTotal.WithLabelValues(msg.Subject(), "nak").Inc()
					msg.NakWithDelay(nakDelay)
					continue
				}

				if err := msg.Ack(); err != nil {
					slog.ErrorContext(ctx, "Error acknowledging message",
						slog.Any(constant.LogFieldErr, err),
						slog.Any(constant.LogFieldPayload, string(msg.Data())),
						slog.String("subject", msg.Subject()),
					)
					continue
				}

				metrics.ActivityMessagesTotal.WithLabelValues(msg.Subject(), "ack").Inc()
			}
		}
	}()

	slog.InfoContext(ctx, "activity queue consumer started")

	<-ctx.Done()

	iter.Stop()

	<-done

	slog.InfoContext(ctx, "activity queue consumer stopped")
}

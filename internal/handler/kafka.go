package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aqib-mansoor/LastMileDelivery-FYP-sub000/internal/config"
	"github.com/aqib-mansoor/LastMileDelivery-FYP-sub000/internal/entities"
	"github.com/go-playground/validator/v10"
	"github.com/segmentio/kafka-go"
)

type SuborderEventHandler interface {
	OnSuborderEvent(ctx context.Context, ev entities.SuborderEvent) error
}

type kafkaHandler struct {
	dlq      *kafka.Writer
	reader   *kafka.Reader
	logger   *slog.Logger
	validate *validator.Validate
	events   SuborderEventHandler
}

func NewKafkaHandler(logger *slog.Logger, cfg config.Kafka, events SuborderEventHandler) *kafkaHandler {
	return &kafkaHandler{
		logger: logger.With(slog.String("handler", "kafka")),
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers: cfg.Brokers,
			GroupID: cfg.GroupID,
			Topic:   cfg.Topic,
			MaxWait: cfg.ReaderMaxWait,
		}),
		dlq: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: cfg.BatchTimeout,
		},
		validate: validator.New(),
		events:   events,
	}
}

func (h *kafkaHandler) Consume(ctx context.Context) {
	for {
		m, err := h.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
				break
			}
			h.logger.Error("failed to fetch message", slog.Any("error", err))
			continue
		}

		eventsInProgress.Inc()
		start := time.Now()

		if err := h.handleEvent(ctx, m); err != nil {
			eventsFailed.Inc()
			h.logger.Error("failed to handle message", slog.Any("error", err))

			if err := h.WriteToDLQ(ctx, m); err != nil {
				h.logger.Error("failed to write message to DLQ", slog.Any("error", err))
				eventsInProgress.Dec()
				continue
			}
			eventsDLQ.Inc()
		} else {
			eventsProcessed.Inc()
		}

		eventProcessingDuration.Observe(time.Since(start).Seconds())
		eventsInProgress.Dec()

		if err := h.reader.CommitMessages(ctx, m); err != nil {
			commitErrors.Inc()
			h.logger.Error("failed to commit message", slog.Any("error", err))
		}
	}
}

func (h *kafkaHandler) handleEvent(ctx context.Context, m kafka.Message) error {
	ev, err := h.decodeEvent(m.Value)
	if err != nil {
		return err
	}
	return h.events.OnSuborderEvent(ctx, ev)
}

func (h *kafkaHandler) decodeEvent(data []byte) (entities.SuborderEvent, error) {
	var ev SuborderEvent
	if err := json.Unmarshal(data, &ev); err != nil {
		return entities.SuborderEvent{}, fmt.Errorf("failed to unmarshal event: %w", err)
	}
	if err := h.validate.Struct(ev); err != nil {
		return entities.SuborderEvent{}, fmt.Errorf("invalid event data: %w", err)
	}
	return SuborderEventToEntity(ev)
}

func (h *kafkaHandler) WriteToDLQ(ctx context.Context, m kafka.Message) error {
	dlq := kafka.Message{
		Topic:   fmt.Sprintf("%s-dlq", m.Topic),
		Key:     m.Key,
		Value:   m.Value,
		Headers: m.Headers,
	}
	return h.dlq.WriteMessages(ctx, dlq)
}

func (h *kafkaHandler) Close() error {
	if err := h.reader.Close(); err != nil {
		return err
	}
	return h.dlq.Close()
}

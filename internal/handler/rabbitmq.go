package handler

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/soukwatch/pricetracker/internal/normalizer"
	"github.com/soukwatch/pricetracker/internal/platform/models"
	"github.com/soukwatch/pricetracker/internal/platform/rabbitmq"
)

// Tracker persists batches of scraped product records.
type Tracker interface {
	SaveBatch(ctx context.Context, source string, records []normalizer.Record) (models.BatchStats, error)
}

// saveCommand mirrors commander.SaveCommand with records decoded.
type saveCommand struct {
	Source  string              `json:"source"`
	Records []normalizer.Record `json:"records"`
}

// RMQHandler handles RMQ messages.
type RMQHandler struct {
	rmq     *rabbitmq.RabbitMQ
	tracker Tracker
	logger  *zerolog.Logger
}

// NewHandler returns new RMQHandler.
func NewHandler(rmq *rabbitmq.RabbitMQ, tracker Tracker, logger *zerolog.Logger) *RMQHandler {
	return &RMQHandler{
		rmq:     rmq,
		tracker: tracker,
		logger:  logger,
	}
}

// Start starts consuming and handling save commands from RMQ.
// Per-record failures are counted inside the batch stats and don't
// fail the message, only undecodable commands and aborted batches do.
func (h *RMQHandler) Start(ctx context.Context, queue string) error {
	errorsChan, err := h.rmq.Consume(ctx, queue, func(ctx context.Context, message []byte) error {
		cmd, err := decodeMessage(message)
		if err != nil {
			return err
		}

		h.logger.Debug().
			Str("source", cmd.Source).
			Int("records", len(cmd.Records)).
			Msg("saving batch started")

		stats, err := h.tracker.SaveBatch(ctx, cmd.Source, cmd.Records)
		if err != nil {
			return fmt.Errorf("saving batch failed: %w", err)
		}

		h.logger.Info().
			Str("source", cmd.Source).
			Int("newProducts", stats.NewProducts).
			Int("updatedProducts", stats.UpdatedProducts).
			Int("newPriceRecords", stats.NewPriceRecords).
			Int("priceChangesDetected", stats.PriceChangesDetected).
			Int("errors", stats.Errors).
			Msg("saving batch finished")

		return nil
	})
	if err != nil {
		return err
	}

	go func() {
		for err := range errorsChan {
			h.logger.Error().
				Err(err).
				Msg("can't handle message")
		}
	}()

	return nil
}

func decodeMessage(msg []byte) (*saveCommand, error) {
	var cmd saveCommand
	err := json.Unmarshal(msg, &cmd)
	if err != nil {
		return nil, fmt.Errorf("can't decode save command: %w", err)
	}

	return &cmd, err
}

package parcel_scanned

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"logistics/internal/service/parcel"
	"logistics/internal/service/scan"
	"logistics/pkg/logger"
)

type Handler struct {
	scanService              Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, scanService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		scanService:              scanService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("parcel.scanned: claim messages closed, exiting ConsumeClaim")
				return nil
			}

			if stop := h.messageProcessing(sess, message); stop {
				return nil
			}
		case <-sess.Context().Done():
			// rebalance или остановка consumer group
			h.log.Info("parcel.scanned: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing возвращает true, только если сессия отменена и сообщение
// надо оставить незакоммиченным. Все остальные сообщения коммитятся, даже битые.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event scanEvent
	if err := json.Unmarshal(message.Value, &event); err != nil {
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("offset", message.Offset),
		).Error("parcel.scanned handler received bad message")
		ScanEventsTotal.WithLabelValues("", resultRejected).Inc()
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("tracking_number", event.TrackingNumber),
		logger.NewField("type", event.Type),
		logger.NewField("offset", message.Offset),
	)
	msgLog.Info("parcel.scanned processing")

	updated, err := h.scanService.ProcessScanEvent(ctx, event.toEntity())
	if err != nil {
		errLog := msgLog.With(logger.NewField("error", err))

		switch {
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			errLog.Warn("parcel.scanned handler context cancelled, message will be reprocessed")
			ScanEventsTotal.WithLabelValues(event.Type, resultRetry).Inc()
			return true
		case errors.Is(err, parcel.ErrInvalidStatus):
			errLog.Warn("parcel.scanned handler unknown status")
		case errors.Is(err, scan.ErrInvalidEvent),
			errors.Is(err, parcel.ErrInvalidCourierID),
			errors.Is(err, parcel.ErrInvalidTrackingNumber):
			errLog.Warn("parcel.scanned handler invalid event")
		case errors.Is(err, parcel.ErrParcelNotFound):
			errLog.Warn("parcel.scanned handler unknown tracking number")
		default:
			errLog.Error("parcel.scanned handler failed to process event")
		}

		ScanEventsTotal.WithLabelValues(event.Type, resultRejected).Inc()
		sess.MarkMessage(message, "")
		return false
	}

	h.log.With(
		logger.NewField("parcel", updated.ID),
		logger.NewField("type", event.Type),
		logger.NewField("current_status", updated.Status.String()),
		logger.NewField("offset", message.Offset),
	).Info("parcel.scanned: processed")

	ScanEventsTotal.WithLabelValues(event.Type, resultProcessed).Inc()
	sess.MarkMessage(message, "")
	return false
}

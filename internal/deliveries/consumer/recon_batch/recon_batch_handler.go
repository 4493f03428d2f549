package reconbatch

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	dlqpublisher "github.com/atlasledger/go-bank-recon/internal/common/dlq_publisher"
	"github.com/atlasledger/go-bank-recon/internal/common/metrics"
	"github.com/atlasledger/go-bank-recon/internal/common/retry"
	"github.com/atlasledger/go-bank-recon/internal/common/validation"
	"github.com/atlasledger/go-bank-recon/internal/common/xlog"
	"github.com/atlasledger/go-bank-recon/internal/common/xlog/ctxdata"
	"github.com/atlasledger/go-bank-recon/internal/models"
	"github.com/atlasledger/go-bank-recon/internal/services"

	"github.com/Shopify/sarama"
	"github.com/google/uuid"
)

type ReconBatchHandler struct {
	clientId        string
	rs              services.ReconService
	dlq             dlqpublisher.Publisher
	ebRetry         retry.Retryer
	consumerMetrics *metrics.ConsumerMetrics
}

func NewReconBatchHandler(
	clientId string,
	rs services.ReconService,
	dlq dlqpublisher.Publisher,
	ebr retry.Retryer,
	consumerMetrics *metrics.ConsumerMetrics,
) sarama.ConsumerGroupHandler {
	return &ReconBatchHandler{clientId, rs, dlq, ebr, consumerMetrics}
}

// Setup is run at the beginning of a new session, before ConsumeClaim
func (rb ReconBatchHandler) Setup(_ sarama.ConsumerGroupSession) error {
	return nil
}

// Cleanup is run at the end of a session, once all ConsumeClaim goroutines have exited
func (rb ReconBatchHandler) Cleanup(_ sarama.ConsumerGroupSession) error {
	return nil
}

// ConsumeClaim must start a consumer loop of ConsumerGroupClaim's Messages().
func (rb ReconBatchHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				return nil
			}

			ctx := ctxdata.Sets(session.Context(),
				ctxdata.SetCorrelationId(uuid.New().String()),
				ctxdata.SetHost(rb.clientId),
			)
			start := time.Now()
			logField := createLogField(message)

			batch, err := rb.parseMessage(ctx, message)
			if err != nil {
				logField = append(logField, xlog.Duration("response-time", time.Since(start)), xlog.Err(err))
				xlog.Warn(ctx, logMessage, logField...)
				rb.Nack(ctx, session, message, err)
				continue
			}

			var operationErr error
			operation := func() error {
				operationErr = rb.handler(ctx, message, batch)
				if operationErr != nil {
					logField = append(logField, xlog.Duration("response-time", time.Since(start)), xlog.Err(operationErr))
					xlog.Warn(ctx, logMessage, logField...)

					return operationErr
				}
				return nil
			}
			dlqCallback := func() error {
				rb.Nack(ctx, session, message, operationErr)
				return operationErr
			}

			if err = rb.ebRetry.Retry(ctx, operation, dlqCallback); err != nil {
				logField = append(logField, xlog.Duration("response-time", time.Since(start)), xlog.Err(err))
				xlog.Warn(ctx, logMessage, logField...)
				continue
			}

			logField = append(logField, xlog.Duration("response-time", time.Since(start)))
			xlog.Info(ctx, logMessage, logField...)
			rb.Ack(session, message)
		case <-session.Context().Done():
			return nil
		}
	}
}

// parseMessage rejects poison payloads before any retry is attempted, a
// batch that does not unmarshal or validate will never succeed.
func (rb ReconBatchHandler) parseMessage(ctx context.Context, message *sarama.ConsumerMessage) (*models.ReconBatchInput, error) {
	const logMessage = "[PARSE-MESSAGE]"

	var batch models.ReconBatchInput

	logField := createLogField(message)

	if err := json.Unmarshal(message.Value, &batch); err != nil {
		logField = append(logField, xlog.Err(err))
		xlog.Warn(ctx, logMessage, logField...)
		return nil, fmt.Errorf("error unmarshal json: %w", err)
	}

	if err := validation.ValidateStruct(&batch); err != nil {
		logField = append(logField, xlog.Err(err))
		xlog.Warn(ctx, logMessage, logField...)
		return nil, fmt.Errorf("invalid recon batch payload: %w", err)
	}

	return &batch, nil
}

func (rb ReconBatchHandler) processBatch(ctx context.Context, batch *models.ReconBatchInput) error {
	const logMessage = "[PROCESS-BATCH]"

	result, err := rb.rs.ProcessBatch(ctx, batch)
	if err != nil {
		xlog.Warn(ctx, logMessage, xlog.Int64("company-id", batch.CompanyID), xlog.Err(err))
		return fmt.Errorf("error process recon batch: %w", err)
	}

	logField := []xlog.Field{
		xlog.Int64("company-id", batch.CompanyID),
		xlog.Int("total-matches", result.TotalMatches),
		xlog.Int("reconciled", result.Reconciled),
		xlog.Int("failed", result.Failed),
		xlog.Int("skipped", result.Skipped),
	}

	// item failures are already recorded per document, the batch itself
	// is consumed either way
	if result.Failed > 0 {
		xlog.Warn(ctx, logMessage, logField...)
		return nil
	}

	xlog.Info(ctx, logMessage, logField...)
	return nil
}

func (rb ReconBatchHandler) handler(ctx context.Context, message *sarama.ConsumerMessage, batch *models.ReconBatchInput) (err error) {
	startTime := time.Now() // time when a process consumes a message started
	err = rb.processBatch(ctx, batch)

	if rb.consumerMetrics != nil {
		rb.consumerMetrics.GenerateMetrics(startTime, message, err)
	}

	return
}

func (rb ReconBatchHandler) Ack(session sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) {
	session.MarkMessage(message, "")
}

// Nack is a custom function for handling failed messages during Kafka consumer processing.
// It publishes the failed message to a DLQ and mark the message as consumed.
func (rb ReconBatchHandler) Nack(ctx context.Context, session sarama.ConsumerGroupSession, message *sarama.ConsumerMessage, causeErr error) {
	logField := createLogField(message)

	err := rb.dlq.Publish(models.FailedMessage{
		Payload:    message.Value,
		Timestamp:  message.Timestamp,
		CauseError: causeErr,
	})
	if err != nil {
		logField = append(logField, xlog.Err(err))
		xlog.Warn(ctx, logMessage, logField...)
	}

	session.MarkMessage(message, "")
}

func createLogField(msg *sarama.ConsumerMessage) []xlog.Field {
	return []xlog.Field{
		xlog.Time("timestamp", msg.Timestamp),
		xlog.String("topic", msg.Topic),
		xlog.String("key", string(msg.Key)),
		xlog.Int32("partition", msg.Partition),
		xlog.Int64("offset", msg.Offset),
		xlog.String("message-claimed", string(msg.Value)),
	}
}

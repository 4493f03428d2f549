package consumer

import (
	"context"
	"fmt"

	"github.com/atlasledger/go-bank-recon/cmd/setup"
	"github.com/atlasledger/go-bank-recon/internal/common/graceful"
	"github.com/atlasledger/go-bank-recon/internal/common/publisher"
	"github.com/atlasledger/go-bank-recon/internal/config"
	"github.com/atlasledger/go-bank-recon/internal/services"

	dlqpublisher "github.com/atlasledger/go-bank-recon/internal/common/dlq_publisher"
	reconbatch "github.com/atlasledger/go-bank-recon/internal/deliveries/consumer/recon_batch"
)

func NewKafkaConsumer(
	ctx context.Context,
	consumerName string,
	conf config.Config,
	svc *services.Services,
	contract *setup.Setup,
) (consumerProcess graceful.ProcessStartStopper, stoppers []graceful.ProcessStopper, err error) {
	switch consumerName {
	case "recon_batch":
		producer, errProducer := publisher.NewKafkaSyncProducer(conf.MessageBroker.KafkaConsumer.Brokers)
		if errProducer != nil {
			err = fmt.Errorf("failed setup kafka dlq publisher : %w", errProducer)
			return
		}

		stoppers = append(stoppers, func(ctx context.Context) error { return producer.Close() })

		batchDlq := dlqpublisher.New(producer, conf.MessageBroker.KafkaConsumer.TopicReconBatchDLQ, contract.Metrics)
		consumerProcess, err = reconbatch.New(ctx, conf, svc.Recon, batchDlq, contract.Metrics)
	default:
		err = fmt.Errorf("consumer type name for %s not found", consumerName)
	}

	return
}

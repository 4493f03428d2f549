package reconbatch

import (
	"context"
	"testing"
	"time"

	"github.com/atlasledger/go-bank-recon/internal/config"
	"github.com/atlasledger/go-bank-recon/internal/deliveries/consumer/mock"
	"github.com/atlasledger/go-bank-recon/internal/services"

	brokerMock "github.com/atlasledger/go-bank-recon/internal/common/messaging/mock"
	serviceMock "github.com/atlasledger/go-bank-recon/internal/services/mock"

	"github.com/Shopify/sarama"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type kafkaTestHelper struct {
	mockCtrl      *gomock.Controller
	group         string
	topic         string
	broker        *sarama.MockBroker
	defaultConfig config.Config

	rs services.ReconService

	cg *mock.MockConsumerGroup
}

func (th kafkaTestHelper) close() {
	th.broker.Close()
	th.mockCtrl.Finish()
}

func newKafkaTestHelper(t *testing.T) kafkaTestHelper {
	t.Helper()
	t.Parallel()

	var (
		group = "go-bank-recon"
		topic = "test"
	)

	mockCtrl := gomock.NewController(t)

	broker := brokerMock.NewMockBroker(t, group, topic)
	cg := mock.NewMockConsumerGroup(mockCtrl)
	rs := serviceMock.NewMockReconService(mockCtrl)

	return kafkaTestHelper{
		mockCtrl: mockCtrl,
		group:    group,
		topic:    topic,
		broker:   broker,
		defaultConfig: config.Config{
			App: config.App{
				Env:  "test",
				Name: "go-bank-recon",
			},
			MessageBroker: config.MessageBroker{
				KafkaConsumer: config.ConsumerConfig{
					Brokers:                 []string{broker.Addr()},
					TopicReconBatch:         topic,
					ConsumerGroupReconBatch: group,
				},
			},
		},
		rs: rs,
		cg: cg,
	}
}

func TestNew(t *testing.T) {
	th := newKafkaTestHelper(t)
	defer th.close()

	type args struct {
		ctx context.Context
		cfg config.Config
		rs  services.ReconService
	}

	tests := []struct {
		name    string
		args    args
		wantErr bool
	}{
		{
			name: "success new client",
			args: args{
				cfg: th.defaultConfig,
				rs:  th.rs,
			},
			wantErr: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.args.ctx, tt.args.cfg, tt.args.rs, nil, nil)
			assert.Equal(t, tt.wantErr, err != nil, err)
		})
	}
}

func TestConsumer_Start(t *testing.T) {
	th := newKafkaTestHelper(t)
	defer th.close()

	type fields struct {
		ctx         context.Context
		ctxCancel   context.CancelFunc
		consumerCfg config.ConsumerConfig
	}

	tests := []struct {
		name            string
		fields          fields
		wantErrContains string
	}{
		{
			// the consume loop runs against the mock broker until
			// the test context expires
			name: "start consumes until context is canceled",
			fields: fields{
				consumerCfg: th.defaultConfig.MessageBroker.KafkaConsumer,
			},
			wantErrContains: "context was canceled",
		},
		{
			name: "failed preStart() error config",
			fields: fields{
				consumerCfg: config.ConsumerConfig{},
			},
			wantErrContains: "failed to create consumer config",
		},
		{
			name: "failed preStart() missing topic",
			fields: fields{
				consumerCfg: config.ConsumerConfig{
					Brokers:                 []string{th.broker.Addr()},
					ConsumerGroupReconBatch: th.group,
				},
			},
			wantErrContains: "no topics given to be consumed",
		},
		{
			name: "failed preStart() missing consumer group",
			fields: fields{
				consumerCfg: config.ConsumerConfig{
					Brokers:         []string{th.broker.Addr()},
					TopicReconBatch: th.topic,
				},
			},
			wantErrContains: "no kafka consumer group defined",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.fields.ctx, tt.fields.ctxCancel = context.WithTimeout(context.Background(), 1*time.Second)
			defer tt.fields.ctxCancel()

			consumer := &Consumer{
				ctx:         tt.fields.ctx,
				clientID:    th.group,
				cfg:         th.defaultConfig,
				consumerCfg: tt.fields.consumerCfg,
				rs:          th.rs,
			}

			err := consumer.Start()()
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErrContains)
		})
	}
}

func TestConsumer_Stop(t *testing.T) {
	th := newKafkaTestHelper(t)
	defer th.close()

	type fields struct {
		cg *mock.MockConsumerGroup
	}

	tests := []struct {
		name    string
		fields  fields
		doMock  func(f fields)
		wantErr bool
	}{
		{
			name: "success stop consumer",
			fields: fields{
				cg: mock.NewMockConsumerGroup(th.mockCtrl),
			},
			doMock: func(f fields) {
				f.cg.EXPECT().Close().Return(nil)
			},
			wantErr: false,
		},
		{
			name: "error stop consumer",
			fields: fields{
				cg: mock.NewMockConsumerGroup(th.mockCtrl),
			},
			doMock: func(f fields) {
				f.cg.EXPECT().Close().Return(assert.AnError)
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
			defer cancel()

			if tt.doMock != nil {
				tt.doMock(tt.fields)
			}

			consumer := &Consumer{
				ctx:      ctx,
				clientID: th.group,
				cg:       tt.fields.cg,
			}

			err := consumer.Stop()(ctx)
			assert.Equal(t, tt.wantErr, err != nil)
		})
	}
}

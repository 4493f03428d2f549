package messaging

import (
	"testing"

	"github.com/Shopify/sarama"
	"github.com/stretchr/testify/assert"

	"github.com/atlasledger/go-bank-recon/internal/config"
)

func Test_CreateSaramaConsumerConfig(t *testing.T) {
	type args struct {
		cfg config.ConsumerConfig
	}
	tests := []struct {
		name         string
		args         args
		wantStrategy string
		wantErr      bool
	}{
		{
			name: "success create config",
			args: args{
				cfg: config.ConsumerConfig{
					Brokers:  []string{"localhost:9092"},
					IsOldest: true,
				},
			},
			wantStrategy: sarama.RangeBalanceStrategyName,
			wantErr:      false,
		},
		{
			name: "success using assignor sticky",
			args: args{
				cfg: config.ConsumerConfig{
					Brokers:  []string{"localhost:9092"},
					Assignor: "sticky",
				},
			},
			wantStrategy: sarama.StickyBalanceStrategyName,
			wantErr:      false,
		},
		{
			name: "success using assignor roundrobin",
			args: args{
				cfg: config.ConsumerConfig{
					Brokers:  []string{"localhost:9092"},
					Assignor: "roundrobin",
				},
			},
			wantStrategy: sarama.RoundRobinBalanceStrategyName,
			wantErr:      false,
		},
		{
			name: "success using assignor range",
			args: args{
				cfg: config.ConsumerConfig{
					Brokers:  []string{"localhost:9092"},
					Assignor: "range",
				},
			},
			wantStrategy: sarama.RangeBalanceStrategyName,
			wantErr:      false,
		},
		{
			name: "error missing broker",
			args: args{
				cfg: config.ConsumerConfig{
					Brokers: nil,
				},
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CreateSaramaConsumerConfig(tt.args.cfg, "[TEST]")
			assert.Equal(t, tt.wantErr, err != nil, err)

			if !tt.wantErr {
				assert.Equal(t, sarama.V3_0_0_0, got.Version)
				assert.True(t, got.Consumer.Return.Errors)
				assert.Equal(t, tt.wantStrategy, got.Consumer.Group.Rebalance.GroupStrategies[0].Name())
				if tt.args.cfg.IsOldest {
					assert.Equal(t, sarama.OffsetOldest, got.Consumer.Offsets.Initial)
				}
			}
		})
	}
}

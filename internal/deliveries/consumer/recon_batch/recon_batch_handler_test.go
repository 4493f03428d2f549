package reconbatch

import (
	"context"
	"os"
	"testing"
	"time"

	dlqpublisher "github.com/atlasledger/go-bank-recon/internal/common/dlq_publisher"
	dlqMock "github.com/atlasledger/go-bank-recon/internal/common/dlq_publisher/mock"
	"github.com/atlasledger/go-bank-recon/internal/common/retry"
	retryMock "github.com/atlasledger/go-bank-recon/internal/common/retry/mock"
	"github.com/atlasledger/go-bank-recon/internal/common/xlog"
	"github.com/atlasledger/go-bank-recon/internal/models"
	"github.com/atlasledger/go-bank-recon/internal/services"
	"github.com/atlasledger/go-bank-recon/internal/services/mock"

	kafkaMock "github.com/atlasledger/go-bank-recon/internal/deliveries/consumer/mock"

	"github.com/Shopify/sarama"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	xlog.InitForTest()
	os.Exit(m.Run())
}

type reconBatchHandlerHelper struct {
	mockCtrl *gomock.Controller
	rs       *mock.MockReconService
	dlq      *dlqMock.MockPublisher
	ebRetry  *retryMock.MockRetryer

	payload []byte
}

func newReconBatchHandlerHelper(t *testing.T) reconBatchHandlerHelper {
	t.Helper()
	t.Parallel()

	mockCtrl := gomock.NewController(t)

	rs := mock.NewMockReconService(mockCtrl)
	mockDlq := dlqMock.NewMockPublisher(mockCtrl)
	ebRetry := retryMock.NewMockRetryer(mockCtrl)

	payload := []byte(`{"company_id":7,"matched_transactions":[{"document_id":"bill-77","match_type":"SINGLE","transaction_details":[{"transaction_id":"TXN-100","odoo_id":510,"amount":-250.75,"date":"2025-05-20"}],"document_details":{"bill_id":77,"odoo_move_id":700,"number":"BILL/2025/077","partner":"Delta Supplies","amount":250.75,"date":"2025-05-18"}}]}`)

	return reconBatchHandlerHelper{
		mockCtrl: mockCtrl,
		rs:       rs,
		dlq:      mockDlq,
		ebRetry:  ebRetry,
		payload:  payload,
	}
}

// runRetryOnce drives the handler's retry hook without backoff sleeps,
// one attempt then straight to the DLQ callback.
func runRetryOnce(ctx context.Context, operation, dlqCallback func() error) error {
	if err := operation(); err != nil {
		return dlqCallback()
	}
	return nil
}

func TestNewReconBatchHandler(t *testing.T) {
	th := newReconBatchHandlerHelper(t)
	defer th.mockCtrl.Finish()

	type args struct {
		rs  services.ReconService
		dlq dlqpublisher.Publisher
		ebr retry.Retryer
	}
	tests := []struct {
		name string
		args args
		want *ReconBatchHandler
	}{
		{
			name: "success init ReconBatchHandler",
			args: args{
				rs:  th.rs,
				dlq: th.dlq,
				ebr: th.ebRetry,
			},
			want: &ReconBatchHandler{
				rs:      th.rs,
				dlq:     th.dlq,
				ebRetry: th.ebRetry,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equalf(t, tt.want, NewReconBatchHandler("", tt.args.rs, tt.args.dlq, tt.args.ebr, nil), "NewReconBatchHandler(%v)", tt.args.rs)
		})
	}
}

func TestReconBatchHandler_Setup(t *testing.T) {
	th := newReconBatchHandlerHelper(t)
	defer th.mockCtrl.Finish()

	type fields struct {
		rs services.ReconService
	}
	type args struct {
		session sarama.ConsumerGroupSession
	}
	tests := []struct {
		name    string
		fields  fields
		args    args
		wantErr bool
	}{
		{
			name: "Success Setup",
			fields: fields{
				rs: th.rs,
			},
			wantErr: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th := ReconBatchHandler{
				rs: tt.fields.rs,
			}
			err := th.Setup(tt.args.session)
			assert.Equal(t, tt.wantErr, err != nil)
		})
	}
}

func TestReconBatchHandler_Cleanup(t *testing.T) {
	th := newReconBatchHandlerHelper(t)
	defer th.mockCtrl.Finish()

	type fields struct {
		rs services.ReconService
	}
	type args struct {
		session sarama.ConsumerGroupSession
	}
	tests := []struct {
		name    string
		fields  fields
		args    args
		wantErr bool
	}{
		{
			name: "Success Cleanup",
			fields: fields{
				rs: th.rs,
			},
			wantErr: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th := ReconBatchHandler{
				rs: tt.fields.rs,
			}
			err := th.Cleanup(tt.args.session)
			assert.Equal(t, tt.wantErr, err != nil)
		})
	}
}

func TestReconBatchHandler_parseMessage(t *testing.T) {
	th := newReconBatchHandlerHelper(t)
	defer th.mockCtrl.Finish()

	type args struct {
		ctx     context.Context
		message *sarama.ConsumerMessage
	}

	tests := []struct {
		name    string
		args    args
		want    *models.ReconBatchInput
		wantErr bool
	}{
		{
			name: "success parse message",
			args: args{
				ctx: context.Background(),
				message: &sarama.ConsumerMessage{
					Value: th.payload,
				},
			},
			wantErr: false,
		},
		{
			name: "error unmarshal message",
			args: args{
				ctx: context.Background(),
				message: &sarama.ConsumerMessage{
					Value: []byte("{__INVALID_JSON_HERE"),
				},
			},
			wantErr: true,
		},
		{
			name: "error empty batch",
			args: args{
				ctx: context.Background(),
				message: &sarama.ConsumerMessage{
					Value: []byte(`{"company_id":7,"matched_transactions":[]}`),
				},
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := ReconBatchHandler{
				rs: th.rs,
			}
			got, err := h.parseMessage(tt.args.ctx, tt.args.message)
			assert.Equal(t, tt.wantErr, err != nil, err)
			if !tt.wantErr {
				assert.Equal(t, int64(7), got.CompanyID)
				assert.Len(t, got.MatchedTransactions, 1)
			}
		})
	}
}

func TestReconBatchHandler_processBatch(t *testing.T) {
	th := newReconBatchHandlerHelper(t)
	defer th.mockCtrl.Finish()

	batch := &models.ReconBatchInput{CompanyID: 7}

	type args struct {
		ctx   context.Context
		batch *models.ReconBatchInput
	}

	tests := []struct {
		name    string
		args    args
		doMock  func(a args)
		wantErr bool
	}{
		{
			name: "success process batch",
			args: args{
				ctx:   context.Background(),
				batch: batch,
			},
			doMock: func(a args) {
				th.rs.EXPECT().ProcessBatch(a.ctx, a.batch).
					Return(&models.ReconBatchResult{Success: true, TotalMatches: 1, Reconciled: 1}, nil)
			},
			wantErr: false,
		},
		{
			name: "batch with item failures is still consumed",
			args: args{
				ctx:   context.Background(),
				batch: batch,
			},
			doMock: func(a args) {
				th.rs.EXPECT().ProcessBatch(a.ctx, a.batch).
					Return(&models.ReconBatchResult{TotalMatches: 2, Reconciled: 1, Failed: 1}, nil)
			},
			wantErr: false,
		},
		{
			name: "error process batch",
			args: args{
				ctx:   context.Background(),
				batch: batch,
			},
			doMock: func(a args) {
				th.rs.EXPECT().ProcessBatch(a.ctx, a.batch).Return(nil, assert.AnError)
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.doMock != nil {
				tt.doMock(tt.args)
			}

			h := ReconBatchHandler{
				rs: th.rs,
			}
			err := h.processBatch(tt.args.ctx, tt.args.batch)
			assert.Equal(t, tt.wantErr, err != nil, err)
		})
	}
}

func TestReconBatchHandler_Nack(t *testing.T) {
	th := newReconBatchHandlerHelper(t)
	defer th.mockCtrl.Finish()

	message := &sarama.ConsumerMessage{
		Value:     th.payload,
		Timestamp: time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC),
	}

	tests := []struct {
		name   string
		doMock func(session *kafkaMock.MockConsumerGroupSession)
	}{
		{
			name: "failed message lands on the dlq and is marked",
			doMock: func(session *kafkaMock.MockConsumerGroupSession) {
				th.dlq.EXPECT().Publish(models.FailedMessage{
					Payload:    message.Value,
					Timestamp:  message.Timestamp,
					CauseError: assert.AnError,
				}).Return(nil)
				session.EXPECT().MarkMessage(message, "")
			},
		},
		{
			name: "message is marked even when the dlq publish fails",
			doMock: func(session *kafkaMock.MockConsumerGroupSession) {
				th.dlq.EXPECT().Publish(gomock.Any()).Return(assert.AnError)
				session.EXPECT().MarkMessage(message, "")
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session := kafkaMock.NewMockConsumerGroupSession(th.mockCtrl)
			if tt.doMock != nil {
				tt.doMock(session)
			}

			h := ReconBatchHandler{
				rs:  th.rs,
				dlq: th.dlq,
			}
			h.Nack(context.Background(), session, message, assert.AnError)
		})
	}
}

func TestReconBatchHandler_ConsumeClaim(t *testing.T) {
	th := newReconBatchHandlerHelper(t)
	defer th.mockCtrl.Finish()

	type fields struct {
		rs        *mock.MockReconService
		dlq       *dlqMock.MockPublisher
		ebRetry   *retryMock.MockRetryer
		ctx       context.Context
		ctxCancel context.CancelFunc
		msg       chan *sarama.ConsumerMessage
	}

	type args struct {
		session *kafkaMock.MockConsumerGroupSession
		claim   *kafkaMock.MockConsumerGroupClaim
	}
	tests := []struct {
		name    string
		fields  fields
		args    args
		doMock  func(a args, f fields)
		wantErr bool
	}{
		{
			name: "success consume message",
			fields: fields{
				rs:      mock.NewMockReconService(th.mockCtrl),
				dlq:     dlqMock.NewMockPublisher(th.mockCtrl),
				ebRetry: retryMock.NewMockRetryer(th.mockCtrl),
				msg:     make(chan *sarama.ConsumerMessage, 1),
			},
			args: args{
				session: kafkaMock.NewMockConsumerGroupSession(th.mockCtrl),
				claim:   kafkaMock.NewMockConsumerGroupClaim(th.mockCtrl),
			},
			doMock: func(a args, f fields) {
				f.msg <- &sarama.ConsumerMessage{
					Value: th.payload,
				}

				a.claim.EXPECT().Messages().Return(f.msg).AnyTimes()
				a.session.EXPECT().Context().Return(f.ctx).AnyTimes()
				a.session.EXPECT().MarkMessage(gomock.Any(), gomock.Any()).AnyTimes()
				f.ebRetry.EXPECT().Retry(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(runRetryOnce).AnyTimes()
				f.rs.EXPECT().ProcessBatch(gomock.Any(), gomock.Any()).
					Return(&models.ReconBatchResult{Success: true, TotalMatches: 1, Reconciled: 1}, nil).AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "poison message goes to the dlq",
			fields: fields{
				rs:      mock.NewMockReconService(th.mockCtrl),
				dlq:     dlqMock.NewMockPublisher(th.mockCtrl),
				ebRetry: retryMock.NewMockRetryer(th.mockCtrl),
				msg:     make(chan *sarama.ConsumerMessage, 1),
			},
			args: args{
				session: kafkaMock.NewMockConsumerGroupSession(th.mockCtrl),
				claim:   kafkaMock.NewMockConsumerGroupClaim(th.mockCtrl),
			},
			doMock: func(a args, f fields) {
				f.msg <- &sarama.ConsumerMessage{
					Value: []byte("{__INVALID_JSON_HERE"),
				}

				a.claim.EXPECT().Messages().Return(f.msg).AnyTimes()
				a.session.EXPECT().Context().Return(f.ctx).AnyTimes()
				a.session.EXPECT().MarkMessage(gomock.Any(), gomock.Any()).AnyTimes()
				f.dlq.EXPECT().Publish(gomock.Any()).Return(nil).AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "failed batch is retried then goes to the dlq",
			fields: fields{
				rs:      mock.NewMockReconService(th.mockCtrl),
				dlq:     dlqMock.NewMockPublisher(th.mockCtrl),
				ebRetry: retryMock.NewMockRetryer(th.mockCtrl),
				msg:     make(chan *sarama.ConsumerMessage, 1),
			},
			args: args{
				session: kafkaMock.NewMockConsumerGroupSession(th.mockCtrl),
				claim:   kafkaMock.NewMockConsumerGroupClaim(th.mockCtrl),
			},
			doMock: func(a args, f fields) {
				f.msg <- &sarama.ConsumerMessage{
					Value: th.payload,
				}

				a.claim.EXPECT().Messages().Return(f.msg).AnyTimes()
				a.session.EXPECT().Context().Return(f.ctx).AnyTimes()
				a.session.EXPECT().MarkMessage(gomock.Any(), gomock.Any()).AnyTimes()
				f.ebRetry.EXPECT().Retry(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(runRetryOnce).AnyTimes()
				f.rs.EXPECT().ProcessBatch(gomock.Any(), gomock.Any()).Return(nil, assert.AnError).AnyTimes()
				f.dlq.EXPECT().Publish(gomock.Any()).Return(nil).AnyTimes()
			},
			wantErr: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.fields.ctx, tt.fields.ctxCancel = context.WithTimeout(context.Background(), 1*time.Second)
			defer tt.fields.ctxCancel()

			if tt.doMock != nil {
				tt.doMock(tt.args, tt.fields)
			}

			th := ReconBatchHandler{
				rs:      tt.fields.rs,
				dlq:     tt.fields.dlq,
				ebRetry: tt.fields.ebRetry,
			}

			err := th.ConsumeClaim(tt.args.session, tt.args.claim)
			assert.Equal(t, tt.wantErr, err != nil)
		})
	}
}

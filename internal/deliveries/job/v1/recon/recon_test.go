package recon

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/atlasledger/go-bank-recon/internal/common"
	"github.com/atlasledger/go-bank-recon/internal/common/flag"
	"github.com/atlasledger/go-bank-recon/internal/common/xlog"
	"github.com/atlasledger/go-bank-recon/internal/models"
	"github.com/atlasledger/go-bank-recon/internal/services/mock"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	xlog.InitForTest()
	os.Exit(m.Run())
}

func Test_reconHandler_ReconcileFromFile(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	mockReconService := mock.NewMockReconService(mockCtrl)

	Routes(mock.NewMockMatchingService(mockCtrl), mockReconService)

	validPayload := []byte(`{"company_id":7,"matched_transactions":[{"document_id":"bill-77","match_type":"SINGLE","transaction_details":[{"transaction_id":"TXN-100","odoo_id":510,"amount":-250.75,"date":"2025-05-20"}],"document_details":{"bill_id":77,"odoo_move_id":700,"number":"BILL/2025/077","partner":"Delta Supplies","amount":250.75,"date":"2025-05-18"}}]}`)

	type args struct {
		ctx  context.Context
		date time.Time
		flag flag.Job
	}
	tests := []struct {
		name    string
		payload []byte
		args    args
		doMock  func(args args)
		wantErr bool
	}{
		{
			name:    "success ReconcileFromFile",
			payload: validPayload,
			args: args{
				ctx:  context.TODO(),
				date: common.Now(),
			},
			doMock: func(args args) {
				mockReconService.EXPECT().
					ProcessBatch(gomock.AssignableToTypeOf(args.ctx), gomock.Any()).
					Return(&models.ReconBatchResult{Success: true, TotalMatches: 1, Reconciled: 1}, nil)
			},
			wantErr: false,
		},
		{
			name: "error batch file does not exist",
			args: args{
				ctx:  context.TODO(),
				date: common.Now(),
			},
			wantErr: true,
		},
		{
			name:    "error unmarshal batch file",
			payload: []byte("{__INVALID_JSON_HERE"),
			args: args{
				ctx:  context.TODO(),
				date: common.Now(),
			},
			wantErr: true,
		},
		{
			name:    "error empty batch",
			payload: []byte(`{"company_id":7,"matched_transactions":[]}`),
			args: args{
				ctx:  context.TODO(),
				date: common.Now(),
			},
			wantErr: true,
		},
		{
			name:    "error process batch",
			payload: validPayload,
			args: args{
				ctx:  context.TODO(),
				date: common.Now(),
			},
			doMock: func(args args) {
				mockReconService.EXPECT().
					ProcessBatch(gomock.AssignableToTypeOf(args.ctx), gomock.Any()).
					Return(nil, assert.AnError)
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			tt.args.flag.FileName = filepath.Join(t.TempDir(), "batch.json")
			if tt.payload != nil {
				err := os.WriteFile(tt.args.flag.FileName, tt.payload, 0o600)
				assert.NoError(t, err)
			}

			if tt.doMock != nil {
				tt.doMock(tt.args)
			}
			rh := &reconHandler{
				reconSrv: mockReconService,
			}
			err := rh.ReconcileFromFile(tt.args.ctx, tt.args.date, tt.args.flag)
			assert.Equal(t, tt.wantErr, err != nil)
		})
	}
}

func Test_reconHandler_MatchAndReconcile(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	mockMatchingService := mock.NewMockMatchingService(mockCtrl)
	mockReconService := mock.NewMockReconService(mockCtrl)

	matchedReport := &models.MatchReport{
		CompanyID: 7,
		Results: []models.MatchResult{
			{
				Transaction: models.BankTransaction{
					ID:           "TXN-100",
					LedgerMoveID: 510,
					Amount:       models.NewDecimalFromFloat(-250.75),
					Date:         time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC),
				},
				Documents: []models.FinancialDocument{{
					ID:           77,
					Type:         models.DocumentTypeBill,
					Number:       "BILL/2025/077",
					PartnerName:  "Delta Supplies",
					Amount:       models.NewDecimalFromFloat(250.75),
					Date:         time.Date(2025, 5, 18, 0, 0, 0, 0, time.UTC),
					LedgerMoveID: 700,
				}},
				Matched: true,
				Kind:    models.MatchKindSingle,
			},
			{
				Transaction: models.BankTransaction{ID: "TXN-101"},
				Matched:     false,
				Reason:      models.ReasonAmountMismatch,
			},
		},
		Summary: models.MatchSummary{TotalTransactions: 2, SinglePass: 1, Unmatched: 1},
	}

	type args struct {
		ctx  context.Context
		date time.Time
		flag flag.Job
	}
	tests := []struct {
		name    string
		args    args
		doMock  func(args args)
		wantErr bool
	}{
		{
			name: "success matched results flow into the executor",
			args: args{
				ctx:  context.TODO(),
				date: common.Now(),
				flag: flag.Job{CompanyID: 7, DateFrom: "2025-05-01", DateTo: "2025-05-31"},
			},
			doMock: func(args args) {
				mockMatchingService.EXPECT().
					Run(args.ctx, models.RunMatchingRequest{CompanyID: 7, DateFrom: "2025-05-01", DateTo: "2025-05-31"}).
					Return(matchedReport, nil)
				mockReconService.EXPECT().
					ProcessBatch(args.ctx, gomock.Any()).
					DoAndReturn(func(_ context.Context, in *models.ReconBatchInput) (*models.ReconBatchResult, error) {
						assert.Equal(t, int64(7), in.CompanyID)
						assert.Len(t, in.MatchedTransactions, 1)
						assert.Equal(t, "bill-77", in.MatchedTransactions[0].DocumentID)
						return &models.ReconBatchResult{Success: true, TotalMatches: 1, Reconciled: 1}, nil
					})
			},
			wantErr: false,
		},
		{
			name: "success nothing matched skips the executor",
			args: args{
				ctx:  context.TODO(),
				date: common.Now(),
				flag: flag.Job{CompanyID: 7},
			},
			doMock: func(args args) {
				mockMatchingService.EXPECT().
					Run(args.ctx, models.RunMatchingRequest{CompanyID: 7}).
					Return(&models.MatchReport{CompanyID: 7}, nil)
			},
			wantErr: false,
		},
		{
			name: "error matching run",
			args: args{
				ctx:  context.TODO(),
				date: common.Now(),
				flag: flag.Job{CompanyID: 7},
			},
			doMock: func(args args) {
				mockMatchingService.EXPECT().
					Run(args.ctx, models.RunMatchingRequest{CompanyID: 7}).
					Return(nil, assert.AnError)
			},
			wantErr: true,
		},
		{
			name: "error process batch",
			args: args{
				ctx:  context.TODO(),
				date: common.Now(),
				flag: flag.Job{CompanyID: 7},
			},
			doMock: func(args args) {
				mockMatchingService.EXPECT().
					Run(args.ctx, models.RunMatchingRequest{CompanyID: 7}).
					Return(matchedReport, nil)
				mockReconService.EXPECT().
					ProcessBatch(args.ctx, gomock.Any()).
					Return(nil, assert.AnError)
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.doMock != nil {
				tt.doMock(tt.args)
			}
			rh := &reconHandler{
				matchingSrv: mockMatchingService,
				reconSrv:    mockReconService,
			}
			err := rh.MatchAndReconcile(tt.args.ctx, tt.args.date, tt.args.flag)
			assert.Equal(t, tt.wantErr, err != nil)
		})
	}
}

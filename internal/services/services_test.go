package services_test

import (
	"os"
	"testing"
	"time"

	"github.com/atlasledger/go-bank-recon/internal/common/idgenerator"
	mockLedger "github.com/atlasledger/go-bank-recon/internal/common/ledger/mock"
	mockMetrics "github.com/atlasledger/go-bank-recon/internal/common/metrics/mock"
	mockPublisher "github.com/atlasledger/go-bank-recon/internal/common/publisher/mock"
	"github.com/atlasledger/go-bank-recon/internal/common/retry"
	"github.com/atlasledger/go-bank-recon/internal/common/xlog"
	"github.com/atlasledger/go-bank-recon/internal/config"
	"github.com/atlasledger/go-bank-recon/internal/repositories/mock"
	"github.com/atlasledger/go-bank-recon/internal/services"

	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	xlog.InitForTest()
	os.Exit(m.Run())
}

type testServiceHelper struct {
	mockCtrl *gomock.Controller
	config   config.Config

	mockSQLRepository         *mock.MockSQLRepository
	mockBankTxnRepository     *mock.MockBankTransactionRepository
	mockDocumentRepository    *mock.MockFinancialDocumentRepository
	mockReconRecordRepository *mock.MockReconRecordRepository
	mockCacheRepository       *mock.MockCacheRepository
	mockGcs                   *mock.MockCloudStorageRepository
	mockLedgerClient          *mockLedger.MockClient
	mockReconPublisher        *mockPublisher.MockPublisher

	matchingService services.MatchingService
	reconService    services.ReconService
	feedService     services.FeedService
}

func serviceTestHelper(t *testing.T) testServiceHelper {
	t.Helper()
	t.Parallel()

	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	mockSQLRepository := mock.NewMockSQLRepository(mockCtrl)
	mockBankTxnRepository := mock.NewMockBankTransactionRepository(mockCtrl)
	mockDocumentRepository := mock.NewMockFinancialDocumentRepository(mockCtrl)
	mockReconRecordRepository := mock.NewMockReconRecordRepository(mockCtrl)
	mockCacheRepository := mock.NewMockCacheRepository(mockCtrl)
	mockCloudStorageRepository := mock.NewMockCloudStorageRepository(mockCtrl)
	mockLedgerClient := mockLedger.NewMockClient(mockCtrl)
	mockReconPublisher := mockPublisher.NewMockPublisher(mockCtrl)

	mockMetricsClient := mockMetrics.NewMockMetrics(mockCtrl)
	mockMetricsClient.EXPECT().GetMatchingPrometheus().Return(nil).AnyTimes()
	mockMetricsClient.EXPECT().GetReconPrometheus().Return(nil).AnyTimes()

	mockSQLRepository.EXPECT().GetBankTransactionRepository().Return(mockBankTxnRepository).AnyTimes()
	mockSQLRepository.EXPECT().GetFinancialDocumentRepository().Return(mockDocumentRepository).AnyTimes()
	mockSQLRepository.EXPECT().GetReconRecordRepository().Return(mockReconRecordRepository).AnyTimes()

	conf := config.Config{
		App: config.App{
			Name: "go-bank-recon",
		},
		Matching: config.MatchingConfig{
			MaxCombinationSize:   4,
			PartnerNameThreshold: 0.85,
			MinSharedKeywords:    2,
			KeywordOverlapRatio:  0.5,
			WorkerCount:          2,
			BatchSize:            500,
		},
		Reconciler: config.ReconcilerConfig{
			BalanceTolerance: 0.01,
			SettledGuardTTL:  time.Minute,
		},
		FeatureFlag: config.FeatureFlag{
			EnableCombinationMatching: true,
			EnablePartnerTagging:      true,
		},
		ExponentialBackoff: config.ExponentialBackOffConfig{
			MaxRetries:        1,
			MaxBackoffTime:    time.Minute,
			BackoffMultiplier: 1,
		},
	}

	serv := services.New(
		conf,
		mockSQLRepository,
		mockCacheRepository,
		mockCloudStorageRepository,
		mockLedgerClient,
		mockReconPublisher,
		idgenerator.New(),
		retry.NewExponentialBackOff(&conf.ExponentialBackoff),
		mockMetricsClient,
	)

	return testServiceHelper{
		mockCtrl: mockCtrl,
		config:   conf,

		mockSQLRepository:         mockSQLRepository,
		mockBankTxnRepository:     mockBankTxnRepository,
		mockDocumentRepository:    mockDocumentRepository,
		mockReconRecordRepository: mockReconRecordRepository,
		mockCacheRepository:       mockCacheRepository,
		mockGcs:                   mockCloudStorageRepository,
		mockLedgerClient:          mockLedgerClient,
		mockReconPublisher:        mockReconPublisher,

		matchingService: serv.Matching,
		reconService:    serv.Recon,
		feedService:     serv.Feed,
	}
}

package report

import (
	"os"
	"testing"

	"github.com/atlasledger/go-bank-recon/internal/common/xlog"
	"github.com/atlasledger/go-bank-recon/internal/services/mock"

	"go.uber.org/mock/gomock"
)

type testReportHelper struct {
	mockCtrl            *gomock.Controller
	mockMatchingService *mock.MockMatchingService
}

func reportTestHelper(t *testing.T) testReportHelper {
	t.Helper()

	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	mockMatchingService := mock.NewMockMatchingService(mockCtrl)

	Routes(mockMatchingService)

	return testReportHelper{
		mockCtrl:            mockCtrl,
		mockMatchingService: mockMatchingService,
	}
}

func TestMain(m *testing.M) {
	xlog.InitForTest()
	os.Exit(m.Run())
}
